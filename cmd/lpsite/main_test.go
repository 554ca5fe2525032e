// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thatcatcamp/lpsite/internal/config"
	"github.com/thatcatcamp/lpsite/internal/content"
	"github.com/thatcatcamp/lpsite/internal/db"
	"go.uber.org/zap"
)

func setupConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	configPath = filepath.Join(dir, "config.yaml")
	t.Cleanup(func() { configPath = "" })
	require.NoError(t, initConfig())
	return dir
}

func embeddedRepo(t *testing.T) *content.Repository {
	t.Helper()
	repo, err := content.NewRepository(content.EmbeddedSource(), nil)
	require.NoError(t, err)
	return repo
}

func TestInitConfigWritesDefaults(t *testing.T) {
	dir := setupConfig(t)
	assert.FileExists(t, filepath.Join(dir, "config.yaml"))
	assert.Equal(t, "example-lp", config.GetString("site.default_page"))
}

func TestFlatten(t *testing.T) {
	out := flatten("", map[string]interface{}{
		"server": map[string]interface{}{"http_port": "8080", "tls_enabled": false},
		"top":    1,
	})
	assert.Equal(t, map[string]interface{}{
		"server.http_port":   "8080",
		"server.tls_enabled": false,
		"top":                1,
	}, out)
}

func TestContentSourceSelection(t *testing.T) {
	dir := setupConfig(t)

	src, err := contentSource()
	require.NoError(t, err)
	assert.IsType(t, content.FSSource{}, src)

	require.NoError(t, config.Set("content.source", config.SourceDir))
	_, err = contentSource()
	assert.ErrorContains(t, err, "content.dir is required")

	require.NoError(t, config.Set("content.source", "s3"))
	_, err = contentSource()
	assert.ErrorContains(t, err, "unsupported content source: s3")

	require.NoError(t, config.Set("content.source", config.SourceDatabase))
	require.NoError(t, config.Set("database.path", filepath.Join(dir, "lpsite.db")))
	src, err = contentSource()
	require.NoError(t, err)
	assert.IsType(t, content.DBSource{}, src)
}

func TestImportThenServeFromDatabase(t *testing.T) {
	dir := setupConfig(t)
	require.NoError(t, config.Set("database.path", filepath.Join(dir, "lpsite.db")))
	require.NoError(t, initSystemDB())

	n, err := importContent(db.GetDB(), content.EmbeddedSource())
	require.NoError(t, err)
	assert.Equal(t, 8, n)

	require.NoError(t, config.Set("content.source", config.SourceDatabase))
	repo, err := loadRepository(zap.NewNop())
	require.NoError(t, err)

	var out bytes.Buffer
	listContent(&out, repo)
	assert.Equal(t, "en   agency-lp, example-lp, impressum, privacy\nde   agency-lp, example-lp, impressum, privacy\n", out.String())
}

func TestImportRejectsInvalidContent(t *testing.T) {
	dir := setupConfig(t)
	require.NoError(t, config.Set("database.path", filepath.Join(dir, "lpsite.db")))
	require.NoError(t, initSystemDB())

	contentRoot := filepath.Join(dir, "content")
	require.NoError(t, os.MkdirAll(filepath.Join(contentRoot, "pages"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(contentRoot, "pages", "en.yaml"),
		[]byte("example-lp:\n  hero:\n    title: Only a title\n"), 0644))

	_, err := importContent(db.GetDB(), content.DirSource(contentRoot))
	require.Error(t, err)

	var count int64
	require.NoError(t, db.GetDB().Table("copy_documents").Count(&count).Error)
	assert.Zero(t, count)
}

func TestRenderPage(t *testing.T) {
	setupConfig(t)
	repo := embeddedRepo(t)

	var out bytes.Buffer
	require.NoError(t, renderPage(&out, repo, "de", "example-lp", "navy", "billing=yearly"))
	assert.Contains(t, out.String(), `<html lang="de-DE">`)
	assert.Contains(t, out.String(), "390 € / Monat")

	out.Reset()
	require.NoError(t, renderPage(&out, repo, "en", "privacy", "light", ""))
	assert.Contains(t, out.String(), `class="legal"`)

	assert.ErrorContains(t, renderPage(&out, repo, "fr", "example-lp", "light", ""), "unsupported locale: fr")
	assert.ErrorContains(t, renderPage(&out, repo, "en", "example-lp", "sepia", ""), "unknown theme: sepia")
	assert.ErrorContains(t, renderPage(&out, repo, "en", "landing-v2", "light", ""), "page not found: en/landing-v2")
}

func TestNewRouter(t *testing.T) {
	setupConfig(t)
	require.NoError(t, config.Set("server.rate_limit", 2))
	require.NoError(t, config.Set("server.ip_blocklist", "198.51.100.0/24"))

	r, stop := newRouter(embeddedRepo(t), zap.NewNop(), false)
	defer stop()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/en/example-lp", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.RemoteAddr = "198.51.100.4:5000"
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestNewRouterIgnoresSpoofedForwardedFor(t *testing.T) {
	setupConfig(t)
	require.NoError(t, config.Set("server.ip_blocklist", "198.51.100.0/24"))

	r, stop := newRouter(embeddedRepo(t), zap.NewNop(), false)
	defer stop()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.RemoteAddr = "198.51.100.4:5000"
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestNewRouterHonorsTrustedProxy(t *testing.T) {
	setupConfig(t)
	require.NoError(t, config.Set("server.ip_blocklist", "203.0.113.0/24"))
	require.NoError(t, config.Set("server.trusted_proxies", "127.0.0.1"))

	r, stop := newRouter(embeddedRepo(t), zap.NewNop(), false)
	defer stop()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.RemoteAddr = "127.0.0.1:5000"
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestListenAllClosesOpenedListenersOnFailure(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	free, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	freeAddr := free.Addr().String()
	require.NoError(t, free.Close())

	_, err = listenAll([]*http.Server{
		newHTTPServer(freeAddr, http.NotFoundHandler(), nil),
		newHTTPServer(busy.Addr().String(), http.NotFoundHandler(), nil),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to bind "+busy.Addr().String())

	again, err := net.Listen("tcp", freeAddr)
	require.NoError(t, err, "first listener should have been released")
	_ = again.Close()
}

func TestNewHTTPServerSetsHeaderTimeout(t *testing.T) {
	srv := newHTTPServer(":0", http.NotFoundHandler(), nil)
	assert.Equal(t, readHeaderTimeout, srv.ReadHeaderTimeout)
}

func TestNewRouterRedirectsToHTTPS(t *testing.T) {
	setupConfig(t)

	r, stop := newRouter(embeddedRepo(t), zap.NewNop(), true)
	defer stop()

	req := httptest.NewRequest(http.MethodGet, "/de/example-lp", nil)
	req.Host = "lp.example.com"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusMovedPermanently, w.Code)
	assert.Equal(t, "https://lp.example.com/de/example-lp", w.Header().Get("Location"))
}

func TestExportContent(t *testing.T) {
	dir := setupConfig(t)

	path, err := exportContent(filepath.Join(dir, "backups"))
	require.NoError(t, err)
	assert.FileExists(t, path)
	assert.Equal(t, filepath.Join(dir, "backups", "content-exports"), filepath.Dir(path))
}
