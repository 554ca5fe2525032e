// SPDX-License-Identifier: MIT
package tls

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thatcatcamp/lpsite/internal/config"
)

func writeTestCert(t *testing.T, certDir, ca, domain string, notAfter time.Time) {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: domain},
		Issuer:       pkix.Name{CommonName: domain},
		DNSNames:     []string{domain},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     notAfter,
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	require.NoError(t, err)

	dir := filepath.Join(certDir, "certificates", ca, domain)
	require.NoError(t, os.MkdirAll(dir, 0700))
	out := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain+".crt"), out, 0600))
}

func TestAllowedDomains(t *testing.T) {
	cfg := &Config{
		BaseDomain: "lp.example.com",
		Domains:    []string{"www.example.com", " LP.example.com ", "", "de.example.com"},
	}
	assert.Equal(t, []string{"lp.example.com", "www.example.com", "de.example.com"}, cfg.AllowedDomains())
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, config.InitConfig(filepath.Join(dir, "config.yaml")))
	require.NoError(t, config.Set("tls.cert_dir", filepath.Join(dir, "certs")))
	require.NoError(t, config.Set("tls.domains", "a.example.com,b.example.com"))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{"a.example.com", "b.example.com"}, cfg.Domains)
	assert.DirExists(t, filepath.Join(dir, "certs"))

	require.NoError(t, config.Set("server.tls_enabled", true))
	_, err = LoadConfig()
	assert.ErrorContains(t, err, "tls.email")

	require.NoError(t, config.Set("tls.email", "ops@example.com"))
	_, err = LoadConfig()
	assert.ErrorContains(t, err, "server.base_domain")

	require.NoError(t, config.Set("server.base_domain", "lp.example.com"))
	cfg, err = LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.Enabled)
}

func TestReadCertificateStatus(t *testing.T) {
	certDir := t.TempDir()
	expiry := time.Now().Add(30*24*time.Hour + time.Hour)
	writeTestCert(t, certDir, caDirs[0], "lp.example.com", expiry)
	writeTestCert(t, certDir, caDirs[1], "staging.example.com", expiry)

	bad := filepath.Join(certDir, "certificates", caDirs[0], "broken.example.com")
	require.NoError(t, os.MkdirAll(bad, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(bad, "broken.example.com.crt"), []byte("nope"), 0600))

	statuses := ReadCertificateStatus(certDir, []string{
		"lp.example.com", "staging.example.com", "missing.example.com", "broken.example.com",
	})
	require.Len(t, statuses, 2)
	assert.Equal(t, "lp.example.com", statuses[0].Domain)
	assert.Equal(t, "lp.example.com", statuses[0].Issuer)
	assert.Equal(t, 30, statuses[0].DaysUntilExpiry)
	assert.Equal(t, "staging.example.com", statuses[1].Domain)
}

func TestNewManagerRequiresConfig(t *testing.T) {
	_, err := newManager(nil, nil)
	assert.Error(t, err)
}

func TestManagerStatusUsesConfig(t *testing.T) {
	certDir := t.TempDir()
	writeTestCert(t, certDir, caDirs[0], "www.example.com", time.Now().Add(48*time.Hour))

	m, err := newManager(&Config{
		CertDir:    certDir,
		BaseDomain: "lp.example.com",
		Domains:    []string{"www.example.com"},
	}, nil)
	require.NoError(t, err)
	assert.NotNil(t, m.GetTLSConfig())

	statuses := m.GetCertificateStatus()
	require.Len(t, statuses, 1)
	assert.Equal(t, "www.example.com", statuses[0].Domain)
}
