// SPDX-License-Identifier: MIT
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/lpsite/internal/blocks"
	"github.com/thatcatcamp/lpsite/internal/content"
	"github.com/thatcatcamp/lpsite/internal/locale"
	"github.com/thatcatcamp/lpsite/internal/middleware"
	"github.com/thatcatcamp/lpsite/internal/state"
	"github.com/thatcatcamp/lpsite/internal/templates"
	"github.com/thatcatcamp/lpsite/internal/themes"
	"go.uber.org/zap"
)

const htmlContentType = "text/html; charset=utf-8"

// Options are the site-wide settings the public handlers need
type Options struct {
	DefaultTheme string
	DefaultPage  string
	BaseURL      string
}

// PublicHandler serves landing and legal pages from a content repository
type PublicHandler struct {
	repo *content.Repository
	opts Options
}

// NewPublicHandler returns a handler for repo. An unknown default page
// falls back to example-lp.
func NewPublicHandler(repo *content.Repository, opts Options) *PublicHandler {
	if !content.IsPageID(opts.DefaultPage) {
		opts.DefaultPage = content.PageExample
	}
	if _, ok := themes.Resolve(opts.DefaultTheme); !ok {
		opts.DefaultTheme = themes.DefaultTheme
	}
	return &PublicHandler{repo: repo, opts: opts}
}

// Register mounts the public routes on r
func (h *PublicHandler) Register(r *gin.Engine) {
	r.GET("/", h.ServeRoot)
	r.GET("/healthz", h.ServeHealth)
	r.GET("/theme.css", ServeThemeCSS)
	r.NoRoute(h.ServePage)
}

// ServeRoot redirects to the default page in the negotiated locale
func (h *PublicHandler) ServeRoot(c *gin.Context) {
	l, _ := middleware.GetLocale(c)
	c.Redirect(http.StatusFound, withQuery(c, "/"+string(l)+"/"+h.opts.DefaultPage))
}

// ServeHealth reports that the server is up and content is loaded
func (h *PublicHandler) ServeHealth(c *gin.Context) {
	pages := 0
	for _, ids := range h.repo.Availability() {
		pages += len(ids)
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "pages": pages})
}

// ServePage dispatches every path without an explicit route:
//
//	/{locale}                    redirect to the default page
//	/{locale}/privacy|impressum  legal page
//	/{locale}/.../{pageId}       landing page, leading segments ignored
func (h *PublicHandler) ServePage(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		c.Header("Allow", "GET, HEAD")
		c.AbortWithStatus(http.StatusMethodNotAllowed)
		return
	}

	l, rest, ok := locale.Split(c.Request.URL.Path)
	if !ok {
		h.notFound(c)
		return
	}

	if len(rest) == 0 {
		c.Redirect(http.StatusFound, withQuery(c, "/"+string(l)+"/"+h.opts.DefaultPage))
		return
	}

	last := rest[len(rest)-1]
	switch {
	case len(rest) == 1 && content.IsLegalPageID(last):
		h.serveLegal(c, l, last)
	case content.IsPageID(last):
		h.serveLanding(c, l, last)
	default:
		h.notFound(c)
	}
}

func (h *PublicHandler) serveLanding(c *gin.Context, l locale.Locale, pageID string) {
	pc, ok := h.repo.LoadPageCopy(l, pageID)
	if !ok {
		h.notFound(c)
		return
	}

	page := templates.Assemble(h.theme(c), l, pc, pageID).
		WithBaseURL(h.opts.BaseURL).
		WithRequestPath(c.Request.URL.Path)
	view := state.ParseView(c.Request.URL.Query())

	html, err := blocks.RenderPage(page, view)
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.Data(http.StatusOK, htmlContentType, html)
}

func (h *PublicHandler) serveLegal(c *gin.Context, l locale.Locale, pageID string) {
	pc, ok := h.repo.LoadLegalPageCopy(l, pageID)
	if !ok {
		// both legal pages are required for every supported locale
		h.serverError(c, fmt.Errorf("%s copy not found for locale: %s", pageID, l))
		return
	}

	page := templates.AssembleLegal(h.theme(c), l, pageID, pc).WithBaseURL(h.opts.BaseURL)
	html, err := blocks.RenderLegalPage(page)
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.Data(http.StatusOK, htmlContentType, html)
}

// theme returns the ?theme= override when it names a known theme
func (h *PublicHandler) theme(c *gin.Context) themes.Theme {
	if t, ok := themes.Resolve(c.Query("theme")); ok {
		return t
	}
	return themes.ResolveOrDefault(h.opts.DefaultTheme)
}

func (h *PublicHandler) notFound(c *gin.Context) {
	l, _ := middleware.GetLocale(c)
	html, err := blocks.RenderNotFound(h.theme(c), l)
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.Data(http.StatusNotFound, htmlContentType, html)
}

func (h *PublicHandler) serverError(c *gin.Context, err error) {
	middleware.GetLogger(c).Error("failed to serve page",
		zap.String("path", c.Request.URL.Path),
		zap.Error(err))
	_ = c.Error(err)
	c.String(http.StatusInternalServerError, "Internal Server Error")
}

// withQuery appends the request's raw query to path
func withQuery(c *gin.Context, path string) string {
	if q := c.Request.URL.RawQuery; q != "" {
		return path + "?" + q
	}
	return path
}
