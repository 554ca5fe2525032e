// SPDX-License-Identifier: MIT
package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// HTTPSRedirectMiddleware redirects HTTP requests to HTTPS on httpsPort.
// Exceptions: ACME challenges (/.well-known/acme-challenge/) and /healthz
func HTTPSRedirectMiddleware(httpsPort string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip if already HTTPS
		if c.Request.TLS != nil {
			c.Next()
			return
		}

		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/.well-known/acme-challenge/") || path == "/healthz" {
			c.Next()
			return
		}

		host := c.Request.Host
		if h, _, err := net.SplitHostPort(host); err == nil {
			host = h
		}
		if httpsPort != "" && httpsPort != "443" {
			host = net.JoinHostPort(host, httpsPort)
		}

		c.Redirect(http.StatusMovedPermanently, "https://"+host+c.Request.RequestURI)
		c.Abort()
	}
}
