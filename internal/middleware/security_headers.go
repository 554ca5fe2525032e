// SPDX-License-Identifier: MIT
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/lpsite/internal/config"
)

// SecurityHeadersMiddleware adds security headers to all responses
func SecurityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Prevent MIME type sniffing
		c.Header("X-Content-Type-Options", "nosniff")

		// Prevent clickjacking
		c.Header("X-Frame-Options", "SAMEORIGIN")

		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")

		// Pages are server-rendered and run no scripts; JSON-LD blocks are data
		csp := "default-src 'self'; " +
			"script-src 'none'; " +
			"style-src 'self' 'unsafe-inline'; " +
			"img-src 'self' data: https:; " +
			"font-src 'self' data:; " +
			"frame-ancestors 'self'"
		c.Header("Content-Security-Policy", csp)

		// HTTP Strict Transport Security (HSTS) - only if TLS is enabled
		if config.GetBool("server.tls_enabled") {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		c.Next()
	}
}
