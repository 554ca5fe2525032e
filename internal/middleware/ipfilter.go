// SPDX-License-Identifier: MIT
package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// IPFilterMiddleware blocks requests whose client IP falls in one of the
// blocklisted CIDR ranges. Entries that do not parse are skipped.
func IPFilterMiddleware(blocklist []string) gin.HandlerFunc {
	blockedCIDRs := make([]*net.IPNet, 0, len(blocklist))
	for _, cidr := range blocklist {
		_, ipNet, err := net.ParseCIDR(strings.TrimSpace(cidr))
		if err == nil {
			blockedCIDRs = append(blockedCIDRs, ipNet)
		}
	}

	return func(c *gin.Context) {
		if len(blockedCIDRs) == 0 {
			c.Next()
			return
		}

		clientIP := extractIP(c)
		if clientIP == nil {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		for _, ipNet := range blockedCIDRs {
			if ipNet.Contains(clientIP) {
				c.AbortWithStatus(http.StatusForbidden)
				return
			}
		}

		c.Next()
	}
}

// extractIP parses the client IP as resolved against the engine's trusted proxies
func extractIP(c *gin.Context) net.IP {
	return net.ParseIP(c.ClientIP())
}
