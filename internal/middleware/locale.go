// SPDX-License-Identifier: MIT
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/lpsite/internal/locale"
)

// LocaleMiddleware resolves the request locale. A locale in the first path
// segment wins and is echoed as Content-Language; otherwise the locale is
// negotiated from Accept-Language.
func LocaleMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		l, _, fromPath := locale.Split(c.Request.URL.Path)
		if fromPath {
			c.Header("Content-Language", string(l))
		} else {
			l = locale.Negotiate(c.GetHeader("Accept-Language"))
		}

		c.Set(LocaleKey, l)
		c.Set(LocaleFromPathKey, fromPath)
		c.Next()
	}
}
