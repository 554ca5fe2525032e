// SPDX-License-Identifier: MIT
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/lpsite/internal/locale"
	"go.uber.org/zap"
)

// Context keys set by the middleware in this package
const (
	LocaleKey         = "locale"
	LocaleFromPathKey = "locale_from_path"
	RequestIDKey      = "request_id"
	LoggerKey         = "logger"
)

// GetLocale returns the request locale and whether it came from the path
func GetLocale(c *gin.Context) (locale.Locale, bool) {
	l := locale.Default
	if v, ok := c.Get(LocaleKey); ok {
		if typed, ok := v.(locale.Locale); ok {
			l = typed
		}
	}
	return l, c.GetBool(LocaleFromPathKey)
}

// GetRequestID returns the id assigned by RequestLogger
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}

// GetLogger returns the request-scoped logger, a no-op logger if none is set
func GetLogger(c *gin.Context) *zap.Logger {
	if v, ok := c.Get(LoggerKey); ok {
		if logger, ok := v.(*zap.Logger); ok {
			return logger
		}
	}
	return zap.NewNop()
}
