package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/personservice-backend/internal/platform/logger"
)

// RequestLogger writes one line per request, tagged with the request's
// correlation id. Probe and scrape routes log at debug.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	if log == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		status := c.Writer.Status()
		fields := []interface{}{
			"method", c.Request.Method,
			"route", route,
			"path", c.Request.URL.Path,
			"status", status,
			"bytes", c.Writer.Size(),
			"client_ip", c.ClientIP(),
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
		}

		l := log.WithContext(c.Request.Context())
		switch {
		case status >= 500:
			l.Error("HTTP request", fields...)
		case status >= 400:
			l.Warn("HTTP request", fields...)
		case isProbeRoute(route):
			l.Debug("HTTP request", fields...)
		default:
			l.Info("HTTP request", fields...)
		}
	}
}

func isProbeRoute(route string) bool {
	switch route {
	case "/healthcheck", "/readyz", "/metrics":
		return true
	default:
		return false
	}
}
