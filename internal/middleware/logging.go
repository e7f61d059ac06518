package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/payitnow/payitnow-api/internal/metrics"
	"go.uber.org/zap"
)

// skipLogging lists paths polled by infrastructure
var skipLogging = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// RequestLogger logs method, route, status and latency of every request and records
// the request metrics
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		latency := time.Since(start)
		metrics.ObserveHTTPRequest(c.Request.Method, route, status, latency)

		if skipLogging[c.Request.URL.Path] {
			return
		}

		fields := []zap.Field{
			zap.String("correlation_id", GetCorrelationID(c)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("route", route),
			zap.Int("status", status),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case status >= 500:
			log.Error("Request completed", fields...)
		case status >= 400:
			log.Warn("Request completed", fields...)
		default:
			log.Info("Request completed", fields...)
		}
	}
}
