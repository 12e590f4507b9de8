package middleware

import (
	"time"

	"klinik-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// RequestLogger mencatat setiap request HTTP dengan field terstruktur
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		entry := log.WithFields(map[string]interface{}{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status":      c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
			"client_ip":   c.ClientIP(),
		})

		if c.Writer.Status() >= 400 {
			entry.Warn("HTTP request selesai dengan error")
		} else {
			entry.Info("HTTP request selesai")
		}
	}
}
