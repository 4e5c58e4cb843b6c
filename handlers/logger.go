package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger retrieves a Zap logger from the Gin context or falls back to base.
func getLogger(c *gin.Context, base *zap.Logger) *zap.Logger {
	if l, exists := c.Get("logger"); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	if base == nil {
		return zap.NewNop()
	}
	return base
}

// RequestLogger stores a request-scoped logger in the Gin context and logs
// each completed request.
func RequestLogger(base *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := base.With(
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
		)
		c.Set("logger", logger)
		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{zap.Int("status", status)}
		if uid := c.GetString("userID"); uid != "" {
			fields = append(fields, zap.String("userID", uid))
		}
		if status >= http.StatusInternalServerError {
			logger.Error("Request failed", fields...)
			return
		}
		logger.Debug("Request handled", fields...)
	}
}
