package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RequestFields describes the request being served: method, path, the matched
// route when it differs from the path, and the client address when known.
func RequestFields(c *gin.Context) []zapcore.Field {
	data := []zapcore.Field{
		zap.String("http_method", c.Request.Method),
		zap.String("http_path", c.Request.URL.Path),
	}
	if route := c.FullPath(); route != "" && route != c.Request.URL.Path {
		data = append(data, zap.String("http_route", route))
	}
	if ip := c.ClientIP(); ip != "" {
		data = append(data, zap.String("client_ip", ip))
	}
	return data
}

// RequestLogger writes one access log entry per request. Server errors are logged at warn.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		data := append(RequestFields(c),
			zap.Int("http_status", status),
			zap.Duration("latency", time.Since(start)),
		)
		if len(c.Errors) > 0 {
			data = append(data, zap.String("errors", c.Errors.String()))
		}

		level := zap.InfoLevel
		if status >= http.StatusInternalServerError {
			level = zap.WarnLevel
		}
		log.Log(level, "http request", data...)
	}
}
