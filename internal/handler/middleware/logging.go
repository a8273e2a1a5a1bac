package middleware

import (
	"log/slog"
	"time"

	"pos-loyalty/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/segmentio/ksuid"
)

const (
	requestIDHeader      = "X-Request-ID"
	idempotencyKeyHeader = "Idempotency-Key"
	maxRequestIDLen      = 64
)

// RequestLogging tags each request with an id and logs one line when it
// completes. A till that already sends X-Request-ID keeps its own id.
func RequestLogging(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" || len(requestID) > maxRequestIDLen {
			requestID = ksuid.New().String()
		}
		c.Set(httperr.RequestIDKey, requestID)
		c.Header(requestIDHeader, requestID)

		c.Next()

		status := c.Writer.Status()
		attrs := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("route", c.FullPath()),
			slog.Int("status", status),
			slog.Duration("duration", time.Since(start)),
			slog.String("client_ip", c.ClientIP()),
		}
		// auth runs inside the /api group, so identity is only known after Next
		if id, ok := GetOperatorID(c); ok {
			attrs = append(attrs, slog.String("operator_id", id.String()))
		}
		if role, ok := GetOperatorRole(c); ok {
			attrs = append(attrs, slog.String("role", role.String()))
		}
		if id := c.Param("id"); id != "" {
			attrs = append(attrs, slog.String("target_id", id))
		}
		if key := c.GetHeader(idempotencyKeyHeader); key != "" {
			attrs = append(attrs, slog.String("idempotency_key", key))
		}
		if last := c.Errors.Last(); last != nil {
			attrs = append(attrs, slog.String("error", last.Error()))
		}

		level := slog.LevelInfo
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}
		logger.LogAttrs(c.Request.Context(), level, "request", attrs...)
	}
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(httperr.RequestIDKey)
}
