// Package middleware provides the gin middleware shared by every route.
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the request id in both directions.
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey is the gin context key of the request id.
	RequestIDKey = "requestID"

	maxRequestIDLength = 128
)

// RequestID reuses a well-formed incoming X-Request-ID or generates one,
// stores it on the context and echoes it in the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}
		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// AccessLog logs one line per request. The level follows the status class.
func AccessLog(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		level, result := requestLogMeta(status)
		log.LogAttrs(c.Request.Context(), level, "http.request",
			slog.String("request_id", c.GetString(RequestIDKey)),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("route", c.FullPath()),
			slog.Int("status", status),
			slog.String("result", result),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()),
			slog.String("remote", c.ClientIP()),
			slog.String("user_agent", c.Request.UserAgent()),
		)
	}
}

func requestLogMeta(status int) (slog.Level, string) {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError, "server_error"
	case status >= http.StatusBadRequest:
		return slog.LevelWarn, "client_error"
	case status >= http.StatusMultipleChoices:
		return slog.LevelInfo, "redirect"
	default:
		return slog.LevelInfo, "success"
	}
}
