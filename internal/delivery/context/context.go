// Package context carries request-scoped values between the delivery
// layer and the services: the request ID and the request-scoped logger.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// contextKey is a private key type to avoid collisions with other packages.
type contextKey string

const (
	keyRequestID contextKey = "request_id"
	keyLogger    contextKey = "logger"

	// HeaderXRequestID is the HTTP header the request ID travels in.
	HeaderXRequestID = "X-Request-Id"
)

// SetRequestID stores the request ID in echo.Context so handlers can
// echo it back.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(keyRequestID), requestID)
}

// WithRequestID returns a context carrying the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, keyRequestID, requestID)
}

// WithLogger returns a context carrying a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}

// GetLoggerOrDefault returns the request-scoped logger, or the fallback
// when the context carries none. Services call this so their log lines
// pick up the request ID attached by the middleware.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(keyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}
