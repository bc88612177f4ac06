package common

import (
	"context"
	"log/slog"
)

// Context keys for request-scoped values.
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
	ContextKeyReceiptID contextKey = "receipt_id"
	ContextKeyLogger    contextKey = "logger"
)

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// RequestIDFromContext extracts the request ID from context
func RequestIDFromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return requestID
	}
	return ""
}

// WithReceiptID tags the context with the receipt being processed so
// nested log lines can correlate.
func WithReceiptID(ctx context.Context, receiptID string) context.Context {
	return context.WithValue(ctx, ContextKeyReceiptID, receiptID)
}

// ReceiptIDFromContext extracts the receipt ID from context
func ReceiptIDFromContext(ctx context.Context) string {
	if receiptID, ok := ctx.Value(ContextKeyReceiptID).(string); ok {
		return receiptID
	}
	return ""
}

// WithLogger stores a request-scoped logger in the context
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ContextKeyLogger, logger)
}

// LoggerFromContext returns the request-scoped logger, or the default.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(ContextKeyLogger).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
