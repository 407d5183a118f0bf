package logger

import "context"

type contextKey int

const (
	metaKey contextKey = iota
	loggerKey
)

// requestMeta carries the request-scoped identifiers attached to log lines.
// Both IDs live under one key so a request's metadata is read and copied as
// a unit.
type requestMeta struct {
	requestID string
	userID    string
}

func metaFrom(ctx context.Context) requestMeta {
	m, _ := ctx.Value(metaKey).(requestMeta)
	return m
}

// WithRequestID records the request's correlation ID on the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	m := metaFrom(ctx)
	m.requestID = requestID
	return context.WithValue(ctx, metaKey, m)
}

// RequestIDFromContext extracts the request ID from context
func RequestIDFromContext(ctx context.Context) string {
	return metaFrom(ctx).requestID
}

// WithUserID records the requesting user's ID on the context
func WithUserID(ctx context.Context, userID string) context.Context {
	m := metaFrom(ctx)
	m.userID = userID
	return context.WithValue(ctx, metaKey, m)
}

// UserIDFromContext extracts the user ID from context
func UserIDFromContext(ctx context.Context) string {
	return metaFrom(ctx).userID
}

// WithLogger adds a logger to the context
func WithLogger(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext extracts the logger from context, or returns the default logger
func FromContext(ctx context.Context) Logger {
	if l, ok := ctx.Value(loggerKey).(Logger); ok {
		return l
	}
	return Default()
}

// requestFields converts the context's request metadata to log fields
func requestFields(ctx context.Context) []Field {
	m := metaFrom(ctx)

	var fields []Field
	if m.requestID != "" {
		fields = append(fields, String("request_id", m.requestID))
	}
	if m.userID != "" {
		fields = append(fields, String("user_id", m.userID))
	}
	return fields
}

// Ctx returns the context's logger enriched with its request metadata.
// This is a convenience function for use in handlers/services
func Ctx(ctx context.Context) Logger {
	return FromContext(ctx).WithContext(ctx)
}
