package logging

import (
	"context"

	"github.com/google/uuid"
)

type requestIDKey struct{}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(requestIDKey{}).(string); ok {
		return v
	}
	return ""
}

// ValidateAndExtractRequestID returns requestID when it is a UUID and a fresh
// one otherwise.
func ValidateAndExtractRequestID(requestID string) string {
	if _, err := uuid.Parse(requestID); err == nil {
		return requestID
	}
	return uuid.NewString()
}

// EnsureRequestID returns a context that carries a valid request ID.
func EnsureRequestID(ctx context.Context) (context.Context, string) {
	requestID := ValidateAndExtractRequestID(RequestIDFromContext(ctx))
	return WithRequestID(ctx, requestID), requestID
}
