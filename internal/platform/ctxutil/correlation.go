package ctxutil

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// CorrelationIDHeader is the request header carrying the caller's correlation id.
const CorrelationIDHeader = "x-correlation-id"

type correlationIDKey struct{}

func WithCorrelationID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// CorrelationID returns the correlation id stored in ctx, or uuid.Nil.
func CorrelationID(ctx context.Context) uuid.UUID {
	if ctx == nil {
		return uuid.Nil
	}
	if id, ok := ctx.Value(correlationIDKey{}).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}

// ParseCorrelationID never fails: absent or malformed values become uuid.Nil.
func ParseCorrelationID(raw string) uuid.UUID {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}
	return id
}
