package logging

import (
	"context"
	"crypto/rand"

	"github.com/oklog/ulid/v2"
)

// traceIDKey is the context key for the run trace ID.
type traceIDKey struct{}

// ContextWithTraceID stores a trace ID on the context.
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceIDFromContext returns the trace ID on ctx, or "" when none is set.
func TraceIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(traceIDKey{}).(string); ok {
		return id
	}
	return ""
}

// GetOrGenerateTraceID returns the context's trace ID, minting a new ULID
// when the context has none. ULIDs sort lexically by creation time, which
// keeps log files grep-able per run.
func GetOrGenerateTraceID(ctx context.Context) string {
	if id := TraceIDFromContext(ctx); id != "" {
		return id
	}
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}
