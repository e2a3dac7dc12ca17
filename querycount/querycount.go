package querycount

import (
	"context"
	"sync/atomic"
)

// Counter is a concurrency-safe statement counter scoped to one
// request. It is never shared across requests.
type Counter struct {
	n atomic.Int64
}

// Add increments the counter by delta.
func (c *Counter) Add(delta int64) {
	c.n.Add(delta)
}

// Count returns the current statement count.
func (c *Counter) Count() int64 {
	return c.n.Load()
}

// ctxKey is unexported to avoid context key collisions.
type ctxKey struct{}

// WithCounter returns a context carrying the counter.
func WithCounter(ctx context.Context, c *Counter) context.Context {
	return context.WithValue(ctx, ctxKey{}, c)
}

// FromContext extracts the counter from the context, if present.
func FromContext(ctx context.Context) (*Counter, bool) {
	c, ok := ctx.Value(ctxKey{}).(*Counter)
	return c, ok
}

// Increment bumps the context's counter by one. It is a no-op when the
// context carries no counter, so instrumented clients can call it
// unconditionally.
func Increment(ctx context.Context) {
	if c, ok := FromContext(ctx); ok {
		c.Add(1)
	}
}
