package trace

import "context"

// requestIDKey is an unexported type so that values stored with it cannot
// collide with keys set by other packages using context.WithValue.
type requestIDKey struct{}

// WithRequestID returns a copy of ctx carrying the given request ID. The
// Op runner includes it as a "request_id" attribute on its start/end log
// lines when present.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFrom retrieves the request ID stored in ctx, if any.
func RequestIDFrom(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok
}
