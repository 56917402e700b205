package requestctx

import "context"

type ctxKey string

const (
	requestIDKey ctxKey = "request_id"
	adminKey     ctxKey = "admin"
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func GetRequestID(ctx context.Context) string {
	if value, ok := ctx.Value(requestIDKey).(string); ok {
		return value
	}
	return ""
}

// WithAdmin marks a request that has passed the administrative gate.
func WithAdmin(ctx context.Context) context.Context {
	return context.WithValue(ctx, adminKey, true)
}

func IsAdmin(ctx context.Context) bool {
	value, ok := ctx.Value(adminKey).(bool)
	return ok && value
}
