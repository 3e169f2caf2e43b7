package repository

import "context"

type ctxKey int

const bearerTokenKey ctxKey = 0

// WithBearerToken carries the operator's own token through the request
// context so their identity reaches the order service end to end.
func WithBearerToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, bearerTokenKey, token)
}

// BearerFromContext returns the forwarded token, or "" when the call is not
// made on behalf of a specific operator.
func BearerFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(bearerTokenKey).(string); ok {
		return v
	}
	return ""
}
