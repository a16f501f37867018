package httpx

import "context"

type ctxKey string

const (
	CtxKeyUserID   ctxKey = "user_id"
	CtxKeyMobile   ctxKey = "mobile"
	CtxKeyRawToken ctxKey = "raw_token"
)

// UserIDFromContext returns the authenticated principal id, or "".
func UserIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return v
	}
	return ""
}

// MobileFromContext returns the authenticated principal's phone
// number, or "".
func MobileFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyMobile).(string); ok {
		return v
	}
	return ""
}

// RawTokenFromContext returns the bearer token exactly as presented.
// The refresh flow needs the raw credential to compare against the
// stored hash.
func RawTokenFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyRawToken).(string); ok {
		return v
	}
	return ""
}
