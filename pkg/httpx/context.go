package httpx

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
)

type ctxKey string

const (
	CtxKeyToken ctxKey = "session_token"
)

// ContextWithToken stores the session token for downstream handlers.
func ContextWithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, CtxKeyToken, token)
}

// TokenFromContext returns the session token placed by RequireSession.
func TokenFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyToken).(string); ok {
		return v
	}
	return ""
}

// sessionFingerprint derives a stable, non reversible key from a token so
// limiter maps never hold raw credentials.
func sessionFingerprint(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:8])
}
