package auth

import (
	"context"

	"github.com/auy-connect/student-portal/internal/session"
)

type ctxKey string

const (
	ctxKeyIdentity ctxKey = "identity"
	ctxKeySID      ctxKey = "sid"
)

func WithIdentity(ctx context.Context, id session.Identity) context.Context {
	return context.WithValue(ctx, ctxKeyIdentity, id)
}

func IdentityFromContext(ctx context.Context) (session.Identity, bool) {
	id, ok := ctx.Value(ctxKeyIdentity).(session.Identity)
	return id, ok
}

func WithSessionToken(ctx context.Context, sid string) context.Context {
	return context.WithValue(ctx, ctxKeySID, sid)
}

func SessionTokenFromContext(ctx context.Context) string {
	if s, ok := ctx.Value(ctxKeySID).(string); ok {
		return s
	}
	return ""
}
