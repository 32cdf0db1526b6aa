package middleware

import (
	"context"

	"casino_web/internal/model"
)

type ctxKey struct{}

// WithIdentity кладёт пользователя текущего запроса в контекст
func WithIdentity(ctx context.Context, identity model.Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, identity)
}

// IdentityFromContext достаёт пользователя текущего запроса
func IdentityFromContext(ctx context.Context) (model.Identity, bool) {
	identity, ok := ctx.Value(ctxKey{}).(model.Identity)
	return identity, ok
}

// UserIDFromContext - ID аутентифицированного пользователя
func UserIDFromContext(ctx context.Context) (int64, bool) {
	identity, ok := IdentityFromContext(ctx)
	return identity.UserID, ok
}
