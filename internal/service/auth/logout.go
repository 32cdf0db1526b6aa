package auth

import (
	"context"

	"casino_web/pkg/token"
)

// Logout закрывает сессию. Повторный вызов и невалидный токен - не ошибка.
func (s *serv) Logout(ctx context.Context, tok string) error {
	if tok == "" {
		return nil
	}

	claims, err := token.VerifyToken(tok, s.secretKey)
	if err != nil {
		return nil
	}

	return s.authRepo.DeleteSession(ctx, claims.ID)
}
