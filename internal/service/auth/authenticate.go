package auth

import (
	"context"

	"casino_web/internal/middleware"
	"casino_web/internal/model"
	"casino_web/internal/svcerr"
	"casino_web/pkg/token"
)

// Authenticate проверяет подпись токена и наличие сессии в хранилище
func (s *serv) Authenticate(ctx context.Context, tok string) (*model.Identity, error) {
	claims, err := token.VerifyToken(tok, s.secretKey)
	if err != nil {
		return nil, svcerr.ErrUnauthenticated
	}

	session, err := s.authRepo.GetSession(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if !session.ExpiresAt.After(s.now()) {
		return nil, svcerr.ErrUnauthenticated
	}

	return &model.Identity{UserID: session.UserID, SessionID: session.ID}, nil
}

// Me - данные текущего пользователя
func (s *serv) Me(ctx context.Context) (*model.User, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, svcerr.ErrUnauthenticated
	}

	return s.userRepo.GetUserByID(ctx, userID)
}
