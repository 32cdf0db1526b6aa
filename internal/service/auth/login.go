package auth

import (
	"context"
	"errors"
	"fmt"

	"casino_web/internal/model"
	"casino_web/internal/svcerr"
	"casino_web/pkg/pass"
	"casino_web/pkg/token"

	"github.com/google/uuid"
)

func (s *serv) Login(ctx context.Context, creds model.Credentials) (*model.AuthData, error) {
	// Получение пользователя из бд по email
	user, err := s.userRepo.GetUserByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, svcerr.ErrUserNotFound) {
			return nil, svcerr.ErrInvalidCredentials
		}
		return nil, err
	}

	// Верификация пароля
	if !pass.VerifyPassword(user.PasswordHash, creds.Password) {
		return nil, svcerr.ErrInvalidCredentials
	}

	return s.openSession(ctx, user)
}

// openSession сохраняет новую сессию и выпускает для неё токен
func (s *serv) openSession(ctx context.Context, user *model.User) (*model.AuthData, error) {
	session := &model.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: s.now().Add(s.sessionTTL),
	}

	if err := s.authRepo.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	tok, err := token.GenerateSessionToken(session, s.secretKey)
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}

	return &model.AuthData{
		User:      user,
		Token:     tok,
		ExpiresAt: session.ExpiresAt,
	}, nil
}
