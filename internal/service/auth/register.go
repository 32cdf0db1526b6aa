package auth

import (
	"context"

	"casino_web/internal/model"
	"casino_web/internal/svcerr"
	"casino_web/pkg/pass"
)

// Register создаёт пользователя со стартовым балансом и открывает сессию
func (s *serv) Register(ctx context.Context, creds model.Credentials) (*model.AuthData, error) {
	if creds.Email == "" || creds.Password == "" {
		return nil, svcerr.Validation("email+password required")
	}

	// Хэширование пароля пользователя
	passwordHash, err := pass.HashPassword(creds.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:        creds.Email,
		PasswordHash: passwordHash,
		Balance:      model.StartingBalance,
		IsAdmin:      creds.Email == s.adminEmail,
	}

	var data *model.AuthData

	// Пользователь и сессия создаются в одной транзакции
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Создать пользователя в бд
		user.ID, err = s.userRepo.CreateUser(txCtx, user)
		if err != nil {
			return err
		}

		// 2. Создать сессию и подписать токен
		data, err = s.openSession(txCtx, user)
		return err
	})
	if err != nil {
		return nil, err
	}

	return data, nil
}
