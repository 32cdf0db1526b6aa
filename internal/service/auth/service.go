package auth

import (
	"time"

	"casino_web/internal/repository"
	"casino_web/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	txManager  trm.Manager
	userRepo   repository.UserRepository
	authRepo   repository.AuthRepository
	secretKey  []byte
	sessionTTL time.Duration
	adminEmail string
	now        func() time.Time
}

func NewAuthService(
	txManager trm.Manager,
	userRepo repository.UserRepository,
	authRepo repository.AuthRepository,
	secretKey []byte,
	sessionTTL time.Duration,
	adminEmail string,
) service.AuthService {
	return &serv{
		txManager:  txManager,
		userRepo:   userRepo,
		authRepo:   authRepo,
		secretKey:  secretKey,
		sessionTTL: sessionTTL,
		adminEmail: adminEmail,
		now:        time.Now,
	}
}
