package ledger

import (
	"casino_web/internal/repository"
	"casino_web/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	userRepo  repository.UserRepository
	txRepo    repository.TransactionRepository
	txManager trm.Manager
}

// NewLedgerService - изменение баланса вместе с записью в журнал операций
func NewLedgerService(
	userRepo repository.UserRepository,
	txRepo repository.TransactionRepository,
	txManager trm.Manager,
) service.LedgerService {
	return &serv{
		userRepo:  userRepo,
		txRepo:    txRepo,
		txManager: txManager,
	}
}
