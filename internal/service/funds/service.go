package funds

import (
	"casino_web/internal/repository"
	"casino_web/internal/service"
)

type serv struct {
	ledger      service.LedgerService
	userRepo    repository.UserRepository
	txRepo      repository.TransactionRepository
	adminSecret string
}

func NewFundsService(
	ledger service.LedgerService,
	userRepo repository.UserRepository,
	txRepo repository.TransactionRepository,
	adminSecret string,
) service.FundsService {
	return &serv{
		ledger:      ledger,
		userRepo:    userRepo,
		txRepo:      txRepo,
		adminSecret: adminSecret,
	}
}
