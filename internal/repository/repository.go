package repository

import (
	"context"

	"casino_web/internal/model"

	"github.com/shopspring/decimal"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int64, err error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, id int64) (*model.User, error)

	// GetBalanceForUpdate читает баланс и блокирует строку до конца транзакции
	GetBalanceForUpdate(ctx context.Context, id int64) (decimal.Decimal, error)
	// AddBalance атомарно прибавляет delta к балансу и возвращает новый баланс.
	// Без allowNegative отказывает с svcerr.ErrInsufficientFunds, если баланс уйдёт в минус.
	AddBalance(ctx context.Context, id int64, delta decimal.Decimal, allowNegative bool) (decimal.Decimal, error)
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, sessionID string) (*model.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type TransactionRepository interface {
	CreateTransaction(ctx context.Context, tx *model.Transaction) error
	ListTransactions(ctx context.Context, userID int64, page model.Page) ([]model.Transaction, error)
}

type StatsRepository interface {
	UpdateState(bet, payout decimal.Decimal)
	Snapshot() model.SlotStats
}
