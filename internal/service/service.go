package service

import (
	"context"

	"casino_web/internal/model"

	"github.com/shopspring/decimal"
)

type AuthService interface {
	Register(ctx context.Context, creds model.Credentials) (*model.AuthData, error)
	Login(ctx context.Context, creds model.Credentials) (*model.AuthData, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*model.Identity, error)
	Me(ctx context.Context) (*model.User, error)
}

type LedgerService interface {
	Apply(ctx context.Context, entry model.LedgerEntry) (balance decimal.Decimal, err error)
}

type FundsService interface {
	Adjust(ctx context.Context, amount decimal.Decimal) (balance decimal.Decimal, err error)
	AdminCredit(ctx context.Context, credit model.AdminCredit) (balance decimal.Decimal, err error)
	History(ctx context.Context, page model.Page) ([]model.Transaction, error)
}

type SlotService interface {
	Spin(ctx context.Context, spinReq model.Spin) (*model.SpinResult, error)
	Stats() model.SlotStats
}
