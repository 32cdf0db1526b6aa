package funds

import (
	"time"

	"github.com/shopspring/decimal"
)

type AdjustRequest struct {
	Amount decimal.Decimal `json:"amount"` // Со знаком, не ноль
}

type BalanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}

type Transaction struct {
	ID        int64               `json:"id"`
	Type      string              `json:"type"` // adjust | admin_credit | spin
	Amount    decimal.Decimal     `json:"amount"`
	Bet       decimal.NullDecimal `json:"bet"`    // только для spin
	Payout    decimal.NullDecimal `json:"payout"` // только для spin
	CreatedAt time.Time           `json:"created_at"`
}

type TransactionsResponse struct {
	Transactions []Transaction `json:"transactions"`
}
