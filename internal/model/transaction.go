package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionAdjust      TransactionType = "adjust"
	TransactionAdminCredit TransactionType = "admin_credit"
	TransactionSpin        TransactionType = "spin"
)

// Transaction - запись журнала операций. Amount - изменение баланса со знаком.
// Bet и Payout заполняются только для спинов.
type Transaction struct {
	ID        int64
	UserID    int64
	Type      TransactionType
	Amount    decimal.Decimal
	Bet       decimal.NullDecimal
	Payout    decimal.NullDecimal
	CreatedAt time.Time
}

// LedgerEntry - изменение баланса вместе с записью в журнал
type LedgerEntry struct {
	UserID        int64
	Type          TransactionType
	Amount        decimal.Decimal
	Bet           decimal.NullDecimal
	Payout        decimal.NullDecimal
	AllowNegative bool
}

type AdminCredit struct {
	Email  string
	Amount decimal.Decimal
	Secret string
}

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

type Page struct {
	Limit  int
	Offset int
}

// Normalize приводит лимит и смещение к допустимым значениям.
// Нулевой лимит - не задан, берётся DefaultPageLimit; остальные прижимаются к [1, MaxPageLimit].
func (p Page) Normalize() Page {
	if p.Limit == 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit < 1 {
		p.Limit = 1
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}
