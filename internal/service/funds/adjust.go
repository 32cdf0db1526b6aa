package funds

import (
	"context"

	"casino_web/internal/middleware"
	"casino_web/internal/model"
	"casino_web/internal/svcerr"

	"github.com/shopspring/decimal"
)

const msgInvalidAmount = "invalid amount"

// Adjust пополняет или списывает средства текущего пользователя.
// Ноль запрещён, баланс не может стать отрицательным.
func (s *serv) Adjust(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return decimal.Zero, svcerr.ErrUnauthenticated
	}

	if amount.IsZero() || !model.IsMoney(amount) {
		return decimal.Zero, svcerr.Validation(msgInvalidAmount)
	}

	return s.ledger.Apply(ctx, model.LedgerEntry{
		UserID: userID,
		Type:   model.TransactionAdjust,
		Amount: amount,
	})
}
