package funds

import (
	"context"
	"crypto/subtle"

	"casino_web/internal/model"
	"casino_web/internal/svcerr"

	"github.com/shopspring/decimal"
)

// AdminCredit начисляет сумму пользователю по email по общему секрету.
// Баланс может уйти в минус.
func (s *serv) AdminCredit(ctx context.Context, credit model.AdminCredit) (decimal.Decimal, error) {
	if subtle.ConstantTimeCompare([]byte(credit.Secret), []byte(s.adminSecret)) != 1 {
		return decimal.Zero, svcerr.ErrForbidden
	}

	if credit.Amount.IsZero() || !model.IsMoney(credit.Amount) {
		return decimal.Zero, svcerr.Validation(msgInvalidAmount)
	}

	user, err := s.userRepo.GetUserByEmail(ctx, credit.Email)
	if err != nil {
		return decimal.Zero, err
	}

	return s.ledger.Apply(ctx, model.LedgerEntry{
		UserID:        user.ID,
		Type:          model.TransactionAdminCredit,
		Amount:        credit.Amount,
		AllowNegative: true,
	})
}
