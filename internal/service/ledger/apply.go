package ledger

import (
	"context"
	"fmt"

	"casino_web/internal/model"

	"github.com/shopspring/decimal"
)

// Apply изменяет баланс на entry.Amount и пишет запись в журнал в одной транзакции.
// Если баланс уйдёт в минус (и это не разрешено), ничего не меняется.
func (s *serv) Apply(ctx context.Context, entry model.LedgerEntry) (decimal.Decimal, error) {
	var balance decimal.Decimal

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		// Условное обновление, проверка на минус внутри запроса
		balance, err = s.userRepo.AddBalance(txCtx, entry.UserID, entry.Amount, entry.AllowNegative)
		if err != nil {
			return err
		}

		err = s.txRepo.CreateTransaction(txCtx, &model.Transaction{
			UserID: entry.UserID,
			Type:   entry.Type,
			Amount: entry.Amount,
			Bet:    entry.Bet,
			Payout: entry.Payout,
		})
		if err != nil {
			return fmt.Errorf("record %s transaction: %w", entry.Type, err)
		}

		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}

	return balance, nil
}
