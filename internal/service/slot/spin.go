package slot

import (
	"context"

	"casino_web/internal/logger"
	"casino_web/internal/middleware"
	"casino_web/internal/model"
	"casino_web/internal/svcerr"

	"github.com/shopspring/decimal"
)

const msgInvalidBet = "invalid bet"

// Spin списывает ставку, крутит барабаны и начисляет выигрыш.
// В журнал пишется одна запись spin с чистым изменением payout - bet.
func (s *serv) Spin(ctx context.Context, spinReq model.Spin) (*model.SpinResult, error) {
	// Получаем ID пользователя
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, svcerr.ErrUnauthenticated
	}

	// Валидация ставки
	if err := s.validateBet(spinReq.Bet); err != nil {
		return nil, err
	}

	var res *model.SpinResult

	// Баланс читается с блокировкой строки, поэтому параллельный спин того же
	// пользователя дождётся окончания этой транзакции
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		balance, err := s.userRepo.GetBalanceForUpdate(txCtx, userID)
		if err != nil {
			return err
		}
		if balance.LessThan(spinReq.Bet) {
			return svcerr.ErrInsufficientFunds
		}

		grid := GenerateGrid(s.paytable.Symbols(), s.intn)
		eval := EvaluatePaylines(s.paytable, grid, spinReq.Bet)
		net := eval.Payout.Sub(spinReq.Bet)

		newBalance, err := s.ledger.Apply(txCtx, model.LedgerEntry{
			UserID: userID,
			Type:   model.TransactionSpin,
			Amount: net,
			Bet:    decimal.NewNullDecimal(spinReq.Bet),
			Payout: decimal.NewNullDecimal(eval.Payout),
		})
		if err != nil {
			return err
		}

		res = &model.SpinResult{
			Grid:    grid,
			Wins:    eval.Wins,
			Payout:  eval.Payout,
			Balance: newBalance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Обновляем статистику
	s.statsRepo.UpdateState(spinReq.Bet, res.Payout)
	if s.observer != nil {
		s.observer.ObserveSpin(spinReq, res)
	}

	logger.FromContext(ctx).Debug("spin",
		"user_id", userID,
		"bet", spinReq.Bet.String(),
		"payout", res.Payout.String(),
		"wins", len(res.Wins),
	)

	return res, nil
}

func (s *serv) validateBet(bet decimal.Decimal) error {
	if !bet.IsPositive() || !model.IsMoney(bet) {
		return svcerr.Validation(msgInvalidBet)
	}
	if maxBet := s.paytable.MaxBet(); maxBet.IsPositive() && bet.GreaterThan(maxBet) {
		return svcerr.Validation(msgInvalidBet)
	}
	return nil
}
