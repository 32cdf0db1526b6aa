package funds

import (
	"context"

	"casino_web/internal/middleware"
	"casino_web/internal/model"
	"casino_web/internal/svcerr"
)

// History - журнал операций текущего пользователя
func (s *serv) History(ctx context.Context, page model.Page) ([]model.Transaction, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, svcerr.ErrUnauthenticated
	}

	return s.txRepo.ListTransactions(ctx, userID, page.Normalize())
}
