package converter

import (
	adminDTO "casino_web/internal/api/dto/admin"
	fundsDTO "casino_web/internal/api/dto/funds"
	"casino_web/internal/model"
)

func ToAdminCredit(req adminDTO.CreditRequest) model.AdminCredit {
	return model.AdminCredit{
		Email:  req.Email,
		Amount: req.Amount,
		Secret: req.Secret,
	}
}

func ToTransactionsResponse(txs []model.Transaction) fundsDTO.TransactionsResponse {
	result := make([]fundsDTO.Transaction, len(txs))
	for i, t := range txs {
		result[i] = fundsDTO.Transaction{
			ID:        t.ID,
			Type:      string(t.Type),
			Amount:    t.Amount,
			Bet:       t.Bet,
			Payout:    t.Payout,
			CreatedAt: t.CreatedAt,
		}
	}
	return fundsDTO.TransactionsResponse{Transactions: result}
}

func ToStatsResponse(stats model.SlotStats) adminDTO.StatsResponse {
	return adminDTO.StatsResponse{
		TotalSpins:  stats.TotalSpins,
		TotalBet:    stats.TotalBet,
		TotalPayout: stats.TotalPayout,
		RTP:         stats.RTP,
		WindowRTP:   stats.WindowRTP,
		WindowSize:  stats.WindowSize,
	}
}
