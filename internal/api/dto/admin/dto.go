package admin

import "github.com/shopspring/decimal"

type CreditRequest struct {
	Email  string          `json:"email"`
	Amount decimal.Decimal `json:"amount"`
	Secret string          `json:"secret"`
}

type CreditResponse struct {
	Email   string          `json:"email"`
	Balance decimal.Decimal `json:"balance"`
}

type StatsResponse struct {
	TotalSpins  int64           `json:"total_spins"`
	TotalBet    decimal.Decimal `json:"total_bet"`
	TotalPayout decimal.Decimal `json:"total_payout"`
	RTP         float64         `json:"rtp"`
	WindowRTP   float64         `json:"window_rtp"` // RTP за последние WindowSize спинов
	WindowSize  int             `json:"window_size"`
}
