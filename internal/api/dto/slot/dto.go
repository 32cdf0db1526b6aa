package slot

import "github.com/shopspring/decimal"

type SpinRequest struct {
	Bet decimal.Decimal `json:"bet"` // > 0, не больше двух знаков после запятой
}

type SpinResponse struct {
	Grid    [][]string      `json:"grid"` // 3 строки по 3 символа
	Wins    []LineWin       `json:"wins"`
	Payout  decimal.Decimal `json:"payout"`  // Общая выплата до вычета ставки
	Balance decimal.Decimal `json:"balance"` // Баланс после
}

type LineWin struct {
	Line   int             `json:"line"` // 0-4: top, middle, bottom, diag_down, diag_up
	Symbol string          `json:"symbol"`
	Amount decimal.Decimal `json:"amount"`
}
