package converter

import (
	"casino_web/internal/api/dto/slot"
	"casino_web/internal/model"
)

func ToSpin(req slot.SpinRequest) model.Spin {
	return model.Spin{
		Bet: req.Bet,
	}
}

func ToSpinResponse(res model.SpinResult) slot.SpinResponse {
	return slot.SpinResponse{
		Grid:    toGrid(res.Grid),
		Wins:    toLineWins(res.Wins),
		Payout:  res.Payout,
		Balance: res.Balance,
	}
}

func toGrid(grid model.Grid) [][]string {
	rows := make([][]string, len(grid))
	for i := range grid {
		rows[i] = append([]string(nil), grid[i][:]...)
	}
	return rows
}

func toLineWins(wins []model.LineWin) []slot.LineWin {
	result := make([]slot.LineWin, len(wins))
	for i, w := range wins {
		result[i] = slot.LineWin{
			Line:   w.Line,
			Symbol: w.Symbol,
			Amount: w.Amount,
		}
	}
	return result
}
