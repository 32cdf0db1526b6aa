package slot

import (
	"casino_web/internal/model"

	"github.com/shopspring/decimal"
)

// EvaluatePaylines проверяет все линии: линия выигрывает, если три её символа совпадают.
// Выплата линии = ставка * множитель символа. Засчитываются все выигравшие линии.
func EvaluatePaylines(paytable *model.Paytable, grid model.Grid, bet decimal.Decimal) model.Evaluation {
	eval := model.Evaluation{
		Wins:   []model.LineWin{},
		Payout: decimal.Zero,
	}

	for i, line := range paytable.Paylines() {
		first := grid[line.Cells[0].Row][line.Cells[0].Col]

		matched := true
		for _, cell := range line.Cells[1:] {
			if grid[cell.Row][cell.Col] != first {
				matched = false
				break
			}
		}
		if !matched {
			continue
		}

		amount := bet.Mul(paytable.Multiplier(first)).Round(model.MoneyPlaces)
		eval.Wins = append(eval.Wins, model.LineWin{
			Line:   i,
			Name:   line.Name,
			Symbol: first,
			Amount: amount,
		})
		eval.Payout = eval.Payout.Add(amount)
	}

	return eval
}
