package model

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// GridSize - размер игрового поля (GridSize x GridSize)
const GridSize = 3

type Grid [GridSize][GridSize]string

type Cell struct {
	Row int
	Col int
}

type Payline struct {
	Name  string
	Cells [GridSize]Cell
}

type SymbolPayout struct {
	Symbol     string
	Multiplier decimal.Decimal
}

// Paytable - неизменяемая конфигурация автомата: символы, множители и линии.
// Создаётся один раз при старте через NewPaytable.
type Paytable struct {
	symbols     []string
	multipliers map[string]decimal.Decimal
	paylines    []Payline
	maxBet      decimal.Decimal
}

// NewPaytable проверяет конфигурацию и собирает таблицу выплат
func NewPaytable(symbols []SymbolPayout, paylines []Payline, maxBet decimal.Decimal) (*Paytable, error) {
	if len(symbols) == 0 {
		return nil, errors.New("paytable: no symbols")
	}
	if len(paylines) == 0 {
		return nil, errors.New("paytable: no paylines")
	}
	if maxBet.IsNegative() {
		return nil, errors.New("paytable: max bet must not be negative")
	}

	p := &Paytable{
		symbols:     make([]string, 0, len(symbols)),
		multipliers: make(map[string]decimal.Decimal, len(symbols)),
		paylines:    make([]Payline, 0, len(paylines)),
		maxBet:      maxBet,
	}

	for _, s := range symbols {
		if s.Symbol == "" {
			return nil, errors.New("paytable: empty symbol")
		}
		if _, ok := p.multipliers[s.Symbol]; ok {
			return nil, fmt.Errorf("paytable: duplicate symbol %q", s.Symbol)
		}
		if !s.Multiplier.IsPositive() {
			return nil, fmt.Errorf("paytable: multiplier of %q must be positive", s.Symbol)
		}
		p.symbols = append(p.symbols, s.Symbol)
		p.multipliers[s.Symbol] = s.Multiplier
	}

	for i, line := range paylines {
		for _, c := range line.Cells {
			if c.Row < 0 || c.Row >= GridSize || c.Col < 0 || c.Col >= GridSize {
				return nil, fmt.Errorf("paytable: payline %d has cell (%d,%d) out of grid", i, c.Row, c.Col)
			}
		}
		p.paylines = append(p.paylines, line)
	}

	return p, nil
}

// Symbols возвращает копию набора символов
func (p *Paytable) Symbols() []string {
	return append([]string(nil), p.symbols...)
}

// Paylines возвращает копию набора линий
func (p *Paytable) Paylines() []Payline {
	return append([]Payline(nil), p.paylines...)
}

// Multiplier возвращает множитель символа. Для неизвестного символа - 1.
func (p *Paytable) Multiplier(symbol string) decimal.Decimal {
	if m, ok := p.multipliers[symbol]; ok {
		return m
	}
	return decimal.NewFromInt(1)
}

// MaxBet - максимальная ставка, ноль означает без ограничения
func (p *Paytable) MaxBet() decimal.Decimal {
	return p.maxBet
}

type Spin struct {
	Bet decimal.Decimal
}

type LineWin struct {
	Line   int
	Name   string
	Symbol string
	Amount decimal.Decimal
}

type Evaluation struct {
	Wins   []LineWin
	Payout decimal.Decimal
}

type SpinResult struct {
	Grid    Grid
	Wins    []LineWin
	Payout  decimal.Decimal
	Balance decimal.Decimal
}

type SlotStats struct {
	TotalSpins  int64
	TotalBet    decimal.Decimal
	TotalPayout decimal.Decimal
	RTP         float64
	WindowRTP   float64
	WindowSize  int
}
