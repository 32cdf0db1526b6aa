package env

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"casino_web/internal/config"
	"casino_web/internal/model"

	envparse "github.com/caarlos0/env/v11"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const defaultStatsWindow = 500

type slotFile struct {
	Slot struct {
		MaxBet      float64 `yaml:"max_bet"`
		StatsWindow int     `yaml:"stats_window"`
		Symbols     []struct {
			ID         string  `yaml:"id"`
			Multiplier float64 `yaml:"multiplier"`
		} `yaml:"symbols"`
		Paylines []struct {
			Name  string  `yaml:"name"`
			Cells [][]int `yaml:"cells"`
		} `yaml:"paylines"`
	} `yaml:"slot"`
}

type slotConfig struct {
	paytable    *model.Paytable
	statsWindow int
}

type slotPath struct {
	Path string `env:"SLOT_CONFIG_PATH" envDefault:"config.yaml"`
}

// NewSlotConfig читает таблицу выплат из SLOT_CONFIG_PATH.
// Если файла нет, используется стандартная таблица.
func NewSlotConfig() (config.SlotConfig, error) {
	var p slotPath
	if err := envparse.Parse(&p); err != nil {
		return nil, err
	}

	cfg, err := NewSlotConfigFromYAML(p.Path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Warn("slot config not found, using default paytable", "path", p.Path)
		return DefaultSlotConfig(), nil
	}
	return cfg, err
}

// NewSlotConfigFromYAML загружает и проверяет конфигурацию автомата из YAML файла
func NewSlotConfigFromYAML(path string) (config.SlotConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ParseSlotConfig(data)
}

// ParseSlotConfig разбирает YAML с секцией slot
func ParseSlotConfig(data []byte) (config.SlotConfig, error) {
	var f slotFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("invalid slot config: %w", err)
	}

	symbols := make([]model.SymbolPayout, 0, len(f.Slot.Symbols))
	for _, s := range f.Slot.Symbols {
		symbols = append(symbols, model.SymbolPayout{
			Symbol:     s.ID,
			Multiplier: decimal.NewFromFloat(s.Multiplier),
		})
	}

	paylines := make([]model.Payline, 0, len(f.Slot.Paylines))
	for i, l := range f.Slot.Paylines {
		if len(l.Cells) != model.GridSize {
			return nil, fmt.Errorf("invalid slot config: payline %d must have %d cells", i, model.GridSize)
		}
		line := model.Payline{Name: l.Name}
		for j, c := range l.Cells {
			if len(c) != 2 {
				return nil, fmt.Errorf("invalid slot config: payline %d cell %d must be [row, col]", i, j)
			}
			line.Cells[j] = model.Cell{Row: c[0], Col: c[1]}
		}
		paylines = append(paylines, line)
	}

	paytable, err := model.NewPaytable(symbols, paylines, decimal.NewFromFloat(f.Slot.MaxBet))
	if err != nil {
		return nil, fmt.Errorf("invalid slot config: %w", err)
	}

	window := f.Slot.StatsWindow
	if window <= 0 {
		window = defaultStatsWindow
	}

	return &slotConfig{paytable: paytable, statsWindow: window}, nil
}

// DefaultSlotConfig - стандартный автомат: 5 символов, 3 горизонтали и 2 диагонали
func DefaultSlotConfig() config.SlotConfig {
	paytable, err := model.NewPaytable(
		[]model.SymbolPayout{
			{Symbol: "🍒", Multiplier: decimal.NewFromInt(1)},
			{Symbol: "🍋", Multiplier: decimal.RequireFromString("1.2")},
			{Symbol: "🔔", Multiplier: decimal.NewFromInt(2)},
			{Symbol: "⭐", Multiplier: decimal.NewFromInt(3)},
			{Symbol: "7️⃣", Multiplier: decimal.NewFromInt(5)},
		},
		[]model.Payline{
			{Name: "top", Cells: [model.GridSize]model.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}},
			{Name: "middle", Cells: [model.GridSize]model.Cell{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}}},
			{Name: "bottom", Cells: [model.GridSize]model.Cell{{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}}},
			{Name: "diag_down", Cells: [model.GridSize]model.Cell{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}}},
			{Name: "diag_up", Cells: [model.GridSize]model.Cell{{Row: 2, Col: 0}, {Row: 1, Col: 1}, {Row: 0, Col: 2}}},
		},
		decimal.Zero,
	)
	if err != nil {
		panic("default paytable is invalid: " + err.Error())
	}

	return &slotConfig{paytable: paytable, statsWindow: defaultStatsWindow}
}

func (cfg *slotConfig) Paytable() *model.Paytable {
	return cfg.paytable
}

func (cfg *slotConfig) StatsWindow() int {
	return cfg.statsWindow
}
