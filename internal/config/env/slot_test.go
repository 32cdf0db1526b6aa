package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSlotYAML = `
slot:
  max_bet: 50
  stats_window: 10
  symbols:
    - id: A
      multiplier: 1
    - id: B
      multiplier: 1.2
  paylines:
    - name: top
      cells: [[0, 0], [0, 1], [0, 2]]
    - name: diag_up
      cells: [[2, 0], [1, 1], [0, 2]]
`

func TestParseSlotConfig(t *testing.T) {
	cfg, err := ParseSlotConfig([]byte(testSlotYAML))
	require.NoError(t, err)

	p := cfg.Paytable()
	assert.Equal(t, []string{"A", "B"}, p.Symbols())
	assert.Equal(t, "1.2", p.Multiplier("B").String())
	assert.True(t, p.MaxBet().Equal(decimal.NewFromInt(50)))
	assert.Equal(t, 10, cfg.StatsWindow())

	lines := p.Paylines()
	require.Len(t, lines, 2)
	assert.Equal(t, "diag_up", lines[1].Name)
	assert.Equal(t, 2, lines[1].Cells[0].Row)
	assert.Equal(t, 2, lines[1].Cells[2].Col)
}

func TestParseSlotConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "not yaml",
			yaml: "slot: [",
		},
		{
			name: "no symbols",
			yaml: "slot:\n  paylines:\n    - name: top\n      cells: [[0, 0], [0, 1], [0, 2]]\n",
		},
		{
			name: "short payline",
			yaml: "slot:\n  symbols:\n    - id: A\n      multiplier: 1\n  paylines:\n    - name: top\n      cells: [[0, 0], [0, 1]]\n",
		},
		{
			name: "bad cell",
			yaml: "slot:\n  symbols:\n    - id: A\n      multiplier: 1\n  paylines:\n    - name: top\n      cells: [[0, 0], [0, 1], [0]]\n",
		},
		{
			name: "cell out of grid",
			yaml: "slot:\n  symbols:\n    - id: A\n      multiplier: 1\n  paylines:\n    - name: top\n      cells: [[0, 0], [0, 1], [0, 5]]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSlotConfig([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestDefaultSlotConfig(t *testing.T) {
	cfg := DefaultSlotConfig()
	p := cfg.Paytable()

	assert.Len(t, p.Symbols(), 5)
	assert.Len(t, p.Paylines(), 5)
	assert.Equal(t, "5", p.Multiplier("7️⃣").String())
	assert.True(t, p.MaxBet().IsZero())
	assert.Equal(t, defaultStatsWindow, cfg.StatsWindow())
}

func TestNewSlotConfigFallsBackToDefault(t *testing.T) {
	t.Setenv("SLOT_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := NewSlotConfig()
	require.NoError(t, err)
	assert.Len(t, cfg.Paytable().Paylines(), 5)
}

func TestNewSlotConfigReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testSlotYAML), 0o600))
	t.Setenv("SLOT_CONFIG_PATH", path)

	cfg, err := NewSlotConfig()
	require.NoError(t, err)
	assert.Len(t, cfg.Paytable().Paylines(), 2)
}

func TestRepositoryConfigFileIsValid(t *testing.T) {
	cfg, err := NewSlotConfigFromYAML("../../../config.yaml")
	require.NoError(t, err)

	def := DefaultSlotConfig().Paytable()
	p := cfg.Paytable()
	assert.Equal(t, def.Symbols(), p.Symbols())
	assert.Equal(t, def.Paylines(), p.Paylines())
	for _, s := range def.Symbols() {
		assert.True(t, def.Multiplier(s).Equal(p.Multiplier(s)), s)
	}
}
