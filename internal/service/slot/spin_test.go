package slot

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	dto "casino_web/internal/api/dto/slot"
	"casino_web/internal/middleware"
	"casino_web/internal/model"
	"casino_web/internal/repository/fake"
	"casino_web/internal/repository/stats_repo"
	"casino_web/internal/service/ledger"
	"casino_web/internal/svcerr"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Индексы символов в таблице по умолчанию
const (
	cherry = 0
	lemon  = 1
	bell   = 2
	star   = 3
	seven  = 4
)

type spinRecorder struct {
	spins []model.Spin
}

func (r *spinRecorder) ObserveSpin(spinReq model.Spin, _ *model.SpinResult) {
	r.spins = append(r.spins, spinReq)
}

type fixture struct {
	store    *fake.Store
	user     *model.User
	serv     *serv
	recorder *spinRecorder
	ctx      context.Context
}

func newFixture(t *testing.T, balance decimal.Decimal, table *model.Paytable) *fixture {
	t.Helper()
	store := fake.NewStore()
	user := store.SeedUser("player@casino.local", balance)
	recorder := &spinRecorder{}
	s := NewSlotService(
		table,
		store,
		stats_repo.NewStatsRepository(10),
		ledger.NewLedgerService(store, store, store),
		store,
		recorder,
	).(*serv)

	return &fixture{
		store:    store,
		user:     user,
		serv:     s,
		recorder: recorder,
		ctx:      middleware.WithIdentity(context.Background(), model.Identity{UserID: user.ID, SessionID: "s"}),
	}
}

// script задаёт поле построчно
func (f *fixture) script(cells ...int) {
	i := 0
	f.serv.intn = func(int) int {
		v := cells[i%len(cells)]
		i++
		return v
	}
}

func TestSpinTopRowCherryBreaksEven(t *testing.T) {
	f := newFixture(t, decimal.NewFromInt(100), paytable(t))
	f.script(
		cherry, cherry, cherry,
		lemon, bell, star,
		seven, lemon, bell,
	)

	res, err := f.serv.Spin(f.ctx, model.Spin{Bet: decimal.NewFromInt(10)})
	require.NoError(t, err)

	assert.Equal(t, "🍒", res.Grid[0][0])
	require.Len(t, res.Wins, 1)
	assert.Equal(t, "10", res.Payout.String())
	assert.Equal(t, "100", res.Balance.String())

	txs := f.store.Transactions()
	require.Len(t, txs, 1)
	assert.Equal(t, model.TransactionSpin, txs[0].Type)
	assert.True(t, txs[0].Amount.IsZero())
	assert.Equal(t, "10", txs[0].Bet.Decimal.String())
	assert.Equal(t, "10", txs[0].Payout.Decimal.String())
}

func TestSpinThreeRows(t *testing.T) {
	f := newFixture(t, decimal.NewFromInt(100), paytable(t))
	f.script(
		cherry, cherry, cherry,
		bell, bell, bell,
		star, star, star,
	)

	res, err := f.serv.Spin(f.ctx, model.Spin{Bet: decimal.NewFromInt(5)})
	require.NoError(t, err)

	assert.Len(t, res.Wins, 3)
	assert.Equal(t, "30", res.Payout.String())
	assert.Equal(t, "125", res.Balance.String())
	assert.Equal(t, "25", f.store.Transactions()[0].Amount.String())
}

func TestSpinLoss(t *testing.T) {
	f := newFixture(t, decimal.NewFromInt(10), paytable(t))
	f.script(
		cherry, lemon, bell,
		star, seven, cherry,
		lemon, bell, star,
	)

	res, err := f.serv.Spin(f.ctx, model.Spin{Bet: decimal.NewFromInt(10)})
	require.NoError(t, err)

	assert.Empty(t, res.Wins)
	assert.True(t, res.Payout.IsZero())
	assert.True(t, res.Balance.IsZero())
	assert.Equal(t, "-10", f.store.Transactions()[0].Amount.String())

	_, err = f.serv.Spin(f.ctx, model.Spin{Bet: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, svcerr.ErrInsufficientFunds)
	assert.Len(t, f.store.Transactions(), 1)
	assert.True(t, f.store.Balance(f.user.ID).IsZero())
}

func TestSpinInsufficientFunds(t *testing.T) {
	f := newFixture(t, decimal.NewFromInt(5), paytable(t))
	f.script(cherry)

	_, err := f.serv.Spin(f.ctx, model.Spin{Bet: decimal.NewFromInt(10)})
	assert.ErrorIs(t, err, svcerr.ErrInsufficientFunds)
	assert.Equal(t, "5", f.store.Balance(f.user.ID).String())
	assert.Empty(t, f.store.Transactions())
	assert.Empty(t, f.recorder.spins)
}

func TestSpinInvalidBet(t *testing.T) {
	f := newFixture(t, decimal.NewFromInt(100), paytable(t))

	for _, bet := range []string{"0", "-1", "0.001"} {
		_, err := f.serv.Spin(f.ctx, model.Spin{Bet: decimal.RequireFromString(bet)})
		assert.ErrorIs(t, err, svcerr.ErrValidation, bet)
		assert.Equal(t, "invalid bet", svcerr.Message(err), bet)
	}
	assert.Zero(t, f.store.TxCalls)
}

func TestSpinRejectsHugeBet(t *testing.T) {
	f := newFixture(t, decimal.NewFromInt(100), paytable(t))

	var req dto.SpinRequest
	require.NoError(t, json.Unmarshal([]byte(`{"bet": 1e30000000}`), &req))

	start := time.Now()
	_, err := f.serv.Spin(f.ctx, model.Spin{Bet: req.Bet})
	assert.ErrorIs(t, err, svcerr.ErrValidation)
	assert.Equal(t, "invalid bet", svcerr.Message(err))
	assert.Less(t, time.Since(start), time.Second)

	_, err = f.serv.Spin(f.ctx, model.Spin{Bet: decimal.RequireFromString("1e13")})
	assert.ErrorIs(t, err, svcerr.ErrValidation)
	assert.Zero(t, f.store.TxCalls)
}

func TestSpinMaxBet(t *testing.T) {
	base := paytable(t)
	symbols := make([]model.SymbolPayout, 0, len(base.Symbols()))
	for _, s := range base.Symbols() {
		symbols = append(symbols, model.SymbolPayout{Symbol: s, Multiplier: base.Multiplier(s)})
	}
	table, err := model.NewPaytable(symbols, base.Paylines(), decimal.NewFromInt(20))
	require.NoError(t, err)

	f := newFixture(t, decimal.NewFromInt(100), table)
	f.script(cherry, lemon, bell, star)

	_, err = f.serv.Spin(f.ctx, model.Spin{Bet: decimal.NewFromInt(21)})
	assert.ErrorIs(t, err, svcerr.ErrValidation)

	_, err = f.serv.Spin(f.ctx, model.Spin{Bet: decimal.NewFromInt(20)})
	assert.NoError(t, err)
}

func TestSpinUnauthenticated(t *testing.T) {
	f := newFixture(t, decimal.NewFromInt(100), paytable(t))

	_, err := f.serv.Spin(context.Background(), model.Spin{Bet: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, svcerr.ErrUnauthenticated)
}

func TestSpinUserNotFound(t *testing.T) {
	f := newFixture(t, decimal.NewFromInt(100), paytable(t))
	ctx := middleware.WithIdentity(context.Background(), model.Identity{UserID: f.user.ID + 100})

	_, err := f.serv.Spin(ctx, model.Spin{Bet: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, svcerr.ErrUserNotFound)
}

func TestSpinRollsBackWhenLogFails(t *testing.T) {
	f := newFixture(t, decimal.NewFromInt(100), paytable(t))
	f.script(cherry, lemon, bell, star)
	f.store.FailCreateTransaction = errors.New("disk full")

	_, err := f.serv.Spin(f.ctx, model.Spin{Bet: decimal.NewFromInt(10)})
	require.Error(t, err)
	assert.Equal(t, "100", f.store.Balance(f.user.ID).String())
	assert.Empty(t, f.store.Transactions())
	assert.Zero(t, f.serv.Stats().TotalSpins)
}

func TestSpinUpdatesStats(t *testing.T) {
	f := newFixture(t, decimal.NewFromInt(100), paytable(t))
	f.script(
		cherry, cherry, cherry,
		lemon, bell, star,
		seven, lemon, bell,
	)

	for i := 0; i < 3; i++ {
		_, err := f.serv.Spin(f.ctx, model.Spin{Bet: decimal.NewFromInt(10)})
		require.NoError(t, err)
	}

	stats := f.serv.Stats()
	assert.Equal(t, int64(3), stats.TotalSpins)
	assert.Equal(t, "30", stats.TotalBet.String())
	assert.Equal(t, "30", stats.TotalPayout.String())
	assert.InDelta(t, 1.0, stats.RTP, 1e-9)
	assert.Len(t, f.recorder.spins, 3)
}

func TestSpinNeverGoesNegative(t *testing.T) {
	f := newFixture(t, decimal.NewFromInt(7), paytable(t))
	f.script(cherry, lemon, bell, star, seven, cherry, lemon, bell)

	for i := 0; i < 20; i++ {
		_, err := f.serv.Spin(f.ctx, model.Spin{Bet: decimal.NewFromInt(2)})
		if err != nil {
			assert.ErrorIs(t, err, svcerr.ErrInsufficientFunds)
		}
		assert.False(t, f.store.Balance(f.user.ID).IsNegative())
	}
	assert.Equal(t, "1", f.store.Balance(f.user.ID).String())
}
