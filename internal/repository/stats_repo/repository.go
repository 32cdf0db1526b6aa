package stats_repo

import (
	"sync"

	"casino_web/internal/model"
	"casino_web/internal/repository"

	"github.com/shopspring/decimal"
)

// spinRecord - результат спина для окна
type spinRecord struct {
	bet    decimal.Decimal
	payout decimal.Decimal
}

// StateRepo хранит статистику автомата в памяти процесса
type StateRepo struct {
	mtx sync.RWMutex

	totalSpins  int64
	totalBet    decimal.Decimal
	totalPayout decimal.Decimal

	// Кольцевой буфер последних спинов
	window     []spinRecord
	next       int
	windowSize int
	windowBet  decimal.Decimal
	windowPay  decimal.Decimal
}

// NewStatsRepository создаёт репозиторий с окном из windowSize последних спинов
func NewStatsRepository(windowSize int) repository.StatsRepository {
	if windowSize <= 0 {
		windowSize = 1
	}
	return &StateRepo{
		window:     make([]spinRecord, 0, windowSize),
		windowSize: windowSize,
	}
}

// UpdateState обновляет статистику после спина
func (r *StateRepo) UpdateState(bet, payout decimal.Decimal) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.totalSpins++
	r.totalBet = r.totalBet.Add(bet)
	r.totalPayout = r.totalPayout.Add(payout)

	rec := spinRecord{bet: bet, payout: payout}

	// Окно ещё не заполнено - просто добавляем
	if len(r.window) < r.windowSize {
		r.window = append(r.window, rec)
	} else {
		// Вытесняем самый старый спин
		old := r.window[r.next]
		r.windowBet = r.windowBet.Sub(old.bet)
		r.windowPay = r.windowPay.Sub(old.payout)
		r.window[r.next] = rec
		r.next = (r.next + 1) % r.windowSize
	}

	r.windowBet = r.windowBet.Add(bet)
	r.windowPay = r.windowPay.Add(payout)
}

// Snapshot возвращает копию текущей статистики
func (r *StateRepo) Snapshot() model.SlotStats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	return model.SlotStats{
		TotalSpins:  r.totalSpins,
		TotalBet:    r.totalBet,
		TotalPayout: r.totalPayout,
		RTP:         rtp(r.totalPayout, r.totalBet),
		WindowRTP:   rtp(r.windowPay, r.windowBet),
		WindowSize:  len(r.window),
	}
}

// rtp = payout / bet * 100
func rtp(payout, bet decimal.Decimal) float64 {
	if !bet.IsPositive() {
		return 0
	}
	return payout.Div(bet).Mul(decimal.NewFromInt(100)).InexactFloat64()
}
