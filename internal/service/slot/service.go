package slot

import (
	"math/rand/v2"

	"casino_web/internal/model"
	"casino_web/internal/repository"
	"casino_web/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

// SpinObserver получает каждый успешный спин (метрики)
type SpinObserver interface {
	ObserveSpin(spinReq model.Spin, res *model.SpinResult)
}

type serv struct {
	paytable  *model.Paytable
	userRepo  repository.UserRepository
	statsRepo repository.StatsRepository
	ledger    service.LedgerService
	txManager trm.Manager
	observer  SpinObserver
	intn      func(n int) int // Подменяется в тестах
}

// NewSlotService Создать автомат 3x3 с таблицей выплат paytable
func NewSlotService(
	paytable *model.Paytable,
	userRepo repository.UserRepository,
	statsRepo repository.StatsRepository,
	ledger service.LedgerService,
	txManager trm.Manager,
	observer SpinObserver,
) service.SlotService {
	return &serv{
		paytable:  paytable,
		userRepo:  userRepo,
		statsRepo: statsRepo,
		ledger:    ledger,
		txManager: txManager,
		observer:  observer,
		intn:      rand.IntN,
	}
}

// Stats - статистика автомата с момента запуска
func (s *serv) Stats() model.SlotStats {
	return s.statsRepo.Snapshot()
}
