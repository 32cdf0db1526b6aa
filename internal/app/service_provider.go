package app

import (
	"context"
	"log/slog"
	"net/http"

	adminAPI "casino_web/internal/api/admin"
	authAPI "casino_web/internal/api/auth"
	fundsAPI "casino_web/internal/api/funds"
	healthAPI "casino_web/internal/api/health"
	slotAPI "casino_web/internal/api/slot"
	"casino_web/internal/config"
	"casino_web/internal/config/env"
	"casino_web/internal/logger"
	"casino_web/internal/metrics"
	"casino_web/internal/middleware"
	"casino_web/internal/migrations"
	"casino_web/internal/repository"
	"casino_web/internal/repository/auth_repo"
	"casino_web/internal/repository/stats_repo"
	"casino_web/internal/repository/transaction_repo"
	"casino_web/internal/repository/user_repo"
	"casino_web/internal/service"
	"casino_web/internal/service/auth"
	"casino_web/internal/service/funds"
	"casino_web/internal/service/ledger"
	"casino_web/internal/service/slot"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
)

// maxBodyBytes - предельный размер тела запроса
const maxBodyBytes = 1 << 20

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Logging and metrics
	logCfg  config.LogConfig
	metrics *metrics.Metrics

	// Auth bits
	sessionCfg config.SessionConfig
	adminCfg   config.AdminConfig
	authRepo   repository.AuthRepository
	authServ   service.AuthService
	authHand   *authAPI.Handler

	// User bits
	userRepo repository.UserRepository

	// Ledger bits
	txRepo    repository.TransactionRepository
	ledger    service.LedgerService
	fundsServ service.FundsService
	fundsHand *fundsAPI.Handler
	adminHand *adminAPI.Handler

	// Slot bits
	slotCfg   config.SlotConfig
	statsRepo repository.StatsRepository
	slotServ  service.SlotService
	slotHand  *slotAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) LogCfg() config.LogConfig {
	if sp.logCfg == nil {
		cfg, err := env.NewLogConfig()
		if err != nil {
			panic("failed to get log config: " + err.Error())
		}
		sp.logCfg = cfg
	}
	return sp.logCfg
}

func (sp *ServiceProvider) Logger() *slog.Logger {
	return logger.Setup(logger.Config{
		Level:  sp.LogCfg().Level(),
		Format: sp.LogCfg().Format(),
	})
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}

		if sp.PgConfig().MigrateOnStart() {
			if err = migrations.Up(ctx, dbc); err != nil {
				panic("failed to apply migrations: " + err.Error())
			}
		}

		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) Metrics() *metrics.Metrics {
	if sp.metrics == nil {
		sp.metrics = metrics.New()
	}
	return sp.metrics
}

func (sp *ServiceProvider) SessionCfg() config.SessionConfig {
	if sp.sessionCfg == nil {
		cfg, err := env.NewSessionConfig()
		if err != nil {
			panic("failed to get session config: " + err.Error())
		}
		sp.sessionCfg = cfg
	}
	return sp.sessionCfg
}

func (sp *ServiceProvider) AdminCfg() config.AdminConfig {
	if sp.adminCfg == nil {
		cfg, err := env.NewAdminConfig()
		if err != nil {
			panic("failed to get admin config: " + err.Error())
		}
		sp.adminCfg = cfg
	}
	return sp.adminCfg
}

func (sp *ServiceProvider) AuthRepo(ctx context.Context) repository.AuthRepository {
	if sp.authRepo == nil {
		sp.authRepo = auth_repo.NewAuthRepository(sp.DBClient(ctx))
	}
	return sp.authRepo
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx))
	}
	return sp.userRepo
}

func (sp *ServiceProvider) TransactionRepo(ctx context.Context) repository.TransactionRepository {
	if sp.txRepo == nil {
		sp.txRepo = transaction_repo.NewTransactionRepository(sp.DBClient(ctx))
	}
	return sp.txRepo
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewAuthService(
			sp.TXManager(ctx),
			sp.UserRepo(ctx),
			sp.AuthRepo(ctx),
			sp.SessionCfg().SecretKey(),
			sp.SessionCfg().TTL(),
			sp.AdminCfg().Email(),
		)
	}
	return sp.authServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{
			Serv:         sp.AuthService(ctx),
			CookieSecure: sp.SessionCfg().CookieSecure(),
		})
	}
	return sp.authHand
}

func (sp *ServiceProvider) LedgerService(ctx context.Context) service.LedgerService {
	if sp.ledger == nil {
		sp.ledger = ledger.NewLedgerService(sp.UserRepo(ctx), sp.TransactionRepo(ctx), sp.TXManager(ctx))
	}
	return sp.ledger
}

func (sp *ServiceProvider) FundsService(ctx context.Context) service.FundsService {
	if sp.fundsServ == nil {
		sp.fundsServ = funds.NewFundsService(
			sp.LedgerService(ctx),
			sp.UserRepo(ctx),
			sp.TransactionRepo(ctx),
			sp.AdminCfg().Secret(),
		)
	}
	return sp.fundsServ
}

func (sp *ServiceProvider) FundsHandler(ctx context.Context) *fundsAPI.Handler {
	if sp.fundsHand == nil {
		sp.fundsHand = fundsAPI.NewHandler(fundsAPI.HandlerDeps{Serv: sp.FundsService(ctx)})
	}
	return sp.fundsHand
}

func (sp *ServiceProvider) AdminHandler(ctx context.Context) *adminAPI.Handler {
	if sp.adminHand == nil {
		sp.adminHand = adminAPI.NewHandler(adminAPI.HandlerDeps{
			Funds: sp.FundsService(ctx),
			Slot:  sp.SlotService(ctx),
		})
	}
	return sp.adminHand
}

func (sp *ServiceProvider) SlotCfg() config.SlotConfig {
	if sp.slotCfg == nil {
		cfg, err := env.NewSlotConfig()
		if err != nil {
			panic("failed to get slot config: " + err.Error())
		}
		sp.slotCfg = cfg
	}
	return sp.slotCfg
}

func (sp *ServiceProvider) StatsRepository() repository.StatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository(sp.SlotCfg().StatsWindow())
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) SlotService(ctx context.Context) service.SlotService {
	if sp.slotServ == nil {
		sp.slotServ = slot.NewSlotService(
			sp.SlotCfg().Paytable(),
			sp.UserRepo(ctx),
			sp.StatsRepository(),
			sp.LedgerService(ctx),
			sp.TXManager(ctx),
			sp.Metrics(),
		)
	}
	return sp.slotServ
}

func (sp *ServiceProvider) SlotHandler(ctx context.Context) *slotAPI.Handler {
	if sp.slotHand == nil {
		sp.slotHand = slotAPI.NewHandler(slotAPI.HandlerDeps{Serv: sp.SlotService(ctx)})
	}
	return sp.slotHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", middleware.AdminSecretHeader, middleware.RequestIDHeader},
			ExposedHeaders:   []string{middleware.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           60 * 15,
		}))
		r.Use(chimw.RequestSize(maxBodyBytes))
		r.Use(middleware.RequestID)
		r.Use(chimw.RealIP)
		r.Use(middleware.Logging)
		r.Use(chimw.Recoverer)
		r.Use(sp.Metrics().Middleware)

		authHandler := sp.AuthHandler(ctx)
		fundsHandler := sp.FundsHandler(ctx)
		adminHandler := sp.AdminHandler(ctx)
		slotHandler := sp.SlotHandler(ctx)

		r.Route("/api", func(rr chi.Router) {
			rr.Post("/register", authHandler.Register)
			rr.Post("/login", authHandler.Login)
			rr.Post("/logout", authHandler.Logout)

			// Секрет администратора проверяется сервисом, он приходит в теле
			rr.Post("/admin/credit", adminHandler.Credit)

			rr.With(middleware.AdminSecret(sp.AdminCfg().Secret())).
				Get("/admin/stats", adminHandler.Stats)

			// Endpoints под сессией
			rr.Group(func(pr chi.Router) {
				pr.Use(middleware.Auth(sp.AuthService(ctx)))

				pr.Get("/me", authHandler.Me)
				pr.Post("/funds/adjust", fundsHandler.Adjust)
				pr.Get("/transactions", fundsHandler.History)
				pr.Post("/spin", slotHandler.Spin)
			})
		})

		r.Get("/healthz", healthAPI.NewHandler(sp.DBClient(ctx)).Check)
		r.Method(http.MethodGet, "/metrics", sp.Metrics().Handler())

		sp.router = r
	}

	return sp.router
}
