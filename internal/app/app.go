package app

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"casino_web/internal/config"

	"github.com/shopspring/decimal"
)

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider()
}

// Run поднимает HTTP сервер и ждёт SIGINT/SIGTERM для остановки
func (s *App) Run() error {
	err := config.Load(".env")
	s.initServiceProvider()

	log := s.ServiceProvider.Logger()
	if err != nil {
		log.Info(".env not loaded, using process environment", "error", err)
	}

	// Суммы в JSON отдаются числами
	decimal.MarshalJSONWithoutQuotes = true

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	r := s.ServiceProvider.Router(ctx)
	defer s.ServiceProvider.DBClient(ctx).Close()

	srv := &http.Server{
		Addr:    s.ServiceProvider.HTTPCfg().Address(),
		Handler: r,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.ServiceProvider.HTTPCfg().ShutdownTimeout())
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		return err
	}

	log.Info("server stopped")
	return nil
}
