package env

import (
	"errors"

	"casino_web/internal/config"

	envparse "github.com/caarlos0/env/v11"
)

type pgConfig struct {
	Dsn     string `env:"PG_DSN"`
	Migrate bool   `env:"PG_MIGRATE" envDefault:"true"`
}

func NewPGConfig() (config.PGConfig, error) {
	var cfg pgConfig
	if err := envparse.Parse(&cfg); err != nil {
		return nil, err
	}
	if len(cfg.Dsn) == 0 {
		return nil, errors.New("pg dsn not found")
	}

	return &cfg, nil
}

func (cfg *pgConfig) DSN() string {
	return cfg.Dsn
}

func (cfg *pgConfig) MigrateOnStart() bool {
	return cfg.Migrate
}
