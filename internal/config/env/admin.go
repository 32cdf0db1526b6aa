package env

import (
	"casino_web/internal/config"

	envparse "github.com/caarlos0/env/v11"
)

type adminConfig struct {
	AdminEmail  string `env:"ADMIN_EMAIL" envDefault:"admin@casino.local"`
	AdminSecret string `env:"ADMIN_SECRET" envDefault:"admin-secret"`
}

func NewAdminConfig() (config.AdminConfig, error) {
	var cfg adminConfig
	if err := envparse.Parse(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (cfg *adminConfig) Email() string {
	return cfg.AdminEmail
}

func (cfg *adminConfig) Secret() string {
	return cfg.AdminSecret
}
