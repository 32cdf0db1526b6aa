package env

import (
	"errors"
	"fmt"
	"time"

	"casino_web/internal/config"

	envparse "github.com/caarlos0/env/v11"
)

type sessionConfig struct {
	Secret string        `env:"SESSION_SECRET"`
	Ttl    time.Duration `env:"SESSION_TTL" envDefault:"720h"`
	Secure bool          `env:"SESSION_COOKIE_SECURE" envDefault:"false"`
}

func NewSessionConfig() (config.SessionConfig, error) {
	var cfg sessionConfig
	if err := envparse.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("invalid session config: %w", err)
	}
	if len(cfg.Secret) == 0 {
		return nil, errors.New("session secret key not found")
	}
	if cfg.Ttl <= 0 {
		return nil, fmt.Errorf("invalid session ttl: %s", cfg.Ttl)
	}

	return &cfg, nil
}

func (cfg *sessionConfig) SecretKey() []byte {
	return []byte(cfg.Secret)
}

func (cfg *sessionConfig) TTL() time.Duration {
	return cfg.Ttl
}

func (cfg *sessionConfig) CookieSecure() bool {
	return cfg.Secure
}
