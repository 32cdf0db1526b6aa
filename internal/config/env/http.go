package env

import (
	"net"
	"time"

	"casino_web/internal/config"

	envparse "github.com/caarlos0/env/v11"
)

type httpConfig struct {
	Host     string        `env:"HTTP_HOST"`
	Port     string        `env:"HTTP_PORT" envDefault:"3000"`
	Shutdown time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	var cfg httpConfig
	if err := envparse.Parse(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (cfg *httpConfig) Address() string {
	return net.JoinHostPort(cfg.Host, cfg.Port)
}

func (cfg *httpConfig) ShutdownTimeout() time.Duration {
	return cfg.Shutdown
}
