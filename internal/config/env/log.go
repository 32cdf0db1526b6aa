package env

import (
	"casino_web/internal/config"

	envparse "github.com/caarlos0/env/v11"
)

type logConfig struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

func NewLogConfig() (config.LogConfig, error) {
	var cfg logConfig
	if err := envparse.Parse(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (cfg *logConfig) Level() string {
	return cfg.LogLevel
}

func (cfg *logConfig) Format() string {
	return cfg.LogFormat
}
