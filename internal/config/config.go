package config

import (
	"time"

	"casino_web/internal/model"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
	ShutdownTimeout() time.Duration
}

type PGConfig interface {
	DSN() string
	MigrateOnStart() bool
}

type SessionConfig interface {
	SecretKey() []byte
	TTL() time.Duration
	CookieSecure() bool
}

type AdminConfig interface {
	Email() string
	Secret() string
}

type LogConfig interface {
	Level() string
	Format() string
}

type SlotConfig interface {
	Paytable() *model.Paytable
	StatsWindow() int
}
