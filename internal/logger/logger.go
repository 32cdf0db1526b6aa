package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
)

const (
	FormatJSON = "json"
	FormatText = "text"

	ServiceName = "casino-web"

	attrService   = "service"
	attrRequestID = "request_id"
)

var levels = map[string]slog.Level{
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
}

// Config - настройки логгера из LOG_LEVEL и LOG_FORMAT
type Config struct {
	Level  string
	Format string // json | text
}

// LogLevel - уровень slog, неизвестное значение считается info
func (c Config) LogLevel() slog.Level {
	if lvl, ok := levels[strings.ToLower(c.Level)]; ok {
		return lvl
	}
	return slog.LevelInfo
}

func (c Config) IsJSON() bool {
	return strings.EqualFold(c.Format, FormatJSON)
}

// New - логгер в w с атрибутом service
func New(c Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel()}

	var handler slog.Handler = slog.NewTextHandler(w, opts)
	if c.IsJSON() {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler).With(attrService, ServiceName)
}

// Setup пишет в stdout и делает логгер глобальным
func Setup(c Config) *slog.Logger {
	log := New(c, os.Stdout)
	slog.SetDefault(log)
	return log
}

type requestIDKey struct{}

func GenerateRequestID() string {
	return uuid.NewString()
}

// WithRequestID кладёт ID запроса в контекст
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext - ID запроса, пустой считается отсутствующим
func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id, id != ""
}

// FromContext - глобальный логгер, с request_id если он есть в контексте
func FromContext(ctx context.Context) *slog.Logger {
	log := slog.Default()
	if id, ok := RequestIDFromContext(ctx); ok {
		log = log.With(attrRequestID, id)
	}
	return log
}
