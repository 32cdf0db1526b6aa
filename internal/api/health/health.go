package health

import (
	"context"
	"net/http"
	"time"

	"casino_web/internal/logger"
	"casino_web/pkg/resp"
)

const pingTimeout = 2 * time.Second

// Pinger - хранилище, доступность которого проверяется
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	db Pinger
}

func NewHandler(db Pinger) *Handler {
	return &Handler{db: db}
}

type statusResponse struct {
	Status string `json:"status"`
}

// Check отвечает 200, если база доступна, иначе 503
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		logger.FromContext(r.Context()).Error("health: database ping failed", "error", err)
		resp.WriteJSONResponse(w, http.StatusServiceUnavailable, statusResponse{Status: "unavailable"})
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, statusResponse{Status: "ok"})
}
