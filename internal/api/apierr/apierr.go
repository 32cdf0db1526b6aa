package apierr

import (
	"net/http"

	"casino_web/internal/logger"
	"casino_web/internal/svcerr"
	"casino_web/pkg/resp"
)

const (
	MsgInvalidRequest = "invalid request"
	MsgCredsRequired  = "email+password required"
)

// Write отдаёт ошибку сервиса клиенту в виде {"error": "..."}.
// Детали ошибок хранилища в ответ не попадают.
func Write(w http.ResponseWriter, r *http.Request, err error) {
	status := svcerr.HTTPStatus(err)
	log := logger.FromContext(r.Context())

	if status >= http.StatusInternalServerError {
		log.Error("request failed", "path", r.URL.Path, "error", err)
	} else {
		log.Warn("request rejected", "path", r.URL.Path, "status", status, "error", err)
	}

	resp.WriteError(w, status, svcerr.Message(err))
}

// BadRequest отвечает 400 с переданным сообщением
func BadRequest(w http.ResponseWriter, r *http.Request, msg string) {
	Write(w, r, svcerr.Validation(msg))
}
