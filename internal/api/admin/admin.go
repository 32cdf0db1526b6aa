package admin

import (
	"net/http"

	"casino_web/internal/api/apierr"
	dto "casino_web/internal/api/dto/admin"
	"casino_web/internal/converter"
	"casino_web/internal/service"
	"casino_web/pkg/req"
	"casino_web/pkg/resp"
)

type HandlerDeps struct {
	Funds service.FundsService
	Slot  service.SlotService
}

type Handler struct {
	funds service.FundsService
	slot  service.SlotService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		funds: deps.Funds,
		slot:  deps.Slot,
	}
}

// Credit начисляет (или списывает) сумму пользователю по email. Секрет в теле запроса.
func (h *Handler) Credit(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.CreditRequest](r.Body)
	if err != nil {
		apierr.BadRequest(w, r, apierr.MsgInvalidRequest)
		return
	}

	balance, err := h.funds.AdminCredit(r.Context(), converter.ToAdminCredit(payload))
	if err != nil {
		apierr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.CreditResponse{
		Email:   payload.Email,
		Balance: balance,
	})
}

// Stats - статистика автомата, доступ по заголовку X-Admin-Secret
func (h *Handler) Stats(w http.ResponseWriter, _ *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(h.slot.Stats()))
}
