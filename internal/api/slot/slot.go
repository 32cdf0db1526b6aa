package slot

import (
	"net/http"

	"casino_web/internal/api/apierr"
	dto "casino_web/internal/api/dto/slot"
	"casino_web/internal/converter"
	"casino_web/internal/service"
	"casino_web/pkg/req"
	"casino_web/pkg/resp"
)

// msgInvalidBet - ставка не число или тело не разобрано
const msgInvalidBet = "invalid bet"

type HandlerDeps struct {
	Serv service.SlotService
}

type Handler struct {
	serv service.SlotService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SpinRequest](r.Body)
	if err != nil {
		apierr.BadRequest(w, r, msgInvalidBet)
		return
	}

	result, err := h.serv.Spin(r.Context(), converter.ToSpin(payload))
	if err != nil {
		apierr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinResponse(*result))
}
