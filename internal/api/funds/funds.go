package funds

import (
	"net/http"
	"strconv"

	"casino_web/internal/api/apierr"
	dto "casino_web/internal/api/dto/funds"
	"casino_web/internal/converter"
	"casino_web/internal/model"
	"casino_web/internal/service"
	"casino_web/pkg/req"
	"casino_web/pkg/resp"
)

// msgInvalidAmount - сумма не число или тело не разобрано
const msgInvalidAmount = "invalid amount"

type HandlerDeps struct {
	Serv service.FundsService
}

type Handler struct {
	serv service.FundsService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Adjust пополняет или списывает баланс текущего пользователя
func (h *Handler) Adjust(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.AdjustRequest](r.Body)
	if err != nil {
		apierr.BadRequest(w, r, msgInvalidAmount)
		return
	}

	balance, err := h.serv.Adjust(r.Context(), payload.Amount)
	if err != nil {
		apierr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.BalanceResponse{Balance: balance})
}

// History - журнал операций текущего пользователя, новые сверху
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	page, ok := parsePage(r)
	if !ok {
		apierr.BadRequest(w, r, apierr.MsgInvalidRequest)
		return
	}

	txs, err := h.serv.History(r.Context(), page)
	if err != nil {
		apierr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToTransactionsResponse(txs))
}

func parsePage(r *http.Request) (model.Page, bool) {
	var page model.Page
	q := r.URL.Query()

	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return page, false
		}
		// Явно переданный лимит прижимается к [1, MaxPageLimit]
		page.Limit = max(limit, 1)
	}
	if v := q.Get("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil || offset < 0 {
			return page, false
		}
		page.Offset = offset
	}

	return page.Normalize(), true
}
