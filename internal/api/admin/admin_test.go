package admin

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	dto "casino_web/internal/api/dto/admin"
	"casino_web/internal/model"
	"casino_web/internal/service/mocks"
	"casino_web/internal/svcerr"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCredit(t *testing.T) {
	funds := new(mocks.FundsService)
	funds.On("AdminCredit", mock.Anything, mock.MatchedBy(func(c model.AdminCredit) bool {
		return c.Email == "player@casino.local" && c.Secret == "admin-secret" && c.Amount.Equal(decimal.NewFromInt(50))
	})).Return(decimal.NewFromInt(150), nil)
	h := NewHandler(HandlerDeps{Funds: funds, Slot: new(mocks.SlotService)})

	body := `{"email":"player@casino.local","amount":50,"secret":"admin-secret"}`
	rec := httptest.NewRecorder()
	h.Credit(rec, httptest.NewRequest(http.MethodPost, "/api/admin/credit", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	var out dto.CreditResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	assert.Equal(t, "player@casino.local", out.Email)
	assert.Equal(t, "150", out.Balance.String())
	funds.AssertExpectations(t)
}

func TestCreditErrors(t *testing.T) {
	cases := []struct {
		err    error
		status int
		msg    string
	}{
		{svcerr.ErrForbidden, http.StatusForbidden, "forbidden"},
		{svcerr.ErrUserNotFound, http.StatusBadRequest, "user not found"},
	}

	for _, tc := range cases {
		funds := new(mocks.FundsService)
		funds.On("AdminCredit", mock.Anything, mock.Anything).Return(decimal.Zero, tc.err)
		h := NewHandler(HandlerDeps{Funds: funds})

		rec := httptest.NewRecorder()
		h.Credit(rec, httptest.NewRequest(http.MethodPost, "/api/admin/credit", strings.NewReader(`{"email":"x@y.z","amount":1,"secret":"s"}`)))

		assert.Equal(t, tc.status, rec.Code)
		assert.JSONEq(t, `{"error":"`+tc.msg+`"}`, rec.Body.String())
	}
}

func TestStats(t *testing.T) {
	slot := new(mocks.SlotService)
	slot.On("Stats").Return(model.SlotStats{
		TotalSpins:  4,
		TotalBet:    decimal.NewFromInt(40),
		TotalPayout: decimal.NewFromInt(30),
		RTP:         0.75,
		WindowRTP:   0.75,
		WindowSize:  500,
	})
	h := NewHandler(HandlerDeps{Slot: slot})

	rec := httptest.NewRecorder()
	h.Stats(rec, httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var out dto.StatsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	assert.Equal(t, int64(4), out.TotalSpins)
	assert.InDelta(t, 0.75, out.RTP, 1e-9)
	assert.Equal(t, 500, out.WindowSize)
}
