package slot

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	dto "casino_web/internal/api/dto/slot"
	"casino_web/internal/model"
	"casino_web/internal/service/mocks"
	"casino_web/internal/svcerr"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSpin(t *testing.T) {
	serv := new(mocks.SlotService)
	serv.On("Spin", mock.Anything, mock.MatchedBy(func(s model.Spin) bool {
		return s.Bet.Equal(decimal.NewFromInt(10))
	})).Return(&model.SpinResult{
		Grid: model.Grid{
			{"🍒", "🍒", "🍒"},
			{"🍋", "🔔", "⭐"},
			{"7️⃣", "🍋", "🔔"},
		},
		Wins:    []model.LineWin{{Line: 0, Name: "top", Symbol: "🍒", Amount: decimal.NewFromInt(10)}},
		Payout:  decimal.NewFromInt(10),
		Balance: decimal.NewFromInt(100),
	}, nil)
	h := NewHandler(HandlerDeps{Serv: serv})

	rec := httptest.NewRecorder()
	h.Spin(rec, httptest.NewRequest(http.MethodPost, "/api/spin", strings.NewReader(`{"bet":10}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	var out dto.SpinResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	require.Len(t, out.Grid, 3)
	assert.Equal(t, []string{"🍒", "🍒", "🍒"}, out.Grid[0])
	require.Len(t, out.Wins, 1)
	assert.Equal(t, 0, out.Wins[0].Line)
	assert.Equal(t, "10", out.Payout.String())
	assert.Equal(t, "100", out.Balance.String())
	serv.AssertExpectations(t)
}

func TestSpinErrors(t *testing.T) {
	cases := []struct {
		err    error
		status int
		msg    string
	}{
		{svcerr.Validation("invalid bet"), http.StatusBadRequest, "invalid bet"},
		{svcerr.ErrInsufficientFunds, http.StatusBadRequest, "insufficient funds"},
		{svcerr.ErrUnauthenticated, http.StatusUnauthorized, "unauthenticated"},
		{svcerr.ErrUserNotFound, http.StatusBadRequest, "user not found"},
	}

	for _, tc := range cases {
		serv := new(mocks.SlotService)
		serv.On("Spin", mock.Anything, mock.Anything).Return(nil, tc.err)
		h := NewHandler(HandlerDeps{Serv: serv})

		rec := httptest.NewRecorder()
		h.Spin(rec, httptest.NewRequest(http.MethodPost, "/api/spin", strings.NewReader(`{"bet":1}`)))

		assert.Equal(t, tc.status, rec.Code, tc.msg)
		assert.JSONEq(t, `{"error":"`+tc.msg+`"}`, rec.Body.String())
	}
}

func TestSpinNotANumber(t *testing.T) {
	serv := new(mocks.SlotService)
	h := NewHandler(HandlerDeps{Serv: serv})

	for _, body := range []string{`{"bet":"abc"}`, `{"bet":true}`, `not json`, ``} {
		rec := httptest.NewRecorder()
		h.Spin(rec, httptest.NewRequest(http.MethodPost, "/api/spin", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.JSONEq(t, `{"error":"invalid bet"}`, rec.Body.String(), body)
	}
	serv.AssertNotCalled(t, "Spin", mock.Anything, mock.Anything)
}
