package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"casino_web/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestObserveSpin(t *testing.T) {
	m := New()

	m.ObserveSpin(model.Spin{Bet: decimal.NewFromInt(10)}, &model.SpinResult{
		Payout: decimal.NewFromInt(30),
		Wins: []model.LineWin{
			{Line: 0, Name: "top", Symbol: "🍒", Amount: decimal.NewFromInt(10)},
			{Line: 1, Name: "middle", Symbol: "🔔", Amount: decimal.NewFromInt(20)},
		},
	})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.spins))
	assert.Equal(t, 10.0, testutil.ToFloat64(m.wagered))
	assert.Equal(t, 30.0, testutil.ToFloat64(m.paidOut))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.lineWins.WithLabelValues("top", "🍒")))
}

func TestMiddlewareAndHandler(t *testing.T) {
	m := New()

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	r.Handle("/metrics", m.Handler())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `casino_http_request_duration_seconds_count{method="GET",route="/ping",status="418"} 1`)
}
