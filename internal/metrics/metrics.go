package metrics

import (
	"net/http"
	"strconv"
	"time"

	"casino_web/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "casino"

// Metrics - метрики сервиса в собственном реестре
type Metrics struct {
	registry *prometheus.Registry

	spins    prometheus.Counter
	lineWins *prometheus.CounterVec
	wagered  prometheus.Counter
	paidOut  prometheus.Counter
	requests *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		spins: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "spins_total",
			Help:      "Total number of completed spins",
		}),
		lineWins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payline_wins_total",
			Help:      "Total number of winning paylines",
		}, []string{"line", "symbol"}),
		wagered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "wagered_total",
			Help:      "Sum of all bets",
		}),
		paidOut: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "paid_out_total",
			Help:      "Sum of all gross payouts",
		}),
		requests: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	m.registry.MustRegister(m.spins, m.lineWins, m.wagered, m.paidOut, m.requests)

	return m
}

// ObserveSpin учитывает завершённый спин
func (m *Metrics) ObserveSpin(req model.Spin, res *model.SpinResult) {
	m.spins.Inc()
	m.wagered.Add(req.Bet.InexactFloat64())
	m.paidOut.Add(res.Payout.InexactFloat64())
	for _, w := range res.Wins {
		m.lineWins.WithLabelValues(w.Name, w.Symbol).Inc()
	}
}

// Handler отдаёт метрики в формате Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware замеряет длительность запросов по шаблону маршрута chi
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		m.requests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Observe(time.Since(start).Seconds())
	})
}
