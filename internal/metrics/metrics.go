package metrics

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Fetch outcome label values.
const (
	OutcomeOK    = "ok"
	OutcomeEmpty = "empty"
	OutcomeError = "error"
)

// Metrics holds the Prometheus metrics for the fetch/signal pipeline.
type Metrics struct {
	FetchTotal   *prometheus.CounterVec // labels: source, op, outcome
	SignalsTotal *prometheus.CounterVec // labels: signal
	NoDataTotal  prometheus.Counter
}

// New registers and returns the pipeline metrics.
func New() *Metrics {
	m := &Metrics{
		FetchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tradingbot_fetch_total",
			Help: "Upstream fetch attempts by source, operation and outcome",
		}, []string{"source", "op", "outcome"}),
		SignalsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tradingbot_signals_total",
			Help: "Recommendations served, by signal",
		}, []string{"signal"}),
		NoDataTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tradingbot_no_data_total",
			Help: "Lookups where no source had data for the ticker",
		}),
	}
	prometheus.MustRegister(m.FetchTotal, m.SignalsTotal, m.NoDataTotal)
	return m
}

// ObserveFetch records one fetch attempt. Safe on a nil receiver so the
// pipeline can run without metrics wired.
func (m *Metrics) ObserveFetch(src, op, outcome string) {
	if m == nil {
		return
	}
	m.FetchTotal.WithLabelValues(src, op, outcome).Inc()
}

// ObserveSignal records one served recommendation.
func (m *Metrics) ObserveSignal(signal string) {
	if m == nil {
		return
	}
	m.SignalsTotal.WithLabelValues(signal).Inc()
}

// ObserveNoData records a lookup that found no data anywhere.
func (m *Metrics) ObserveNoData() {
	if m == nil {
		return
	}
	m.NoDataTotal.Inc()
}

// Server exposes /metrics and /healthz.
type Server struct {
	srv *http.Server
	log *zap.Logger
}

// NewServer creates the metrics HTTP server.
func NewServer(addr string, log *zap.Logger) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	return &Server{
		srv: &http.Server{Addr: addr, Handler: mux},
		log: log,
	}
}

// Start launches the HTTP server in a goroutine.
func (s *Server) Start() {
	go func() {
		s.log.Info("metrics server listening", zap.String("addr", s.srv.Addr))
		if err := s.srv.ListenAndServe(); err != http.ErrServerClosed {
			s.log.Error("metrics server", zap.Error(err))
		}
	}()
}

// Stop gracefully shuts down the metrics server.
func (s *Server) Stop(ctx context.Context) {
	s.srv.Shutdown(ctx)
}
