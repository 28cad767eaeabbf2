package metrics

import (
	"fmt"
	"net"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

var (
	// Session metrics
	SessionsOpened = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "judgebot_sessions_opened_total",
			Help: "Total tracked sessions opened",
		},
	)

	SessionsClosed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "judgebot_sessions_closed_total",
			Help: "Total tracked sessions closed",
		},
	)

	TrackedSeconds = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "judgebot_tracked_seconds_total",
			Help: "Seconds folded into lifetime totals",
		},
	)

	// Alarm metrics
	AlarmsSent = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "judgebot_alarms_sent_total",
			Help: "Alarm notifications delivered",
		},
	)

	AlarmFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "judgebot_alarm_failures_total",
			Help: "Alarm notifications that could not be delivered",
		},
	)

	// Storage metrics
	StoreCommitFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "judgebot_store_commit_failures_total",
			Help: "Durable store commits that failed",
		},
		[]string{"operation"},
	)
)

func init() {
	prometheus.MustRegister(
		SessionsOpened,
		SessionsClosed,
		TrackedSeconds,
		AlarmsSent,
		AlarmFailures,
		StoreCommitFailures,
	)
}

// Server exposes /metrics and /health
type Server struct {
	server   *http.Server
	listener net.Listener
	logger   zerolog.Logger
}

func NewServer(addr string, logger zerolog.Logger) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	return &Server{
		server: &http.Server{
			Addr:    addr,
			Handler: mux,
		},
		logger: logger.With().Str("component", "metrics").Logger(),
	}
}

// Start binds the listen address and serves in the background. A bind
// failure is returned so startup fails on a bad address.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.server.Addr, err)
	}
	s.listener = ln

	s.logger.Info().Str("addr", ln.Addr().String()).Msg("Starting metrics server")
	go func() {
		if err := s.server.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.logger.Error().Err(err).Msg("Metrics server error")
		}
	}()
	return nil
}

// Addr returns the bound address, or nil before Start
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

func (s *Server) Stop() error {
	s.logger.Info().Msg("Stopping metrics server")
	return s.server.Close()
}
