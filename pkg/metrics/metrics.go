// Package metrics exposes the worker gauges over Prometheus exposition.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// ActiveGames counts FSMs currently held by this worker.
	ActiveGames = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "app_active_games",
		Help: "Количество активных игр",
	})

	// ActivePlayers counts participants of those games still in play.
	ActivePlayers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "app_active_players",
		Help: "Количество активных игроков",
	})
)

// Server serves /metrics for one worker process.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer creates a metrics server listening on the given port.
func NewServer(port int) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: slog.Default().With("component", "metrics-server"),
	}
}

// Start begins serving in the background.
func (s *Server) Start() {
	go func() {
		s.logger.Info("Metrics server listening", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Metrics server failed", "error", err)
		}
	}()
}

// Stop shuts the server down, honoring the context deadline.
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
