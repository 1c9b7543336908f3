package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	framesPublished = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "snake_feed_frames_published_total",
		Help: "Total number of state frames broadcast to spectators",
	})
	spectatorsConnected = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "snake_feed_spectators",
		Help: "Current number of connected feed spectators",
	})
)

func init() {
	prometheus.MustRegister(framesPublished, spectatorsConnected)
}

// Server exposes the spectator feed on /ws and Prometheus metrics on
// /metrics.
type Server struct {
	hub    *Hub
	logger *log.Logger
	srv    *http.Server
}

// NewServer wires the hub into an HTTP server listening on addr.
func NewServer(addr string, hub *Hub, logger *log.Logger) *Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", hub.HandleWS)
	mux.Handle("/metrics", promhttp.Handler())

	return &Server{
		hub:    hub,
		logger: logger,
		srv: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Start begins serving in the background.
func (s *Server) Start() {
	go func() {
		s.logger.Info("feed listening", "address", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("feed server error", "error", err)
		}
	}()
}

// Shutdown disconnects all spectators and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.CloseAll()
	return s.srv.Shutdown(ctx)
}
