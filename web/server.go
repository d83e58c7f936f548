// Package web serves the keep-alive endpoint used by infrastructure health
// checks, plus a Prometheus view of the pipeline counters. It runs on its own
// goroutine and only ever reads the shared counters, which tolerate slightly
// stale values without locking.
package web

import (
	"fmt"
	"net/http"

	"github.com/Glanita/traducteur"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Server is the keep-alive HTTP server.
type Server struct {
	echo  *echo.Echo
	stats *traducteur.Stats
	log   *logrus.Logger
	addr  string
}

// NewServer creates a keep-alive server reporting the given counters on the
// given port.
func NewServer(port string, stats *traducteur.Stats, log *logrus.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo:  e,
		stats: stats,
		log:   log,
		addr:  ":" + port,
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(newStatsCollector(stats))

	e.GET("/", s.handleAlive)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	return s
}

// handleAlive answers health probes with plaintext uptime and the delivered
// translation count.
func (s *Server) handleAlive(c echo.Context) error {
	snap := s.stats.Snapshot()
	hours := int(snap.Uptime.Hours())
	minutes := int(snap.Uptime.Minutes()) % 60
	body := fmt.Sprintf("%s alive | %dh%dm | translations: %d\n",
		traducteur.Name, hours, minutes, snap.Translations)
	return c.String(http.StatusOK, body)
}

// Start runs the server until Shutdown. It blocks, so callers run it on a
// dedicated goroutine.
func (s *Server) Start() error {
	err := s.echo.Start(s.addr)
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Handler exposes the underlying HTTP handler for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Shutdown stops the server.
func (s *Server) Shutdown() {
	if err := s.echo.Close(); err != nil {
		s.log.Warnf("keep-alive server shutdown: %v", err)
	}
}
