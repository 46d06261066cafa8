package http

import (
	"context"
	"net/http"
	"time"

	"gym_page_auditor/internal/pkg/errors"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"
)

// Server is one listener of the serve command: the audit API or an operational side server.
type Server struct {
	name     string
	server   *http.Server
	shutdown time.Duration
	log      *log.Logger
}

// NewAPIServer serves the audit routes with the configured timeouts.
func NewAPIServer(cfg *HTTPServerConfig, router *chi.Mux, log *log.Logger) *Server {
	return &Server{
		name: "api",
		server: &http.Server{
			Addr:              cfg.Host,
			Handler:           router,
			ReadTimeout:       cfg.Timeouts.Read,
			ReadHeaderTimeout: cfg.Timeouts.ReadHeader,
			WriteTimeout:      cfg.Timeouts.Write,
			IdleTimeout:       cfg.Timeouts.Idle,
		},
		shutdown: cfg.Timeouts.ShutdownWait,
		log:      log,
	}
}

func newSideServer(name, host string, handler http.Handler, shutdown time.Duration, log *log.Logger) *Server {
	return &Server{
		name: name,
		server: &http.Server{
			Addr:              host,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
		shutdown: shutdown,
		log:      log,
	}
}

func (s *Server) Addr() string {
	return s.server.Addr
}

// Start blocks until the listener fails or Stop is called. A clean stop returns nil.
func (s *Server) Start() error {
	s.log.WithField("addr", s.server.Addr).Infof("%s server starting", s.name)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return errors.Wrap(err, s.name+` server failed`)
	}
	return nil
}

func (s *Server) Stop() error {
	s.log.Infof("shutting down %s server...", s.name)

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdown)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		return errors.Wrap(err, `failed to shutdown `+s.name+` server`)
	}

	s.log.Infof("%s server exiting", s.name)
	return nil
}
