package http

import (
	"context"

	"gym_page_auditor/internal/application/config"
	"gym_page_auditor/internal/service"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"
)

type Router struct {
	httpRouter *chi.Mux
	log        *log.Logger
}

// NewRouter wires the API routes around auditor.
func NewRouter(log *log.Logger, auditor service.GymAuditor, defaultSitemap string) *chi.Mux {
	router := &Router{
		httpRouter: chi.NewRouter(),
		log:        log,
	}
	initRoutes(router, auditor, defaultSitemap)
	return router.httpRouter
}

// Serve runs the API, metrics and pprof servers until ctx is done or one of them fails to
// start, then shuts all of them down.
func Serve(ctx context.Context, log *log.Logger, appCfg *config.AppConfig, auditor service.GymAuditor) error {
	cfg, err := NewHTTPServerConfig()
	if err != nil {
		log.WithError(err).Error(`Failed to load http config`)
		return err
	}

	servers := []*Server{
		NewAPIServer(cfg, NewRouter(log, auditor, appCfg.Audit.SitemapURL), log),
		NewMetricsServer(appCfg.MetricsHost, cfg.Timeouts.ShutdownWait, log),
	}
	if appCfg.DebugMode {
		servers = append(servers, NewPprofServer(appCfg.PprofHost, cfg.Timeouts.ShutdownWait, log))
	}

	startErr := make(chan error, len(servers))
	for _, s := range servers {
		go func() {
			if err := s.Start(); err != nil {
				startErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
	case err = <-startErr:
		log.WithError(err).Error(`server failed`)
	}

	for _, s := range servers {
		if stopErr := s.Stop(); stopErr != nil {
			log.WithError(stopErr).Error(`failed to stop server`)
		}
	}
	return err
}
