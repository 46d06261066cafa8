package http

import (
	"gym_page_auditor/internal/http/handlers"
	"gym_page_auditor/internal/http/middleware"
	"gym_page_auditor/internal/service"
)

func initRoutes(r *Router, auditor service.GymAuditor, defaultSitemap string) {
	store := handlers.NewReportStore()

	r.httpRouter.Use(middleware.MetricsMiddleware)
	r.httpRouter.Use(middleware.CORS)
	r.httpRouter.Use(middleware.RequestIDLoggerMiddleware(r.log))
	// Routes
	r.httpRouter.Get("/ready", handlers.NewReadyHandler().Handle)
	r.httpRouter.Post("/audit", handlers.NewAuditHandler(auditor, store, defaultSitemap, r.log).Handle)
	r.httpRouter.Get("/report", handlers.NewHTMLReportHandler(store, r.log).Handle)
	r.httpRouter.Get("/report.json", handlers.NewJSONReportHandler(store, r.log).Handle)
	r.httpRouter.Get("/report.csv", handlers.NewCSVReportHandler(store, r.log).Handle)
}
