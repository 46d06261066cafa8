package http

import (
	"net/http"
	"time"

	"gym_page_auditor/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

func NewMetricsServer(host string, timeout time.Duration, log *log.Logger) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.MetricsRegister(), promhttp.HandlerOpts{}))
	return newSideServer("metrics", host, mux, timeout, log)
}
