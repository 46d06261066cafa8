package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gym_page_auditor/internal/application/config"
	"gym_page_auditor/internal/domain/models"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuditor struct {
	report *models.Report
	err    error
	calls  []string
}

func (s *stubAuditor) Run(_ context.Context, sitemapURL string) (*models.Report, error) {
	s.calls = append(s.calls, sitemapURL)
	return s.report, s.err
}

func TestRouterAuditThenReport(t *testing.T) {
	logger := log.New()
	logger.SetOutput(io.Discard)
	auditor := &stubAuditor{report: &models.Report{
		GeneratedAt: time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC),
		Source:      "https://example.test/sitemap.xml",
		Gyms:        []*models.AssessmentResult{},
	}}
	srv := httptest.NewServer(NewRouter(logger, auditor, "https://example.test/sitemap.xml"))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/report.json")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("x-request-id"))

	resp, err = http.Post(srv.URL+"/audit", "application/json", strings.NewReader(`{}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"https://example.test/sitemap.xml"}, auditor.calls)

	for _, path := range []string{"/report", "/report.json", "/report.csv", "/ready"} {
		resp, err = http.Get(srv.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}

	resp, err = http.Get(srv.URL + "/audit")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestNewHTTPServerConfigDefaults(t *testing.T) {
	for _, k := range []string{"HTTP_SERVER_HOST", "HTTP_APP_READ_TIMEOUT_DURATION", "HTTP_APP_READ_HEADER_TIMEOUT_DURATION",
		"HTTP_APP_WRITE_TIMEOUT_DURATION", "HTTP_APP_IDLE_TIMEOUT_DURATION", "HTTP_APP_SHUTDOWN_TIMEOUT_DURATION"} {
		t.Setenv(k, "")
	}

	cfg, err := NewHTTPServerConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultHost, cfg.Host)
	assert.Equal(t, 10*time.Minute, cfg.Timeouts.Write)
	assert.Equal(t, 15*time.Second, cfg.Timeouts.ShutdownWait)

	t.Setenv("HTTP_APP_IDLE_TIMEOUT_DURATION", "forever")
	_, err = NewHTTPServerConfig()
	assert.ErrorContains(t, err, "HTTP_APP_IDLE_TIMEOUT_DURATION")
}

func TestServeStopsWhenContextIsDone(t *testing.T) {
	t.Setenv("HTTP_SERVER_HOST", "127.0.0.1:0")
	logger := log.New()
	logger.SetOutput(io.Discard)
	appCfg := &config.AppConfig{MetricsHost: "127.0.0.1:0", PprofHost: "127.0.0.1:0", DebugMode: true}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, Serve(ctx, logger, appCfg, &stubAuditor{}))
}

func TestServeReportsListenFailure(t *testing.T) {
	t.Setenv("HTTP_SERVER_HOST", "127.0.0.1:-1")
	logger := log.New()
	logger.SetOutput(io.Discard)

	err := Serve(context.Background(), logger, &config.AppConfig{MetricsHost: "127.0.0.1:0"}, &stubAuditor{})
	assert.ErrorContains(t, err, "api server failed")
}
