package adaptors

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"time"

	"gym_page_auditor/internal/domain/models"
	"gym_page_auditor/internal/pkg/errors"
	"gym_page_auditor/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

const DefaultUserAgent = "NuffieldGymPageAudit/1.0 (+static content audit; contact: web-audit)"

type WebClient struct {
	client    *http.Client
	userAgent string
	log       *log.Logger
}

func NewWebClient(timeout time.Duration, userAgent string, log *log.Logger) *WebClient {
	rTripper := promhttp.InstrumentRoundTripperDuration(
		metrics.HTTPClientRequestDuration,
		promhttp.InstrumentRoundTripperCounter(metrics.HTTPClientRequestsTotal, http.DefaultTransport))

	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &WebClient{
		client: &http.Client{
			Timeout:   timeout,
			Transport: rTripper,
		},
		userAgent: userAgent,
		log:       log,
	}
}

// Do issues the request and returns the page even for error statuses; callers decide what a
// status >= 400 means for them.
func (w *WebClient) Do(ctx context.Context, url string, method string) (*models.FetchedPage, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		w.log.WithError(err).Error(`failed to create request`)
		return nil, errors.Wrap(err, `failed to create request`)
	}

	req.Header.Set("User-Agent", w.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-GB,en;q=0.5")

	resp, err := w.client.Do(req)
	if err != nil {
		metrics.HTTPClientErrorsTotal.WithLabelValues(method, "0").Inc()
		w.log.WithError(err).WithField("url", url).Warn(`request failed`)
		return nil, errors.Wrap(err, `request failed`)
	}
	defer resp.Body.Close()

	bodyByte, err := io.ReadAll(resp.Body)
	if err != nil {
		w.log.WithField("url", url).Errorf(`failed to read response body. error: %v`, err)
		return nil, errors.Wrap(err, `failed to read response body`)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		metrics.HTTPClientErrorsTotal.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()
	}

	finalURL := url
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	return &models.FetchedPage{
		URL:        url,
		FinalURL:   finalURL,
		StatusCode: resp.StatusCode,
		Body:       bodyByte,
	}, nil
}
