package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"sync"

	"gym_page_auditor/internal/pkg/errors"
	"gym_page_auditor/internal/report"
	"gym_page_auditor/internal/service"

	log "github.com/sirupsen/logrus"
)

type AuditHandler struct {
	auditor        service.GymAuditor
	store          *ReportStore
	defaultSitemap string
	running        sync.Mutex
	log            *log.Logger
}

type AuditRequest struct {
	SitemapURL string `json:"sitemapUrl"`
}

func (r *AuditRequest) Validate() error {
	u, err := url.Parse(r.SitemapURL)
	if err != nil {
		return errors.Wrap(err, `failed to parse sitemap url`)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.New("sitemap url is invalid")
	}
	return nil
}

func NewAuditHandler(auditor service.GymAuditor, store *ReportStore, defaultSitemap string, log *log.Logger) *AuditHandler {
	return &AuditHandler{
		auditor:        auditor,
		store:          store,
		defaultSitemap: defaultSitemap,
		log:            log,
	}
}

// Handle runs one audit per request; a second request while one is running gets 409.
func (h *AuditHandler) Handle(w http.ResponseWriter, r *http.Request) {
	h.log.Debug(`audit handler called`)

	var request AuditRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil && !errors.Is(err, io.EOF) {
		sendError(w, r, h.log, `failed to decode request body`, err, http.StatusBadRequest)
		return
	}
	if request.SitemapURL == "" {
		request.SitemapURL = h.defaultSitemap
	}
	if err := request.Validate(); err != nil {
		sendError(w, r, h.log, `failed to validate request body`, err, http.StatusBadRequest)
		return
	}

	if !h.running.TryLock() {
		sendError(w, r, h.log, `an audit is already running`, nil, http.StatusConflict)
		return
	}
	defer h.running.Unlock()

	result, err := h.auditor.Run(r.Context(), request.SitemapURL)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, errors.ErrDiscovery) {
			code = http.StatusBadGateway
		}
		sendError(w, r, h.log, `failed to run audit`, err, code)
		return
	}
	h.store.Set(result)

	w.Header().Set(`Content-Type`, `application/json`)
	w.WriteHeader(http.StatusOK)
	if _, err := report.NewJSONWriter(w).Write(result); err != nil {
		h.log.WithError(err).Error(`failed to encode response`)
	}
}
