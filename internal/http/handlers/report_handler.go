package handlers

import (
	"bytes"
	"net/http"

	"gym_page_auditor/internal/domain/models"
	"gym_page_auditor/internal/report"

	log "github.com/sirupsen/logrus"
)

// ReportHandler serves the latest report in one format.
type ReportHandler struct {
	store       *ReportStore
	contentType string
	newWriter   func(*bytes.Buffer) report.Writer
	log         *log.Logger
}

func NewHTMLReportHandler(store *ReportStore, log *log.Logger) *ReportHandler {
	return &ReportHandler{store: store, contentType: "text/html; charset=utf-8", log: log,
		newWriter: func(b *bytes.Buffer) report.Writer { return report.NewHTMLWriter(b) }}
}

func NewJSONReportHandler(store *ReportStore, log *log.Logger) *ReportHandler {
	return &ReportHandler{store: store, contentType: "application/json", log: log,
		newWriter: func(b *bytes.Buffer) report.Writer { return report.NewJSONWriter(b) }}
}

func NewCSVReportHandler(store *ReportStore, log *log.Logger) *ReportHandler {
	return &ReportHandler{store: store, contentType: "text/csv; charset=utf-8", log: log,
		newWriter: func(b *bytes.Buffer) report.Writer { return report.NewCSVWriter(b) }}
}

func (h *ReportHandler) Handle(w http.ResponseWriter, r *http.Request) {
	latest, ok := h.store.Latest()
	if !ok {
		sendError(w, r, h.log, `no report available yet`, nil, http.StatusNotFound)
		return
	}
	h.render(w, r, latest)
}

func (h *ReportHandler) render(w http.ResponseWriter, r *http.Request, rep *models.Report) {
	var buf bytes.Buffer
	if _, err := h.newWriter(&buf).Write(rep); err != nil {
		sendError(w, r, h.log, `failed to render report`, err, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", h.contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
