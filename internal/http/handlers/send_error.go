package handlers

import (
	"encoding/json"
	"net/http"

	"gym_page_auditor/internal/http/middleware"
	"gym_page_auditor/internal/pkg/errors"

	log "github.com/sirupsen/logrus"
)

type ErrorResponse struct {
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
	Code      int    `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

func sendError(w http.ResponseWriter, r *http.Request, logger *log.Logger, message string, err error, code int) {
	response := ErrorResponse{
		Message:   message,
		Code:      code,
		RequestID: middleware.RequestID(r.Context()),
	}
	entry := logger.WithFields(log.Fields{
		"code":       code,
		"request_id": response.RequestID,
	})
	if err != nil {
		// only the innermost message reaches the client
		response.Error = errors.Cause(err).Error()
		entry = entry.WithError(err)
	}
	entry.Error(message)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(response)
}
