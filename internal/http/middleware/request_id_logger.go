package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const RequestIDHeader = `x-request-id`

type ctxKeyRequestID struct{}

// RequestID returns the id assigned by RequestIDLoggerMiddleware, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKeyRequestID{}).(string)
	return id
}

// RequestIDLoggerMiddleware tags every request with an id (the caller's x-request-id or a new
// UUID), logs one line per request and turns panics into a JSON 500.
func RequestIDLoggerMiddleware(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := r.Header.Get(RequestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, reqID)

			rec := record(w)
			start := time.Now()
			defer func() {
				panicked := recover()
				if panicked != nil && rec.status == 0 {
					rec.Header().Set(`Content-Type`, `application/json`)
					rec.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(rec).Encode(map[string]string{
						`error`:      `internal server error`,
						`request_id`: reqID,
					})
				}

				entry := logger.WithFields(log.Fields{
					`method`:     r.Method,
					`path`:       r.URL.Path,
					`status`:     rec.Status(),
					`request_id`: reqID,
					`duration`:   time.Since(start).String(),
				})
				switch {
				case panicked != nil:
					entry.WithFields(log.Fields{
						`error`: fmt.Sprintf(`%v`, panicked),
						`stack`: string(debug.Stack()),
					}).Error(`panic recovered`)
				case rec.Status() >= http.StatusBadRequest:
					entry.Warn(`request completed with error status`)
				default:
					entry.Info(`request completed`)
				}
			}()

			next.ServeHTTP(rec, r.WithContext(context.WithValue(r.Context(), ctxKeyRequestID{}, reqID)))
		})
	}
}
