package middleware

import "net/http"

// CORS lets the static report page call the API from another origin and answers preflights.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(`Access-Control-Allow-Origin`, `*`)
		w.Header().Set(`Access-Control-Allow-Methods`, `POST, GET, OPTIONS`)
		w.Header().Set(`Access-Control-Allow-Headers`, `Content-Type, `+RequestIDHeader)
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
