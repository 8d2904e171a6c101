package v1

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/rs/cors"
)

// CORS wraps a handler with cross-origin support.
// An empty origin list, or one containing "*", allows every origin.
func CORS(next http.Handler, allowedOrigins []string) http.Handler {
	for _, o := range allowedOrigins {
		if o == "*" {
			allowedOrigins = nil
			break
		}
	}
	if len(allowedOrigins) == 0 {
		return cors.AllowAll().Handler(next)
	}
	return cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(next)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	wrote  bool
}

func (r *statusRecorder) WriteHeader(code int) {
	if !r.wrote {
		r.status = code
		r.wrote = true
	}
	r.ResponseWriter.WriteHeader(code)
}

// LogRequests logs one line per request with its status and duration.
func LogRequests(next http.Handler, log *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrapped, r)
		log.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapped.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
