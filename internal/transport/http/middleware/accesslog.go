package middleware

import (
	"net/http"
	"time"

	"github.com/acmehq/dashboard/services/billing-service/internal/logger"
)

// responseRecorder captures the status and body size the handler wrote.
type responseRecorder struct {
	http.ResponseWriter
	status    int
	respBytes int
}

func (w *responseRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *responseRecorder) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.respBytes += n
	return n, err
}

// AccessLog emits one structured entry per request, tagged with the request
// id when RequestID runs earlier in the chain.
func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &responseRecorder{ResponseWriter: w}
		start := time.Now()

		next.ServeHTTP(rec, r)

		logger.WithCtx(r.Context()).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Int("resp_bytes", rec.respBytes).
			Dur("elapsed", time.Since(start)).
			Str("remote", r.RemoteAddr).
			Msg("request_completed")
	})
}
