package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	reqctx "wayfarer/tracker/internal/context"
	"wayfarer/tracker/internal/logging"
)

// Logging writes one debug line per request with the request headers that
// matter for tracing. Per-request completion lines come from
// MetricsMiddleware; this one is for local debugging only.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		logging.Debug("HTTP exchange",
			"request_id", reqctx.GetRequestID(r.Context()),
			"method", r.Method,
			"url", r.URL.String(),
			"user_agent", r.UserAgent(),
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start).String(),
		)
	})
}
