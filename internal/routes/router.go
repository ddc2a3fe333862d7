package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"wayfarer/tracker/internal/api"
	"wayfarer/tracker/internal/logging"
	"wayfarer/tracker/internal/middleware"
)

// Options configures the cross-cutting HTTP behaviour
type Options struct {
	AllowedOrigins []string
	// SearchLimiter throttles the autocomplete endpoint per client; nil
	// disables throttling
	SearchLimiter *middleware.IPRateLimiter
	// Debug adds a per-request debug log line
	Debug bool
}

func RegisterRoutes(deps *api.Dependencies, upSince time.Time, opts Options) http.Handler {
	r := chi.NewRouter()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(chimw.Recoverer)
	if deps.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(deps.Metrics))
	}
	if opts.Debug {
		r.Use(middleware.Logging)
	}

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	r.Get("/healthCheck", api.HealthCheckHandler(deps.Checks, upSince))

	RegisterAPIRoutes(r, deps, opts.SearchLimiter)

	logging.Info("Router initialized", "origins", origins)
	return r
}
