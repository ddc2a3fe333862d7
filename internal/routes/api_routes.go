package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"wayfarer/tracker/internal/api"
	"wayfarer/tracker/internal/middleware"
)

// RegisterAPIRoutes registers all API v1 routes and handlers
func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies, searchLimiter *middleware.IPRateLimiter) {
	svcs := deps.Services

	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Route("/airports", func(airports chi.Router) {
			airports.With(limited(searchLimiter)).Get("/search", api.AirportSearchHandler(svcs.Lookup))
			airports.Get("/", api.AirportListHandler(deps.Repo.Airports))
		})

		v1.Route("/flights", func(flights chi.Router) {
			flights.Get("/", api.ListFlightsHandler(svcs.Flights))
			flights.Post("/", api.CreateFlightHandler(svcs.Flights))
			flights.Get("/{id}", api.GetFlightHandler(svcs.Flights))
			flights.Put("/{id}", api.UpdateFlightHandler(svcs.Flights))
			flights.Delete("/{id}", api.DeleteFlightHandler(svcs.Flights))
		})

		v1.Get("/countries/visited", api.VisitedCountriesHandler(svcs.Countries))

		// Maintenance; single-user deployment, no auth
		v1.Route("/admin/airports", func(admin chi.Router) {
			admin.Post("/seed", api.SeedAirportsHandler(svcs.Seed))
			admin.Get("/issues", api.AirportIssuesHandler(svcs.Maintenance))
			admin.Post("/renormalize", api.RenormalizeAirportsHandler(svcs.Maintenance))
			admin.Put("/{id}", api.CorrectAirportHandler(svcs.Maintenance))
		})
	})
}

func limited(limiter *middleware.IPRateLimiter) func(http.Handler) http.Handler {
	if limiter == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return limiter.Middleware
}
