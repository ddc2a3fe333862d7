package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"time"

	"wayfarer/tracker/internal/models/dtos"
)

// HealthCheckHandler handles GET /healthCheck
//
// @Summary Health check
// @Description Pings the flight store, the reference catalogue and the cache.
// @Tags Misc
// @Success 200 {object} dtos.HealthCheckResponse
// @Failure 503 {object} dtos.HealthCheckResponse
// @Router /healthCheck [get]
func HealthCheckHandler(checks map[string]Pinger, upSince time.Time) http.HandlerFunc {
	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)

	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		statuses := make(map[string]dtos.ServiceStatus, len(checks))
		overall := "ok"
		for _, name := range names {
			status := dtos.ServiceStatus{Status: "ok"}
			if err := checks[name].Ping(ctx); err != nil {
				status = dtos.ServiceStatus{Status: "down", Details: err.Error()}
				overall = "down"
			}
			statuses[name] = status
		}

		resp := dtos.HealthCheckResponse{
			Status:   overall,
			Uptime:   time.Since(upSince).Round(time.Second).String(),
			Services: statuses,
		}

		code := http.StatusOK
		if overall != "ok" {
			code = http.StatusServiceUnavailable
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(resp)
	}
}
