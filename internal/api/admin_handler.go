package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"wayfarer/tracker/internal/common"
	"wayfarer/tracker/internal/constants"
	"wayfarer/tracker/internal/models/dtos/requests"
	"wayfarer/tracker/internal/models/dtos/responses"
	"wayfarer/tracker/internal/services"
)

const maxSeedBodyBytes = 8 << 20

// SeedAirportsHandler handles POST /api/v1/admin/airports/seed. An empty
// body seeds the list compiled into the binary; otherwise the body is a JSON
// array of seed airports.
func SeedAirportsHandler(seeder AirportSeeder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxSeedBodyBytes))
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgInvalidRequestBody, http.StatusBadRequest)
			return
		}

		var report *services.SeedReport
		if len(bytes.TrimSpace(body)) == 0 {
			report, err = seeder.LoadDefaults(r.Context())
		} else {
			report, err = seeder.LoadFromJSON(r.Context(), bytes.NewReader(body))
		}
		if err != nil {
			respondEnvelopeError(w, initTime, err, constants.MsgSeedFailed)
			return
		}

		common.RespondSuccess(w, initTime, constants.StatusSeeded, report)
	}
}

type airportIssuesDTO struct {
	Airport responses.AirportDTO `json:"airport"`
	Issues  []string             `json:"issues"`
}

// AirportIssuesHandler handles GET /api/v1/admin/airports/issues
func AirportIssuesHandler(maintainer AirportMaintainer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		found, err := maintainer.Audit(r.Context())
		if err != nil {
			respondEnvelopeError(w, initTime, err, constants.MsgAuditFailed)
			return
		}

		out := make([]airportIssuesDTO, 0, len(found))
		for i := range found {
			out = append(out, airportIssuesDTO{
				Airport: responses.NewAirportDTO(&found[i].Airport),
				Issues:  found[i].Issues,
			})
		}
		common.RespondSuccess(w, initTime, constants.StatusIssuesListed, out)
	}
}

// RenormalizeAirportsHandler handles POST /api/v1/admin/airports/renormalize
func RenormalizeAirportsHandler(maintainer AirportMaintainer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		report, err := maintainer.Renormalize(r.Context())
		if err != nil {
			respondEnvelopeError(w, initTime, err, constants.MsgRenormalizeFailed)
			return
		}
		common.RespondSuccess(w, initTime, constants.StatusRenormalized, report)
	}
}

// CorrectAirportHandler handles PUT /api/v1/admin/airports/{id}
func CorrectAirportHandler(maintainer AirportMaintainer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req requests.CorrectAirportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, constants.MsgInvalidRequestBody, http.StatusBadRequest)
			return
		}

		airport, err := maintainer.CorrectAirport(r.Context(), chi.URLParam(r, "id"), req)
		if err != nil {
			respondEnvelopeError(w, initTime, err, constants.MsgCorrectAirportFailed)
			return
		}
		common.RespondSuccess(w, initTime, constants.StatusAirportSaved, responses.NewAirportDTO(airport))
	}
}
