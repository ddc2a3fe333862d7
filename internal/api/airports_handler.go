package api

import (
	"errors"
	"net/http"
	"time"

	"wayfarer/tracker/internal/common"
	"wayfarer/tracker/internal/constants"
	"wayfarer/tracker/internal/logging"
	"wayfarer/tracker/internal/models/dtos/responses"
	"wayfarer/tracker/internal/reference"
)

// AirportSearchHandler handles GET /api/v1/airports/search?q=
//
// @Summary Airport autocomplete
// @Description Ranked suggestions from the reference catalogue. A missing or
// @Description one-character query yields an empty list.
// @Tags Airports
// @Param q query string false "Code, name or city fragment"
// @Success 200 {object} responses.AirportSearchResponse
// @Router /api/v1/airports/search [get]
func AirportSearchHandler(searcher AirportSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")

		records, err := searcher.SearchByText(r.Context(), query)
		if err != nil {
			var fault *reference.LookupFault
			if errors.As(err, &fault) {
				logging.Warn("Airport search degraded", "query", query, "error", err.Error())
				respondWithError(w, http.StatusInternalServerError, constants.MsgSearchUnavailable)
				return
			}
			respondServiceError(w, r, err, constants.MsgInternalError)
			return
		}

		respondWithJSON(w, http.StatusOK, responses.AirportSearchResponse{
			Airports: responses.NewAirportSuggestions(records),
		})
	}
}

// AirportListHandler handles GET /api/v1/airports and feeds the map markers
func AirportListHandler(airports AirportLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		stored, err := airports.FindAll(r.Context())
		if err != nil {
			respondEnvelopeError(w, initTime, err, constants.MsgListAirportsFailed)
			return
		}

		common.RespondSuccess(w, initTime, constants.StatusAirportsListed, responses.NewAirportDTOs(stored))
	}
}
