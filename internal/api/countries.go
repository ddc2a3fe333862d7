package api

import (
	"net/http"
	"time"

	"wayfarer/tracker/internal/common"
	"wayfarer/tracker/internal/constants"
)

// VisitedCountriesHandler handles GET /api/v1/countries/visited
func VisitedCountriesHandler(countries CountryLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		visited, err := countries.VisitedCountries(r.Context())
		if err != nil {
			respondEnvelopeError(w, initTime, err, constants.MsgListCountriesFailed)
			return
		}

		common.RespondSuccess(w, initTime, constants.StatusCountriesListed, visited)
	}
}
