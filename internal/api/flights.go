package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"wayfarer/tracker/internal/constants"
	"wayfarer/tracker/internal/logging"
	"wayfarer/tracker/internal/models/dtos/requests"
	"wayfarer/tracker/internal/models/dtos/responses"
)

// ListFlightsHandler handles GET /api/v1/flights, latest departure first
func ListFlightsHandler(flights FlightManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := flights.ListFlights(r.Context())
		if err != nil {
			respondServiceError(w, r, err, constants.MsgListFlightsFailed)
			return
		}
		respondWithJSON(w, http.StatusOK, responses.NewFlightDTOs(list))
	}
}

// GetFlightHandler handles GET /api/v1/flights/{id}
func GetFlightHandler(flights FlightManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flight, err := flights.GetFlight(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, r, err, constants.MsgListFlightsFailed)
			return
		}
		respondWithJSON(w, http.StatusOK, responses.NewFlightDTO(flight))
	}
}

// CreateFlightHandler godoc
// @Summary      Record a flight
// @Description  Airports are given either by code/name or, with useCoordinates, by position.
// @Tags         Flights
// @Accept       json
// @Produce      json
// @Param        body  body      requests.CreateFlightRequest  true  "Flight"
// @Success      201   {object}  responses.FlightDTO
// @Failure      400,500
// @Router       /api/v1/flights [post]
func CreateFlightHandler(flights FlightManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.CreateFlightRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logging.Debug("Rejected flight body", "error", err.Error())
			respondWithError(w, http.StatusBadRequest, constants.MsgInvalidRequestBody)
			return
		}

		flight, err := flights.CreateFlight(r.Context(), req)
		if err != nil {
			respondServiceError(w, r, err, constants.MsgCreateFlightFailed)
			return
		}

		respondWithJSON(w, http.StatusCreated, responses.NewFlightDTO(flight))
	}
}

// UpdateFlightHandler handles PUT /api/v1/flights/{id}. Only metadata and
// times change; the airports stay as recorded.
func UpdateFlightHandler(flights FlightManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.UpdateFlightRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, constants.MsgInvalidRequestBody)
			return
		}

		flight, err := flights.UpdateFlight(r.Context(), chi.URLParam(r, "id"), req)
		if err != nil {
			respondServiceError(w, r, err, constants.MsgUpdateFlightFailed)
			return
		}

		respondWithJSON(w, http.StatusOK, responses.NewFlightDTO(flight))
	}
}

// DeleteFlightHandler handles DELETE /api/v1/flights/{id}
func DeleteFlightHandler(flights FlightManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := flights.DeleteFlight(r.Context(), id); err != nil {
			respondServiceError(w, r, err, constants.MsgDeleteFlightFailed)
			return
		}
		respondWithJSON(w, http.StatusOK, map[string]string{"id": id})
	}
}
