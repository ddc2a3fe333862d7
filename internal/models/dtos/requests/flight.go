package requests

import "wayfarer/tracker/internal/common"

// FlightDetails are the descriptive fields shared by create and update
type FlightDetails struct {
	FlightNumber         *string `json:"flightNumber"`
	Airline              *string `json:"airline"`
	AircraftType         *string `json:"aircraftType"`
	AircraftRegistration *string `json:"aircraftRegistration"`
	SeatNumber           *string `json:"seatNumber"`
	FlightClass          *string `json:"flightClass"`
	Reason               *string `json:"reason"`
	Comments             *string `json:"comments"`

	// DepartureDate/ArrivalDate are YYYY-MM-DD. DepartureTime/ArrivalTime
	// are either HH:MM on that date or a full RFC3339 instant, in which case
	// the date may be omitted.
	DepartureDate string `json:"departureDate"`
	DepartureTime string `json:"departureTime"`
	ArrivalDate   string `json:"arrivalDate"`
	ArrivalTime   string `json:"arrivalTime"`
}

// CreateFlightRequest adds how the two airports are given: by code or name,
// or by coordinates when UseCoordinates is set
type CreateFlightRequest struct {
	FlightDetails

	DepartureAirportCode string `json:"departureAirportCode"`
	ArrivalAirportCode   string `json:"arrivalAirportCode"`

	UseCoordinates       bool                 `json:"useCoordinates"`
	DepartureCoordinates string               `json:"departureCoordinates"`
	ArrivalCoordinates   string               `json:"arrivalCoordinates"`
	DepartureAirportLat  common.NumericString `json:"departureAirportLat"`
	DepartureAirportLng  common.NumericString `json:"departureAirportLng"`
	ArrivalAirportLat    common.NumericString `json:"arrivalAirportLat"`
	ArrivalAirportLng    common.NumericString `json:"arrivalAirportLng"`
}

// UpdateFlightRequest replaces metadata only. Airports are never re-resolved.
type UpdateFlightRequest struct {
	FlightDetails
}

// CorrectAirportRequest is a manual fix to a stored airport. Nil fields are
// left unchanged.
type CorrectAirportRequest struct {
	Name      *string  `json:"name"`
	City      *string  `json:"city"`
	Country   *string  `json:"country"`
	ICAOCode  *string  `json:"icaoCode"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}
