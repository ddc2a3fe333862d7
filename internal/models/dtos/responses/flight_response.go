package responses

import (
	"time"

	gormModels "wayfarer/tracker/internal/models/gorm"
)

// FlightDTO is a flight with both airports embedded
type FlightDTO struct {
	ID                   string     `json:"id"`
	FlightNumber         *string    `json:"flightNumber"`
	Airline              *string    `json:"airline"`
	AircraftType         *string    `json:"aircraftType"`
	AircraftRegistration *string    `json:"aircraftRegistration"`
	SeatNumber           *string    `json:"seatNumber"`
	FlightClass          *string    `json:"flightClass"`
	Reason               *string    `json:"reason"`
	Comments             *string    `json:"comments"`
	DepartureTime        time.Time  `json:"departureTime"`
	ArrivalTime          time.Time  `json:"arrivalTime"`
	DepartureAirport     AirportDTO `json:"departureAirport"`
	ArrivalAirport       AirportDTO `json:"arrivalAirport"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
}

func NewFlightDTO(f *gormModels.Flight) FlightDTO {
	return FlightDTO{
		ID:                   f.ID,
		FlightNumber:         f.FlightNumber,
		Airline:              f.Airline,
		AircraftType:         f.AircraftType,
		AircraftRegistration: f.AircraftRegistration,
		SeatNumber:           f.SeatNumber,
		FlightClass:          f.FlightClass,
		Reason:               f.Reason,
		Comments:             f.Comments,
		DepartureTime:        f.DepartureTime,
		ArrivalTime:          f.ArrivalTime,
		DepartureAirport:     NewAirportDTO(&f.DepartureAirport),
		ArrivalAirport:       NewAirportDTO(&f.ArrivalAirport),
		CreatedAt:            f.CreatedAt,
		UpdatedAt:            f.UpdatedAt,
	}
}

func NewFlightDTOs(flights []gormModels.Flight) []FlightDTO {
	out := make([]FlightDTO, 0, len(flights))
	for i := range flights {
		out = append(out, NewFlightDTO(&flights[i]))
	}
	return out
}
