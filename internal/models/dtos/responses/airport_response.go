package responses

import (
	gormModels "wayfarer/tracker/internal/models/gorm"
	"wayfarer/tracker/internal/reference"
)

// AirportDTO is a stored airport as the map and flight list see it. Code is
// the display code and is never stored.
type AirportDTO struct {
	ID        string  `json:"id"`
	Code      string  `json:"code"`
	IATACode  *string `json:"iata_code"`
	ICAOCode  *string `json:"icao_code"`
	Name      string  `json:"name"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone,omitempty"`
}

func NewAirportDTO(a *gormModels.Airport) AirportDTO {
	return AirportDTO{
		ID:        a.ID,
		Code:      a.DisplayCode(),
		IATACode:  a.IATACode,
		ICAOCode:  a.ICAOCode,
		Name:      a.Name,
		City:      a.City,
		Country:   a.Country,
		Latitude:  a.Latitude,
		Longitude: a.Longitude,
		Timezone:  a.Timezone,
	}
}

func NewAirportDTOs(airports []gormModels.Airport) []AirportDTO {
	out := make([]AirportDTO, 0, len(airports))
	for i := range airports {
		out = append(out, NewAirportDTO(&airports[i]))
	}
	return out
}

// AirportSuggestion is one autocomplete entry from the reference catalogue
type AirportSuggestion struct {
	Code      string  `json:"code"`
	ICAOCode  string  `json:"icao_code"`
	IATACode  string  `json:"iata_code"`
	Name      string  `json:"name"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func NewAirportSuggestions(records []reference.Record) []AirportSuggestion {
	out := make([]AirportSuggestion, 0, len(records))
	for _, rec := range records {
		code, ok := rec.IATA()
		if !ok {
			code, ok = rec.ICAO()
		}
		if !ok {
			code = gormModels.UnknownCode
		}
		out = append(out, AirportSuggestion{
			Code:      code,
			ICAOCode:  rec.ICAOCode,
			IATACode:  rec.IATACode,
			Name:      rec.Name,
			City:      rec.City,
			Country:   rec.Country,
			Latitude:  rec.Latitude,
			Longitude: rec.Longitude,
		})
	}
	return out
}

// AirportSearchResponse wraps search results
type AirportSearchResponse struct {
	Airports []AirportSuggestion `json:"airports"`
}
