package services

import (
	"context"

	"wayfarer/tracker/internal/common"
	"wayfarer/tracker/internal/db/repositories"
)

// VisitedCountry is a country the user has flown to or from. MatchKey is
// the alias-normalized form the map matches country boundaries against.
type VisitedCountry struct {
	Country  string `json:"country"`
	MatchKey string `json:"match_key"`
}

type CountryService struct {
	airports *repositories.AirportRepository
}

func NewCountryService(airports *repositories.AirportRepository) *CountryService {
	return &CountryService{airports: airports}
}

// VisitedCountries lists the countries of airports on any flight,
// alphabetically, leaving out "Unknown".
func (s *CountryService) VisitedCountries(ctx context.Context) ([]VisitedCountry, error) {
	countries, err := s.airports.CountriesOnFlights(ctx)
	if err != nil {
		return nil, &StoreFault{Op: "visited_countries", Err: err}
	}

	visited := make([]VisitedCountry, 0, len(countries))
	for _, c := range countries {
		if c == common.UnknownPlace || c == "" {
			continue
		}
		visited = append(visited, VisitedCountry{
			Country:  c,
			MatchKey: common.NormalizeCountryAlias(c),
		})
	}
	return visited, nil
}
