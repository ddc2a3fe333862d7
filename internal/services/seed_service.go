package services

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"wayfarer/tracker/internal/common"
	"wayfarer/tracker/internal/db/repositories"
	"wayfarer/tracker/internal/logging"
	gormModels "wayfarer/tracker/internal/models/gorm"
)

//go:embed seeddata/airports.json
var defaultSeedAirports []byte

// SeedAirport is one entry of a seed file
type SeedAirport struct {
	ICAOCode  string  `json:"icao_code"`
	IATACode  string  `json:"iata_code"`
	Name      string  `json:"name"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Altitude  int     `json:"altitude"`
}

// SeedReport summarises a seed run
type SeedReport struct {
	Parsed   int   `json:"parsed"`
	Deleted  int64 `json:"deleted"`
	Inserted int64 `json:"inserted"`
}

// SeedService loads a curated list of major airports into the store
type SeedService struct {
	airports  *repositories.AirportRepository
	timezones common.TimezoneFinder
}

func NewSeedService(airports *repositories.AirportRepository, timezones common.TimezoneFinder) *SeedService {
	return &SeedService{airports: airports, timezones: timezones}
}

// LoadDefaults seeds the list compiled into the binary
func (s *SeedService) LoadDefaults(ctx context.Context) (*SeedReport, error) {
	return s.LoadFromJSON(ctx, bytes.NewReader(defaultSeedAirports))
}

// LoadFromJSON replaces every airport no flight uses with the entries in
// reader, a JSON array of SeedAirport. Airports referenced by flights are
// kept, and seed entries whose codes they already hold are skipped.
func (s *SeedService) LoadFromJSON(ctx context.Context, reader io.Reader) (*SeedReport, error) {
	var raw []SeedAirport
	if err := json.NewDecoder(reader).Decode(&raw); err != nil {
		return nil, invalid("body", fmt.Sprintf("failed to decode seed airports: %v", err))
	}

	airports := make([]gormModels.Airport, 0, len(raw))
	for _, r := range raw {
		a := gormModels.Airport{
			Name:      strings.TrimSpace(r.Name),
			City:      common.NormalizeCityName(r.City),
			Country:   common.NormalizeCountryName(r.Country),
			Latitude:  r.Latitude,
			Longitude: r.Longitude,
		}
		if iata := strings.ToUpper(strings.TrimSpace(r.IATACode)); iata != "" {
			a.IATACode = &iata
		}
		if icao := strings.ToUpper(strings.TrimSpace(r.ICAOCode)); icao != "" {
			a.ICAOCode = &icao
		}

		// Skip invalid records
		if a.Name == "" || (a.IATACode == nil && a.ICAOCode == nil) {
			continue
		}
		if a.HasKnownPosition() {
			a.Timezone = common.TimezoneAt(s.timezones, a.Latitude, a.Longitude)
		}
		airports = append(airports, a)
	}

	if len(airports) == 0 {
		return nil, invalid("body", "no valid airports found")
	}

	deleted, err := s.airports.DeleteUnreferenced(ctx)
	if err != nil {
		return nil, &StoreFault{Op: "delete_airports", Err: err}
	}

	inserted, err := s.airports.BatchInsert(ctx, airports)
	if err != nil {
		return nil, &StoreFault{Op: "insert_airports", Err: err}
	}

	logging.Info("Airports seeded", "parsed", len(airports), "deleted", deleted, "inserted", inserted)
	return &SeedReport{Parsed: len(airports), Deleted: deleted, Inserted: inserted}, nil
}
