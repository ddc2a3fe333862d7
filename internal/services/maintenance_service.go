package services

import (
	"context"
	"strings"

	"wayfarer/tracker/internal/common"
	"wayfarer/tracker/internal/db/repositories"
	"wayfarer/tracker/internal/logging"
	"wayfarer/tracker/internal/models/dtos/requests"
	gormModels "wayfarer/tracker/internal/models/gorm"
)

// Data-quality problems reported by Audit
const (
	IssueNoIATACode         = "No IATA code"
	IssueUnknownCity        = "Unknown city"
	IssueUnknownCountry     = "Unknown country"
	IssueInvalidCoordinates = "Invalid coordinates"
)

// AirportIssues lists what is wrong with one stored airport
type AirportIssues struct {
	Airport gormModels.Airport
	Issues  []string
}

// RenormalizeReport summarises a Renormalize run
type RenormalizeReport struct {
	Checked int `json:"checked"`
	Updated int `json:"updated"`
	Missing int `json:"missing"`
}

// MaintenanceService holds the explicit corrections that may rewrite stored
// airports after creation
type MaintenanceService struct {
	airports  *repositories.AirportRepository
	reference AirportReference
	timezones common.TimezoneFinder
}

func NewMaintenanceService(
	airports *repositories.AirportRepository,
	ref AirportReference,
	timezones common.TimezoneFinder,
) *MaintenanceService {
	return &MaintenanceService{
		airports:  airports,
		reference: ref,
		timezones: timezones,
	}
}

// Audit returns every stored airport with at least one data-quality issue
func (s *MaintenanceService) Audit(ctx context.Context) ([]AirportIssues, error) {
	airports, err := s.airports.FindAll(ctx)
	if err != nil {
		return nil, &StoreFault{Op: "list_airports", Err: err}
	}

	report := make([]AirportIssues, 0)
	for _, a := range airports {
		var issues []string
		if a.IATACode == nil || *a.IATACode == "" {
			issues = append(issues, IssueNoIATACode)
		}
		if a.City == common.UnknownPlace {
			issues = append(issues, IssueUnknownCity)
		}
		if a.Country == common.UnknownPlace {
			issues = append(issues, IssueUnknownCountry)
		}
		if !a.HasKnownPosition() {
			issues = append(issues, IssueInvalidCoordinates)
		}

		if len(issues) > 0 {
			report = append(report, AirportIssues{Airport: a, Issues: issues})
		}
	}
	return report, nil
}

// Renormalize re-reads each coded airport from the reference catalogue and
// rewrites its name, city and country in canonical form. Placeholder codes
// are skipped. A catalogue failure aborts the run.
func (s *MaintenanceService) Renormalize(ctx context.Context) (*RenormalizeReport, error) {
	airports, err := s.airports.FindAll(ctx)
	if err != nil {
		return nil, &StoreFault{Op: "list_airports", Err: err}
	}

	report := &RenormalizeReport{}
	for i := range airports {
		a := &airports[i]
		code := a.DisplayCode()
		if code == gormModels.UnknownCode || isPlaceholderCode(code) {
			continue
		}
		report.Checked++

		rec, err := s.reference.FindByCode(ctx, code)
		if err != nil {
			return report, err
		}
		if rec == nil {
			report.Missing++
			continue
		}

		a.Name = rec.Name
		a.City = common.NormalizeCityName(rec.City)
		a.Country = common.NormalizeCountryName(rec.Country)
		if a.Timezone == "" && a.HasKnownPosition() {
			a.Timezone = common.TimezoneAt(s.timezones, a.Latitude, a.Longitude)
		}

		if err := s.airports.Update(ctx, a); err != nil {
			return report, &StoreFault{Op: "update_airport", Err: err}
		}
		report.Updated++
	}

	logging.Info("Airports renormalized",
		"checked", report.Checked,
		"updated", report.Updated,
		"missing", report.Missing,
	)
	return report, nil
}

// CorrectAirport applies a manual fix, typically to a synthesized airport.
// City and country are normalized before storing.
func (s *MaintenanceService) CorrectAirport(ctx context.Context, id string, req requests.CorrectAirportRequest) (*gormModels.Airport, error) {
	airport, err := s.airports.FindByID(ctx, id)
	if err != nil {
		return nil, &StoreFault{Op: "find_airport", Err: err}
	}
	if airport == nil {
		return nil, ErrAirportNotFound
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, invalid("name", "must not be empty")
		}
		airport.Name = name
	}
	if req.City != nil {
		airport.City = common.NormalizeCityName(*req.City)
	}
	if req.Country != nil {
		airport.Country = common.NormalizeCountryName(*req.Country)
	}
	if req.ICAOCode != nil {
		icao, err := validICAO(*req.ICAOCode)
		if err != nil {
			return nil, err
		}
		airport.ICAOCode = icao
	}

	if req.Latitude != nil || req.Longitude != nil {
		p := Point{Lat: airport.Latitude, Lng: airport.Longitude}
		if req.Latitude != nil {
			p.Lat = *req.Latitude
		}
		if req.Longitude != nil {
			p.Lng = *req.Longitude
		}
		if err := p.validate("coordinates"); err != nil {
			return nil, err
		}
		airport.Latitude, airport.Longitude = p.Lat, p.Lng
		airport.Timezone = common.TimezoneAt(s.timezones, p.Lat, p.Lng)
	}

	if err := s.airports.Update(ctx, airport); err != nil {
		return nil, &StoreFault{Op: "update_airport", Err: err}
	}

	logging.Info("Airport corrected", "airport_id", airport.ID, "code", airport.DisplayCode())
	return airport, nil
}

func validICAO(raw string) (*string, error) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if code == "" {
		return nil, nil
	}
	if len(code) != 4 {
		return nil, invalid("icaoCode", "must be 4 characters")
	}
	for _, c := range code {
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return nil, invalid("icaoCode", "must be letters or digits")
		}
	}
	return &code, nil
}

func isPlaceholderCode(code string) bool {
	return strings.HasPrefix(code, "CUSTOM_") || strings.HasPrefix(code, "COORD_")
}
