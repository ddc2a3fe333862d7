package api

import (
	"context"
	"io"

	"wayfarer/tracker/internal/db/repositories"
	"wayfarer/tracker/internal/models/dtos/requests"
	gormModels "wayfarer/tracker/internal/models/gorm"
	"wayfarer/tracker/internal/reference"
	"wayfarer/tracker/internal/services"
)

// The handlers depend on these narrow views of the services so tests can
// swap in func-field mocks.

type AirportSearcher interface {
	SearchByText(ctx context.Context, query string) ([]reference.Record, error)
}

type AirportLister interface {
	FindAll(ctx context.Context) ([]gormModels.Airport, error)
}

type FlightManager interface {
	CreateFlight(ctx context.Context, req requests.CreateFlightRequest) (*gormModels.Flight, error)
	UpdateFlight(ctx context.Context, id string, req requests.UpdateFlightRequest) (*gormModels.Flight, error)
	DeleteFlight(ctx context.Context, id string) error
	ListFlights(ctx context.Context) ([]gormModels.Flight, error)
	GetFlight(ctx context.Context, id string) (*gormModels.Flight, error)
}

type CountryLister interface {
	VisitedCountries(ctx context.Context) ([]services.VisitedCountry, error)
}

type AirportSeeder interface {
	LoadDefaults(ctx context.Context) (*services.SeedReport, error)
	LoadFromJSON(ctx context.Context, reader io.Reader) (*services.SeedReport, error)
}

type AirportMaintainer interface {
	Audit(ctx context.Context) ([]services.AirportIssues, error)
	Renormalize(ctx context.Context) (*services.RenormalizeReport, error)
	CorrectAirport(ctx context.Context, id string, req requests.CorrectAirportRequest) (*gormModels.Airport, error)
}

// Pinger is anything the health check can probe
type Pinger interface {
	Ping(ctx context.Context) error
}

var (
	_ AirportSearcher   = (*reference.Lookup)(nil)
	_ AirportLister     = (*repositories.AirportRepository)(nil)
	_ FlightManager     = (*services.FlightService)(nil)
	_ CountryLister     = (*services.CountryService)(nil)
	_ AirportSeeder     = (*services.SeedService)(nil)
	_ AirportMaintainer = (*services.MaintenanceService)(nil)
	_ Pinger            = (*reference.Lookup)(nil)
)
