package api

import (
	"context"
	"time"

	"gorm.io/gorm"

	"wayfarer/tracker/internal/common"
	"wayfarer/tracker/internal/db"
	"wayfarer/tracker/internal/db/repositories"
	"wayfarer/tracker/internal/metrics"
	"wayfarer/tracker/internal/reference"
	"wayfarer/tracker/internal/services"
)

// PingFunc adapts a function to Pinger
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

type Repositories struct {
	Airports *repositories.AirportRepository
	Flights  *repositories.FlightRepository
}

type Services struct {
	Cache       common.CacheInterface
	Lookup      *reference.Lookup
	Resolver    *services.AirportResolver
	Coordinates *services.CoordinateResolver
	Flights     *services.FlightService
	Countries   *services.CountryService
	Seed        *services.SeedService
	Maintenance *services.MaintenanceService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	Metrics  *metrics.MetricsRegistry
	// Checks are probed by the health endpoint, keyed by service name
	Checks map[string]Pinger
}

// Options are the collaborators built in main from configuration
type Options struct {
	Store          *gorm.DB
	Reference      reference.Dataset
	Cache          common.CacheInterface
	SearchCacheTTL time.Duration
	Timezones      common.TimezoneFinder
	DefaultZone    *time.Location
	Metrics        *metrics.MetricsRegistry
}

func InitDependencies(opts Options) *Dependencies {
	repos := &Repositories{
		Airports: repositories.NewAirportRepository(opts.Store),
		Flights:  repositories.NewFlightRepository(opts.Store),
	}

	lookupOpts := []reference.LookupOption{reference.WithMetrics(opts.Metrics)}
	if opts.Cache != nil {
		lookupOpts = append(lookupOpts, reference.WithCache(opts.Cache, opts.SearchCacheTTL))
	}
	lookup := reference.NewLookup(opts.Reference, lookupOpts...)

	resolver := services.NewAirportResolver(repos.Airports, lookup, opts.Timezones, opts.Metrics)
	coordinates := services.NewCoordinateResolver(repos.Airports, opts.Timezones, opts.Metrics)

	svcs := &Services{
		Cache:       opts.Cache,
		Lookup:      lookup,
		Resolver:    resolver,
		Coordinates: coordinates,
		Flights:     services.NewFlightService(repos.Flights, resolver, coordinates, opts.DefaultZone, opts.Metrics),
		Countries:   services.NewCountryService(repos.Airports),
		Seed:        services.NewSeedService(repos.Airports, opts.Timezones),
		Maintenance: services.NewMaintenanceService(repos.Airports, lookup, opts.Timezones),
	}

	checks := map[string]Pinger{
		"store": PingFunc(func(ctx context.Context) error {
			return db.Ping(ctx, opts.Store)
		}),
		"reference": lookup,
	}
	if p, ok := opts.Cache.(Pinger); ok {
		checks["cache"] = p
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
		Metrics:  opts.Metrics,
		Checks:   checks,
	}
}
