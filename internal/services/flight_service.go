package services

import (
	"context"
	"strings"
	"time"

	"wayfarer/tracker/internal/common"
	"wayfarer/tracker/internal/constants"
	"wayfarer/tracker/internal/db/repositories"
	"wayfarer/tracker/internal/logging"
	"wayfarer/tracker/internal/metrics"
	"wayfarer/tracker/internal/models/dtos/requests"
	gormModels "wayfarer/tracker/internal/models/gorm"
)

// FlightService assembles flight records from user input
type FlightService struct {
	flights     *repositories.FlightRepository
	resolver    *AirportResolver
	coordinates *CoordinateResolver
	defaultZone *time.Location
	metrics     *metrics.MetricsRegistry
}

// NewFlightService wires the flight assembler. defaultZone is used for
// wall-clock times at airports whose zone is unknown; nil means time.Local.
func NewFlightService(
	flights *repositories.FlightRepository,
	resolver *AirportResolver,
	coordinates *CoordinateResolver,
	defaultZone *time.Location,
	m *metrics.MetricsRegistry,
) *FlightService {
	if defaultZone == nil {
		defaultZone = time.Local
	}
	return &FlightService{
		flights:     flights,
		resolver:    resolver,
		coordinates: coordinates,
		defaultZone: defaultZone,
		metrics:     m,
	}
}

// CreateFlight validates the request, resolves departure then arrival, and
// stores the flight. Airports created before a later failure are kept.
func (s *FlightService) CreateFlight(ctx context.Context, req requests.CreateFlightRequest) (*gormModels.Flight, error) {
	dep, arr, err := parseSchedules(req.FlightDetails)
	if err != nil {
		return nil, err
	}

	var depAirport, arrAirport *gormModels.Airport
	if req.UseCoordinates {
		depAirport, arrAirport, err = s.resolveCoordinates(ctx, req)
	} else {
		depAirport, arrAirport, err = s.resolveCodes(ctx, req)
	}
	if err != nil {
		return nil, err
	}

	flight := &gormModels.Flight{
		DepartureAirportID: depAirport.ID,
		ArrivalAirportID:   arrAirport.ID,
		DepartureTime:      dep.in(s.zoneOf(depAirport)),
		ArrivalTime:        arr.in(s.zoneOf(arrAirport)),
	}
	applyDetails(flight, req.FlightDetails)

	if err := s.flights.Create(ctx, flight); err != nil {
		return nil, &StoreFault{Op: "create_flight", Err: err}
	}
	s.metrics.ObserveFlightRecorded()

	logging.Info("Flight recorded",
		"flight_id", flight.ID,
		"departure", depAirport.DisplayCode(),
		"arrival", arrAirport.DisplayCode(),
	)

	flight.DepartureAirport = *depAirport
	flight.ArrivalAirport = *arrAirport
	return flight, nil
}

func (s *FlightService) resolveCodes(ctx context.Context, req requests.CreateFlightRequest) (*gormModels.Airport, *gormModels.Airport, error) {
	if strings.TrimSpace(req.DepartureAirportCode) == "" {
		return nil, nil, invalid("departureAirportCode", "airport is required")
	}
	if strings.TrimSpace(req.ArrivalAirportCode) == "" {
		return nil, nil, invalid("arrivalAirportCode", "airport is required")
	}

	dep, err := s.resolver.Resolve(ctx, req.DepartureAirportCode, constants.RoleDeparture)
	if err != nil {
		return nil, nil, err
	}
	arr, err := s.resolver.Resolve(ctx, req.ArrivalAirportCode, constants.RoleArrival)
	if err != nil {
		return nil, nil, err
	}
	return dep.Airport, arr.Airport, nil
}

func (s *FlightService) resolveCoordinates(ctx context.Context, req requests.CreateFlightRequest) (*gormModels.Airport, *gormModels.Airport, error) {
	dep, err := CoordinateInput{
		Pair: req.DepartureCoordinates,
		Lat:  string(req.DepartureAirportLat),
		Lng:  string(req.DepartureAirportLng),
	}.ToPoint("departureCoordinates")
	if err != nil {
		return nil, nil, err
	}

	arr, err := CoordinateInput{
		Pair: req.ArrivalCoordinates,
		Lat:  string(req.ArrivalAirportLat),
		Lng:  string(req.ArrivalAirportLng),
	}.ToPoint("arrivalCoordinates")
	if err != nil {
		return nil, nil, err
	}

	return s.coordinates.Resolve(ctx, dep, arr)
}

// UpdateFlight replaces the flight's metadata and times. The airports stay
// as they were resolved at creation.
func (s *FlightService) UpdateFlight(ctx context.Context, id string, req requests.UpdateFlightRequest) (*gormModels.Flight, error) {
	flight, err := s.flights.FindByID(ctx, id)
	if err != nil {
		return nil, &StoreFault{Op: "find_flight", Err: err}
	}
	if flight == nil {
		return nil, ErrFlightNotFound
	}

	dep, arr, err := parseSchedules(req.FlightDetails)
	if err != nil {
		return nil, err
	}

	flight.DepartureTime = dep.in(s.zoneOf(&flight.DepartureAirport))
	flight.ArrivalTime = arr.in(s.zoneOf(&flight.ArrivalAirport))
	applyDetails(flight, req.FlightDetails)

	found, err := s.flights.UpdateMetadata(ctx, flight)
	if err != nil {
		return nil, &StoreFault{Op: "update_flight", Err: err}
	}
	if !found {
		return nil, ErrFlightNotFound
	}

	return flight, nil
}

// DeleteFlight removes the flight only. Its airports remain stored.
func (s *FlightService) DeleteFlight(ctx context.Context, id string) error {
	found, err := s.flights.Delete(ctx, id)
	if err != nil {
		return &StoreFault{Op: "delete_flight", Err: err}
	}
	if !found {
		return ErrFlightNotFound
	}

	logging.Info("Flight deleted", "flight_id", id)
	return nil
}

// ListFlights returns every flight, latest departure first
func (s *FlightService) ListFlights(ctx context.Context) ([]gormModels.Flight, error) {
	flights, err := s.flights.FindAll(ctx)
	if err != nil {
		return nil, &StoreFault{Op: "list_flights", Err: err}
	}
	return flights, nil
}

func (s *FlightService) GetFlight(ctx context.Context, id string) (*gormModels.Flight, error) {
	flight, err := s.flights.FindByID(ctx, id)
	if err != nil {
		return nil, &StoreFault{Op: "find_flight", Err: err}
	}
	if flight == nil {
		return nil, ErrFlightNotFound
	}
	return flight, nil
}

func (s *FlightService) zoneOf(airport *gormModels.Airport) *time.Location {
	return common.LoadLocation(airport.Timezone, s.defaultZone)
}

func parseSchedules(d requests.FlightDetails) (schedule, schedule, error) {
	dep, err := parseSchedule("departureDate", d.DepartureDate, d.DepartureTime)
	if err != nil {
		return schedule{}, schedule{}, err
	}
	arr, err := parseSchedule("arrivalDate", d.ArrivalDate, d.ArrivalTime)
	if err != nil {
		return schedule{}, schedule{}, err
	}
	return dep, arr, nil
}

func applyDetails(flight *gormModels.Flight, d requests.FlightDetails) {
	flight.FlightNumber = common.TrimmedOrNil(d.FlightNumber)
	flight.Airline = common.TrimmedOrNil(d.Airline)
	flight.AircraftType = common.TrimmedOrNil(d.AircraftType)
	flight.AircraftRegistration = common.TrimmedOrNil(d.AircraftRegistration)
	flight.SeatNumber = common.TrimmedOrNil(d.SeatNumber)
	flight.FlightClass = common.TrimmedOrNil(d.FlightClass)
	flight.Reason = common.TrimmedOrNil(d.Reason)
	flight.Comments = common.TrimmedOrNil(d.Comments)
}

