package api

import (
	"context"
	"io"

	"wayfarer/tracker/internal/models/dtos/requests"
	gormModels "wayfarer/tracker/internal/models/gorm"
	"wayfarer/tracker/internal/reference"
	"wayfarer/tracker/internal/services"
)

type mockSearcher struct {
	searchFunc func(ctx context.Context, query string) ([]reference.Record, error)
}

func (m *mockSearcher) SearchByText(ctx context.Context, query string) ([]reference.Record, error) {
	return m.searchFunc(ctx, query)
}

type mockAirportLister struct {
	findAllFunc func(ctx context.Context) ([]gormModels.Airport, error)
}

func (m *mockAirportLister) FindAll(ctx context.Context) ([]gormModels.Airport, error) {
	return m.findAllFunc(ctx)
}

type mockFlights struct {
	createFunc func(ctx context.Context, req requests.CreateFlightRequest) (*gormModels.Flight, error)
	updateFunc func(ctx context.Context, id string, req requests.UpdateFlightRequest) (*gormModels.Flight, error)
	deleteFunc func(ctx context.Context, id string) error
	listFunc   func(ctx context.Context) ([]gormModels.Flight, error)
	getFunc    func(ctx context.Context, id string) (*gormModels.Flight, error)
}

func (m *mockFlights) CreateFlight(ctx context.Context, req requests.CreateFlightRequest) (*gormModels.Flight, error) {
	return m.createFunc(ctx, req)
}

func (m *mockFlights) UpdateFlight(ctx context.Context, id string, req requests.UpdateFlightRequest) (*gormModels.Flight, error) {
	return m.updateFunc(ctx, id, req)
}

func (m *mockFlights) DeleteFlight(ctx context.Context, id string) error {
	return m.deleteFunc(ctx, id)
}

func (m *mockFlights) ListFlights(ctx context.Context) ([]gormModels.Flight, error) {
	return m.listFunc(ctx)
}

func (m *mockFlights) GetFlight(ctx context.Context, id string) (*gormModels.Flight, error) {
	return m.getFunc(ctx, id)
}

type mockCountries struct {
	visitedFunc func(ctx context.Context) ([]services.VisitedCountry, error)
}

func (m *mockCountries) VisitedCountries(ctx context.Context) ([]services.VisitedCountry, error) {
	return m.visitedFunc(ctx)
}

type mockSeeder struct {
	defaultsCalled bool
	body           string
	report         *services.SeedReport
	err            error
}

func (m *mockSeeder) LoadDefaults(ctx context.Context) (*services.SeedReport, error) {
	m.defaultsCalled = true
	return m.report, m.err
}

func (m *mockSeeder) LoadFromJSON(ctx context.Context, reader io.Reader) (*services.SeedReport, error) {
	b, _ := io.ReadAll(reader)
	m.body = string(b)
	return m.report, m.err
}

type mockMaintainer struct {
	auditFunc       func(ctx context.Context) ([]services.AirportIssues, error)
	renormalizeFunc func(ctx context.Context) (*services.RenormalizeReport, error)
	correctFunc     func(ctx context.Context, id string, req requests.CorrectAirportRequest) (*gormModels.Airport, error)
}

func (m *mockMaintainer) Audit(ctx context.Context) ([]services.AirportIssues, error) {
	return m.auditFunc(ctx)
}

func (m *mockMaintainer) Renormalize(ctx context.Context) (*services.RenormalizeReport, error) {
	return m.renormalizeFunc(ctx)
}

func (m *mockMaintainer) CorrectAirport(ctx context.Context, id string, req requests.CorrectAirportRequest) (*gormModels.Airport, error) {
	return m.correctFunc(ctx, id, req)
}

func strPtr(s string) *string {
	return &s
}

func sampleFlight() *gormModels.Flight {
	return &gormModels.Flight{
		ID:           "f-1",
		FlightNumber: strPtr("OS 87"),
		DepartureAirport: gormModels.Airport{
			ID: "a-1", IATACode: strPtr("VIE"), ICAOCode: strPtr("LOWW"),
			Name: "Vienna International Airport", City: "Vienna", Country: "Austria",
		},
		ArrivalAirport: gormModels.Airport{
			ID: "a-2", ICAOCode: strPtr("LOAN"),
			Name: "Wiener Neustadt East", City: "Wiener Neustadt", Country: "Austria",
		},
	}
}
