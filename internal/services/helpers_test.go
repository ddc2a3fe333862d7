package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"wayfarer/tracker/internal/db/repositories"
	gormModels "wayfarer/tracker/internal/models/gorm"
	"wayfarer/tracker/internal/reference"
)

const catalogueCSV = `icao_code,iata_code,name,city,country,lat_decimal,lon_decimal
KLAX,LAX,Los Angeles International Airport,LOS ANGELES,UNITED STATES,33.9425,-118.4081
KJFK,JFK,John F Kennedy International Airport,NEW YORK,UNITED STATES,40.6413,-73.7781
LOWW,VIE,Vienna International Airport,VIENNA,AUSTRIA,48.1103,16.5697
LOAN,N/A,Wiener Neustadt Ost,WIENER NEUSTADT,AUSTRIA,47.8433,16.2600
EDDF,FRA,Frankfurt am Main Airport,FRANKFURT,GERMANY,50.0333,8.5706
`

// Mock reference lookup
type mockReference struct {
	findByCodeFunc func(ctx context.Context, code string) (*reference.Record, error)
	calls          int
}

func (m *mockReference) FindByCode(ctx context.Context, code string) (*reference.Record, error) {
	m.calls++
	return m.findByCodeFunc(ctx, code)
}

// fixedZone reports the same zone for every coordinate
type fixedZone string

func (z fixedZone) GetTimezoneName(lng float64, lat float64) string {
	return string(z)
}

// Setup test database
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=1"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(&gormModels.Airport{}, &gormModels.Flight{}); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return db
}

func closeDB(t *testing.T, db *gorm.DB) {
	t.Helper()
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.Close()
}

func catalogueLookup(t *testing.T) *reference.Lookup {
	t.Helper()
	ds, err := reference.LoadCSV(strings.NewReader(catalogueCSV))
	if err != nil {
		t.Fatalf("Failed to load catalogue: %v", err)
	}
	return reference.NewLookup(ds)
}

func newTestResolver(db *gorm.DB, ref AirportReference, now time.Time) *AirportResolver {
	r := NewAirportResolver(repositories.NewAirportRepository(db), ref, fixedZone("America/Los_Angeles"), nil)
	r.now = func() time.Time { return now }
	return r
}

func strPtr(s string) *string { return &s }

func newStoredAirport(t *testing.T, db *gorm.DB, iata, icao string) *gormModels.Airport {
	t.Helper()

	a := &gormModels.Airport{Name: iata + " Airport", City: "Dresden", Country: "Germany"}
	if iata != "" {
		a.IATACode = strPtr(iata)
	}
	if icao != "" {
		a.ICAOCode = strPtr(icao)
	}
	if err := repositories.NewAirportRepository(db).Create(context.Background(), a); err != nil {
		t.Fatalf("Failed to store airport: %v", err)
	}
	return a
}
