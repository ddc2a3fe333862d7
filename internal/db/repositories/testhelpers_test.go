package repositories

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	gormModels "wayfarer/tracker/internal/models/gorm"
)

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
	// one connection, one in-memory database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(&gormModels.Airport{}, &gormModels.Flight{}); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return db
}

func strPtr(s string) *string { return &s }

func airport(iata, icao, name, city, country string) *gormModels.Airport {
	a := &gormModels.Airport{Name: name, City: city, Country: country}
	if iata != "" {
		a.IATACode = strPtr(iata)
	}
	if icao != "" {
		a.ICAOCode = strPtr(icao)
	}
	return a
}

func flightBetween(dep, arr *gormModels.Airport, departure time.Time) *gormModels.Flight {
	return &gormModels.Flight{
		DepartureAirportID: dep.ID,
		ArrivalAirportID:   arr.ID,
		DepartureTime:      departure,
		ArrivalTime:        departure.Add(5 * time.Hour),
	}
}
