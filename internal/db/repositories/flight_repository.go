package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	gormModels "wayfarer/tracker/internal/models/gorm"
)

// FlightRepository handles flight table operations
type FlightRepository struct {
	db *gorm.DB
}

// NewFlightRepository creates a new flight repository
func NewFlightRepository(db *gorm.DB) *FlightRepository {
	return &FlightRepository{db: db}
}

// Create inserts a flight. Both airport ids must already be stored.
func (r *FlightRepository) Create(ctx context.Context, flight *gormModels.Flight) error {
	err := r.db.WithContext(ctx).
		Omit("DepartureAirport", "ArrivalAirport").
		Create(flight).Error
	if err != nil {
		return fmt.Errorf("failed to create flight: %w", err)
	}
	return nil
}

// FindByID retrieves a flight with both airports preloaded
func (r *FlightRepository) FindByID(ctx context.Context, id string) (*gormModels.Flight, error) {
	var flight gormModels.Flight

	err := r.db.WithContext(ctx).
		Preload("DepartureAirport").
		Preload("ArrivalAirport").
		Where("id = ?", id).
		First(&flight).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch flight: %w", err)
	}

	return &flight, nil
}

// FindAll returns every flight, latest departure first, airports preloaded
func (r *FlightRepository) FindAll(ctx context.Context) ([]gormModels.Flight, error) {
	var flights []gormModels.Flight

	err := r.db.WithContext(ctx).
		Preload("DepartureAirport").
		Preload("ArrivalAirport").
		Order("departure_time DESC").
		Find(&flights).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch flights: %w", err)
	}

	return flights, nil
}

// UpdateMetadata overwrites the descriptive fields and times of a flight.
// Airport references are never changed here. Returns false when no flight
// has the given id.
func (r *FlightRepository) UpdateMetadata(ctx context.Context, flight *gormModels.Flight) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&gormModels.Flight{}).
		Where("id = ?", flight.ID).
		Select(
			"flight_number", "airline", "aircraft_type", "aircraft_registration",
			"seat_number", "flight_class", "reason", "comments",
			"departure_time", "arrival_time", "updated_at",
		).
		Updates(flight)

	if result.Error != nil {
		return false, fmt.Errorf("failed to update flight: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// Delete removes a flight and nothing else. Returns false when no flight
// has the given id.
func (r *FlightRepository) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&gormModels.Flight{})

	if result.Error != nil {
		return false, fmt.Errorf("failed to delete flight: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// Count returns total number of flights
func (r *FlightRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&gormModels.Flight{}).Count(&count).Error
	return count, err
}
