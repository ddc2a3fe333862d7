package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	gormModels "wayfarer/tracker/internal/models/gorm"
)

// AirportRepository handles airport table operations
type AirportRepository struct {
	db *gorm.DB
}

// NewAirportRepository creates a new airport repository
func NewAirportRepository(db *gorm.DB) *AirportRepository {
	return &AirportRepository{db: db}
}

// FindByCode finds an airport whose IATA or ICAO code equals code
// (case-insensitive). An IATA match wins over an ICAO match.
func (r *AirportRepository) FindByCode(ctx context.Context, code string) (*gormModels.Airport, error) {
	var airport gormModels.Airport
	code = strings.ToUpper(code)

	err := r.db.WithContext(ctx).
		Where("UPPER(iata_code) = ? OR UPPER(icao_code) = ?", code, code).
		Order(clause.OrderBy{Expression: clause.Expr{
			SQL:                "CASE WHEN UPPER(iata_code) = ? THEN 0 ELSE 1 END",
			Vars:               []interface{}{code},
			WithoutParentheses: true,
		}}).
		First(&airport).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch airport by code: %w", err)
	}

	return &airport, nil
}

// FindByID retrieves an airport by its ID
func (r *AirportRepository) FindByID(ctx context.Context, id string) (*gormModels.Airport, error) {
	var airport gormModels.Airport

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&airport).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch airport: %w", err)
	}

	return &airport, nil
}

// FindAll returns every stored airport ordered by name
func (r *AirportRepository) FindAll(ctx context.Context) ([]gormModels.Airport, error) {
	var airports []gormModels.Airport

	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&airports).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch airports: %w", err)
	}

	return airports, nil
}

// Create inserts a new airport unconditionally
func (r *AirportRepository) Create(ctx context.Context, airport *gormModels.Airport) error {
	if err := r.db.WithContext(ctx).Create(airport).Error; err != nil {
		return fmt.Errorf("failed to create airport: %w", err)
	}
	return nil
}

// InsertOrFetch inserts airport unless a row with the same IATA or ICAO code
// already exists, then returns the stored row. created reports whether this
// call wrote it. Concurrent callers racing on the same code all get the one
// surviving row.
func (r *AirportRepository) InsertOrFetch(ctx context.Context, airport *gormModels.Airport) (*gormModels.Airport, bool, error) {
	if airport.IATACode == nil && airport.ICAOCode == nil {
		return nil, false, errors.New("airport needs an IATA or ICAO code to be keyed")
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(airport)

	if result.Error != nil {
		return nil, false, fmt.Errorf("failed to insert airport: %w", result.Error)
	}
	if result.RowsAffected == 1 {
		return airport, true, nil
	}

	stored, err := r.findByKey(ctx, airport)
	if err != nil {
		return nil, false, err
	}
	if stored == nil {
		return nil, false, errors.New("airport insert conflicted but no stored row matches its codes")
	}
	return stored, false, nil
}

func (r *AirportRepository) findByKey(ctx context.Context, airport *gormModels.Airport) (*gormModels.Airport, error) {
	for _, lookup := range []struct {
		column string
		value  *string
	}{
		{"iata_code", airport.IATACode},
		{"icao_code", airport.ICAOCode},
	} {
		if lookup.value == nil {
			continue
		}

		var stored gormModels.Airport
		err := r.db.WithContext(ctx).
			Where(lookup.column+" = ?", *lookup.value).
			First(&stored).Error
		if err == nil {
			return &stored, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to fetch airport by %s: %w", lookup.column, err)
		}
	}
	return nil, nil
}

// Update saves every column of an existing airport
func (r *AirportRepository) Update(ctx context.Context, airport *gormModels.Airport) error {
	if err := r.db.WithContext(ctx).Save(airport).Error; err != nil {
		return fmt.Errorf("failed to update airport: %w", err)
	}
	return nil
}

// BatchInsert inserts multiple airports, skipping any whose codes are
// already stored. Returns the number of rows written.
func (r *AirportRepository) BatchInsert(ctx context.Context, airports []gormModels.Airport) (int64, error) {
	if len(airports) == 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(airports, 100)

	if result.Error != nil {
		return 0, fmt.Errorf("failed to batch insert airports: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// DeleteUnreferenced deletes every airport no flight points at and returns
// how many were removed
func (r *AirportRepository) DeleteUnreferenced(ctx context.Context) (int64, error) {
	departures := r.db.Model(&gormModels.Flight{}).Select("departure_airport_id")
	arrivals := r.db.Model(&gormModels.Flight{}).Select("arrival_airport_id")

	result := r.db.WithContext(ctx).
		Where("id NOT IN (?) AND id NOT IN (?)", departures, arrivals).
		Delete(&gormModels.Airport{})

	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete airports: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// Count returns total number of airports
func (r *AirportRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&gormModels.Airport{}).Count(&count).Error
	return count, err
}

// CountriesOnFlights returns the distinct countries of airports that at
// least one flight departs from or arrives at, alphabetically
func (r *AirportRepository) CountriesOnFlights(ctx context.Context) ([]string, error) {
	departures := r.db.Model(&gormModels.Flight{}).Select("departure_airport_id")
	arrivals := r.db.Model(&gormModels.Flight{}).Select("arrival_airport_id")

	var countries []string
	err := r.db.WithContext(ctx).
		Model(&gormModels.Airport{}).
		Distinct("country").
		Where("id IN (?) OR id IN (?)", departures, arrivals).
		Order("country ASC").
		Pluck("country", &countries).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch visited countries: %w", err)
	}
	return countries, nil
}
