package reference

import (
	"context"
	"fmt"
	"io"

	"github.com/jmoiron/sqlx"

	"wayfarer/tracker/internal/logging"
)

const createCatalogueSQL = `
	CREATE TABLE IF NOT EXISTS airports (
		icao_code TEXT,
		iata_code TEXT,
		name TEXT,
		city TEXT,
		country TEXT,
		lat_decimal REAL,
		lon_decimal REAL
	)`

const insertCatalogueSQL = `
	INSERT INTO airports (icao_code, iata_code, name, city, country, lat_decimal, lon_decimal)
	VALUES (:icao_code, :iata_code, :name, :city, :country, :lat_decimal, :lon_decimal)`

// Importer builds a SQL catalogue from a CSV export. It is an offline tool;
// the running service only ever reads the catalogue.
type Importer struct {
	db *sqlx.DB
}

func NewImporter(db *sqlx.DB) *Importer {
	return &Importer{db: db}
}

// ImportCSV replaces the catalogue contents with the rows in reader and
// returns how many rows were written. The swap happens in one transaction.
func (im *Importer) ImportCSV(ctx context.Context, reader io.Reader) (int, error) {
	dataset, err := LoadCSV(reader)
	if err != nil {
		return 0, err
	}

	if _, err := im.db.ExecContext(ctx, createCatalogueSQL); err != nil {
		return 0, fmt.Errorf("create catalogue table: %w", err)
	}

	tx, err := im.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM airports"); err != nil {
		return 0, fmt.Errorf("clear catalogue: %w", err)
	}

	stmt, err := tx.PrepareNamedContext(ctx, insertCatalogueSQL)
	if err != nil {
		return 0, fmt.Errorf("prepare catalogue insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range dataset.records {
		if _, err := stmt.ExecContext(ctx, rec); err != nil {
			return 0, fmt.Errorf("insert catalogue row %q: %w", rec.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit import: %w", err)
	}

	logging.Info("Reference catalogue imported", "rows", len(dataset.records))
	return len(dataset.records), nil
}
