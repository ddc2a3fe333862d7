package reference

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

// Columns are coalesced so rows with NULL codes or places still scan into
// plain strings.
const selectColumns = `
	COALESCE(icao_code, 'N/A') AS icao_code,
	COALESCE(iata_code, 'N/A') AS iata_code,
	COALESCE(name, '') AS name,
	COALESCE(city, '') AS city,
	COALESCE(country, '') AS country,
	COALESCE(lat_decimal, 0) AS lat_decimal,
	COALESCE(lon_decimal, 0) AS lon_decimal`

const queryByCodeSQL = `
	SELECT ` + selectColumns + `
	FROM airports
	WHERE UPPER(icao_code) = ? OR UPPER(iata_code) = ?
	ORDER BY CASE WHEN UPPER(icao_code) = ? THEN 0 ELSE 1 END
	LIMIT 1`

// '!' is the LIKE escape character because it needs no quoting on any of
// the supported drivers.
const queryByTextSQL = `
	SELECT ` + selectColumns + `
	FROM airports
	WHERE
		UPPER(icao_code) LIKE ? ESCAPE '!' OR
		UPPER(iata_code) LIKE ? ESCAPE '!' OR
		UPPER(name) LIKE ? ESCAPE '!' OR
		UPPER(city) LIKE ? ESCAPE '!'
	ORDER BY
		CASE
			WHEN UPPER(icao_code) = ? THEN 1
			WHEN UPPER(iata_code) = ? THEN 2
			WHEN UPPER(icao_code) LIKE ? ESCAPE '!' THEN 3
			WHEN UPPER(iata_code) LIKE ? ESCAPE '!' THEN 4
			ELSE 5
		END,
		name
	LIMIT ?`

// SQLDataset queries a catalogue stored in any sqlx-supported database with
// an `airports` table (sqlite3, postgres or mysql).
type SQLDataset struct {
	db *sqlx.DB
}

// NewSQLDataset wraps an open connection. The dataset owns it from here on.
func NewSQLDataset(db *sqlx.DB) *SQLDataset {
	return &SQLDataset{db: db}
}

// QueryByCode finds an airport by exact ICAO or IATA code (case-insensitive)
func (d *SQLDataset) QueryByCode(ctx context.Context, code string) (*Record, error) {
	var rec Record
	code = strings.ToUpper(code)

	err := d.db.GetContext(ctx, &rec, d.db.Rebind(queryByCodeSQL), code, code, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query airport by code: %w", err)
	}

	return &rec, nil
}

// QueryByText runs a ranked substring search over codes, name and city
func (d *SQLDataset) QueryByText(ctx context.Context, pattern string, limit int) ([]Record, error) {
	term := strings.ToUpper(pattern)
	escaped := escapeLike(term)
	contains := "%" + escaped + "%"
	prefix := escaped + "%"

	var records []Record
	err := d.db.SelectContext(ctx, &records, d.db.Rebind(queryByTextSQL),
		contains, // icao_code LIKE
		contains, // iata_code LIKE
		contains, // name LIKE
		contains, // city LIKE
		term,     // exact icao
		term,     // exact iata
		prefix,   // icao prefix
		prefix,   // iata prefix
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("search airports: %w", err)
	}

	return records, nil
}

func (d *SQLDataset) Ping(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

func (d *SQLDataset) Close() error {
	return d.db.Close()
}

func escapeLike(s string) string {
	r := strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")
	return r.Replace(s)
}
