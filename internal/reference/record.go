// Package reference reads the external, read-only catalogue of world
// airports. Nothing in this package writes to the catalogue except the
// offline CSV importer used to build it.
package reference

import (
	"context"
	"strings"
)

// NotApplicable is the catalogue's sentinel for a code an airport does not have.
const NotApplicable = "N/A"

// Record is one catalogue row. Country and City may arrive in any casing;
// Lookup normalizes them before they are handed to a caller.
type Record struct {
	ICAOCode  string  `db:"icao_code" csv:"icao_code" json:"icao_code"`
	IATACode  string  `db:"iata_code" csv:"iata_code" json:"iata_code"`
	Name      string  `db:"name" csv:"name" json:"name"`
	City      string  `db:"city" csv:"city" json:"city"`
	Country   string  `db:"country" csv:"country" json:"country"`
	Latitude  float64 `db:"lat_decimal" csv:"lat_decimal" json:"lat_decimal"`
	Longitude float64 `db:"lon_decimal" csv:"lon_decimal" json:"lon_decimal"`
}

// Dataset is the catalogue as seen by this service.
type Dataset interface {
	// QueryByCode returns the row whose ICAO or IATA code equals code, or nil.
	QueryByCode(ctx context.Context, code string) (*Record, error)
	// QueryByText returns up to limit rows whose codes, name or city contain
	// pattern, best matches first.
	QueryByText(ctx context.Context, pattern string, limit int) ([]Record, error)
	Ping(ctx context.Context) error
	Close() error
}

// IATA returns the IATA code, or false when it is empty or the sentinel.
func (r Record) IATA() (string, bool) {
	return usableCode(r.IATACode)
}

// ICAO returns the ICAO code, or false when it is empty or the sentinel.
func (r Record) ICAO() (string, bool) {
	return usableCode(r.ICAOCode)
}

func usableCode(code string) (string, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" || code == NotApplicable {
		return "", false
	}
	return code, true
}
