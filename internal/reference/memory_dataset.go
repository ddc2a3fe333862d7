package reference

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jszwec/csvutil"
)

// MemoryDataset holds the whole catalogue in memory. It backs CSV-only
// deployments and tests.
type MemoryDataset struct {
	records []Record
}

func NewMemoryDataset(records []Record) *MemoryDataset {
	return &MemoryDataset{records: records}
}

// LoadCSV decodes a catalogue whose header row uses the column names
// icao_code, iata_code, name, city, country, lat_decimal, lon_decimal.
func LoadCSV(reader io.Reader) (*MemoryDataset, error) {
	decoder, err := csvutil.NewDecoder(csv.NewReader(reader))
	if err != nil {
		return nil, fmt.Errorf("failed to create CSV decoder for airports: %w", err)
	}

	var records []Record
	if err := decoder.Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode airport CSV data: %w", err)
	}

	return NewMemoryDataset(records), nil
}

// LoadCSVFile opens path and calls LoadCSV.
func LoadCSVFile(path string) (*MemoryDataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open airport CSV: %w", err)
	}
	defer f.Close()

	return LoadCSV(f)
}

func (d *MemoryDataset) QueryByCode(_ context.Context, code string) (*Record, error) {
	code = strings.ToUpper(code)

	var iataHit *Record
	for i := range d.records {
		rec := d.records[i]
		if strings.ToUpper(rec.ICAOCode) == code {
			return &rec, nil
		}
		if iataHit == nil && strings.ToUpper(rec.IATACode) == code {
			iataHit = &rec
		}
	}
	return iataHit, nil
}

func (d *MemoryDataset) QueryByText(_ context.Context, pattern string, limit int) ([]Record, error) {
	query := strings.ToUpper(pattern)

	matches := make([]Record, 0)
	for _, rec := range d.records {
		if Matches(rec, query) {
			matches = append(matches, rec)
		}
	}

	SortByRank(matches, query)
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

func (d *MemoryDataset) Ping(context.Context) error { return nil }

func (d *MemoryDataset) Close() error { return nil }

// Len returns the number of catalogue rows.
func (d *MemoryDataset) Len() int {
	return len(d.records)
}
