package reference

import (
	"context"
	"errors"
	"strings"
	"testing"
)

const catalogueCSV = `icao_code,iata_code,name,city,country,lat_decimal,lon_decimal
EDDF,FRA,Frankfurt am Main Airport,FRANKFURT,GERMANY,50.0333,8.5706
EDFH,HHN,Frankfurt-Hahn Airport,HAHN,GERMANY,49.9487,7.2639
MMTC,TRC,Francisco Sarabia International Airport,TORREON,MEXICO,25.5683,-103.4106
KSFO,SFO,San Francisco International Airport,SAN FRANCISCO,UNITED STATES,37.6189,-122.3750
KLAX,LAX,Los Angeles International Airport,LOS ANGELES,UNITED STATES,33.9425,-118.4081
KJFK,JFK,John F Kennedy International Airport,NEW YORK,UNITED STATES,40.6413,-73.7781
LOWW,VIE,Vienna International Airport,VIENNA,AUSTRIA,48.1103,16.5697
LOAN,N/A,Wiener Neustadt Ost,WIENER NEUSTADT,AUSTRIA,47.8433,16.2600
`

func loadCatalogue(t *testing.T) *MemoryDataset {
	t.Helper()
	ds, err := LoadCSV(strings.NewReader(catalogueCSV))
	if err != nil {
		t.Fatalf("load catalogue: %v", err)
	}
	return ds
}

// countingDataset records how often the wrapped dataset is hit.
type countingDataset struct {
	Dataset
	byCode int
	byText int
}

func (c *countingDataset) QueryByCode(ctx context.Context, code string) (*Record, error) {
	c.byCode++
	return c.Dataset.QueryByCode(ctx, code)
}

func (c *countingDataset) QueryByText(ctx context.Context, pattern string, limit int) ([]Record, error) {
	c.byText++
	return c.Dataset.QueryByText(ctx, pattern, limit)
}

var errCatalogueDown = errors.New("catalogue unavailable")

type failingDataset struct{}

func (failingDataset) QueryByCode(context.Context, string) (*Record, error) {
	return nil, errCatalogueDown
}

func (failingDataset) QueryByText(context.Context, string, int) ([]Record, error) {
	return nil, errCatalogueDown
}

func (failingDataset) Ping(context.Context) error { return errCatalogueDown }

func (failingDataset) Close() error { return nil }
