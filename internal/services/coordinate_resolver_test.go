package services

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wayfarer/tracker/internal/db/repositories"
)

var coordCode = regexp.MustCompile(`^COORD_\d+_(DEP|ARR)$`)

func TestParseCoordinatePair(t *testing.T) {
	p, err := ParseCoordinatePair("departureCoordinates", " 33.9425, -118.4081 ")
	require.NoError(t, err)
	assert.Equal(t, 33.9425, p.Lat)
	assert.Equal(t, -118.4081, p.Lng)
}

func TestParseCoordinatePairIgnoresTrailingComponents(t *testing.T) {
	p, err := ParseCoordinatePair("arrivalCoordinates", "47.4647,8.5492,432")
	require.NoError(t, err)
	assert.Equal(t, 47.4647, p.Lat)
	assert.Equal(t, 8.5492, p.Lng)

	_, err = ParseCoordinatePair("arrivalCoordinates", "47.4647,east,432")
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestParseCoordinatePairRejectsMalformedInput(t *testing.T) {
	cases := []string{
		"",
		"33.9425",
		"33.9425,",
		"north,west",
		"NaN,1",
		"91,0",
		"0,181",
	}

	for _, raw := range cases {
		_, err := ParseCoordinatePair("departureCoordinates", raw)

		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("ParseCoordinatePair(%q): expected ValidationError, got %v", raw, err)
			continue
		}
		assert.Equal(t, "departureCoordinates", verr.Field)
	}
}

func TestCoordinateInputUsesSeparateFieldsWhenNoPair(t *testing.T) {
	p, err := CoordinateInput{Lat: "40.6413", Lng: "-73.7781"}.ToPoint("arrivalCoordinates")
	require.NoError(t, err)
	assert.Equal(t, Point{Lat: 40.6413, Lng: -73.7781}, p)

	_, err = CoordinateInput{Lat: "40.6413"}.ToPoint("arrivalCoordinates")
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestCoordinateResolver_AlwaysCreatesTwoAirports(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	resolver := NewCoordinateResolver(repositories.NewAirportRepository(db), fixedZone("America/New_York"), nil)
	resolver.now = func() time.Time { return time.UnixMilli(1718000000456) }

	dep := Point{Lat: 33.9425, Lng: -118.4081}
	arr := Point{Lat: 40.6413, Lng: -73.7781}

	depAirport, arrAirport, err := resolver.Resolve(ctx, dep, arr)
	require.NoError(t, err)

	assert.Regexp(t, coordCode, *depAirport.IATACode)
	assert.Regexp(t, coordCode, *arrAirport.IATACode)
	assert.Equal(t, "COORD_1718000000456_DEP", depAirport.DisplayCode())
	assert.Equal(t, "COORD_1718000000456_ARR", arrAirport.DisplayCode())
	assert.Equal(t, 33.9425, depAirport.Latitude)
	assert.Equal(t, -118.4081, depAirport.Longitude)
	assert.Equal(t, 40.6413, arrAirport.Latitude)
	assert.Equal(t, -73.7781, arrAirport.Longitude)
	assert.Equal(t, CustomLocationName, depAirport.Name)
	assert.Equal(t, CustomLocationName, depAirport.City)
	assert.Equal(t, "Unknown", depAirport.Country)
	assert.Equal(t, "America/New_York", arrAirport.Timezone)

	// A later submission of the same points is a fresh location.
	resolver.now = func() time.Time { return time.UnixMilli(1718000000999) }
	_, _, err = resolver.Resolve(ctx, dep, arr)
	require.NoError(t, err)

	count, err := repositories.NewAirportRepository(db).Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 4, count)
}
