package services

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"wayfarer/tracker/internal/common"
	"wayfarer/tracker/internal/constants"
	"wayfarer/tracker/internal/db/repositories"
	"wayfarer/tracker/internal/metrics"
	gormModels "wayfarer/tracker/internal/models/gorm"
)

// CustomLocationName names airports created from raw coordinates
const CustomLocationName = "Custom Location"

// Point is a position in decimal degrees
type Point struct {
	Lat float64
	Lng float64
}

// CoordinateInput carries one endpoint either as a combined "lat,lng" pair
// (the format Google Maps copies) or as separate latitude and longitude
// strings. The combined form wins when both are given.
type CoordinateInput struct {
	Pair string
	Lat  string
	Lng  string
}

// ParseCoordinatePair parses "lat,lng". Whitespace around either part is
// ignored, as is anything after the second component (e.g. an altitude).
func ParseCoordinatePair(field, raw string) (Point, error) {
	parts := strings.Split(raw, ",")
	if len(parts) < 2 {
		return Point{}, invalid(field, `expected "lat,lng"`)
	}
	return parsePoint(field, parts[0], parts[1])
}

// ToPoint converts the input, or reports which field is missing or malformed.
func (in CoordinateInput) ToPoint(field string) (Point, error) {
	if strings.TrimSpace(in.Pair) != "" {
		return ParseCoordinatePair(field, in.Pair)
	}
	if strings.TrimSpace(in.Lat) == "" || strings.TrimSpace(in.Lng) == "" {
		return Point{}, invalid(field, "latitude and longitude are required")
	}
	return parsePoint(field, in.Lat, in.Lng)
}

func parsePoint(field, rawLat, rawLng string) (Point, error) {
	lat, err := parseDegrees(rawLat)
	if err != nil {
		return Point{}, invalid(field, fmt.Sprintf("invalid latitude %q", strings.TrimSpace(rawLat)))
	}
	lng, err := parseDegrees(rawLng)
	if err != nil {
		return Point{}, invalid(field, fmt.Sprintf("invalid longitude %q", strings.TrimSpace(rawLng)))
	}
	p := Point{Lat: lat, Lng: lng}
	if err := p.validate(field); err != nil {
		return Point{}, err
	}
	return p, nil
}

func (p Point) validate(field string) error {
	if p.Lat < -90 || p.Lat > 90 {
		return invalid(field, "latitude must be between -90 and 90")
	}
	if p.Lng < -180 || p.Lng > 180 {
		return invalid(field, "longitude must be between -180 and 180")
	}
	return nil
}

func parseDegrees(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("not a finite number")
	}
	return v, nil
}

// CoordinateResolver stores ad-hoc locations such as seaplane bases. It
// never consults the reference catalogue and never reuses a stored row.
type CoordinateResolver struct {
	airports  *repositories.AirportRepository
	timezones common.TimezoneFinder
	metrics   *metrics.MetricsRegistry
	now       func() time.Time
}

func NewCoordinateResolver(
	airports *repositories.AirportRepository,
	timezones common.TimezoneFinder,
	m *metrics.MetricsRegistry,
) *CoordinateResolver {
	return &CoordinateResolver{
		airports:  airports,
		timezones: timezones,
		metrics:   m,
		now:       time.Now,
	}
}

// Resolve creates one new airport per endpoint. Departure is written first
// and is not rolled back if the arrival insert fails.
func (r *CoordinateResolver) Resolve(ctx context.Context, dep, arr Point) (*gormModels.Airport, *gormModels.Airport, error) {
	depAirport, err := r.create(ctx, dep, constants.RoleDeparture)
	if err != nil {
		return nil, nil, err
	}
	arrAirport, err := r.create(ctx, arr, constants.RoleArrival)
	if err != nil {
		return nil, nil, err
	}
	return depAirport, arrAirport, nil
}

func (r *CoordinateResolver) create(ctx context.Context, p Point, role constants.EndpointRole) (*gormModels.Airport, error) {
	code := fmt.Sprintf("COORD_%d_%s", r.now().UnixMilli(), role)
	airport := &gormModels.Airport{
		IATACode:  &code,
		Name:      CustomLocationName,
		City:      CustomLocationName,
		Country:   common.UnknownPlace,
		Latitude:  p.Lat,
		Longitude: p.Lng,
		Timezone:  common.TimezoneAt(r.timezones, p.Lat, p.Lng),
	}

	if err := r.airports.Create(ctx, airport); err != nil {
		return nil, &StoreFault{Op: "create_airport", Err: err}
	}

	r.metrics.ObserveResolution("coordinates")
	return airport, nil
}
