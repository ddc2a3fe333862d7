package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"wayfarer/tracker/internal/common"
	"wayfarer/tracker/internal/constants"
	"wayfarer/tracker/internal/db/repositories"
	"wayfarer/tracker/internal/logging"
	"wayfarer/tracker/internal/metrics"
	gormModels "wayfarer/tracker/internal/models/gorm"
	"wayfarer/tracker/internal/reference"
)

// Outcome classifies how an input was turned into a stored airport
type Outcome string

const (
	OutcomeMatched              Outcome = "matched"
	OutcomeCreatedFromReference Outcome = "created-from-reference"
	OutcomeSynthesizedUnknown   Outcome = "synthesized-unknown"
)

// maxAssertedCodeLength is the longest unmatched input still kept as a
// user-asserted code rather than treated as free text.
const maxAssertedCodeLength = 4

// Resolution is a stored airport plus how it was obtained
type Resolution struct {
	Airport *gormModels.Airport
	Outcome Outcome
}

// AirportReference is the part of the reference lookup the resolver needs
type AirportReference interface {
	FindByCode(ctx context.Context, code string) (*reference.Record, error)
}

// AirportResolver turns user input into a stored airport, reusing existing
// rows, creating them from the reference catalogue, or synthesizing a
// placeholder when nothing matches.
type AirportResolver struct {
	airports  *repositories.AirportRepository
	reference AirportReference
	timezones common.TimezoneFinder
	metrics   *metrics.MetricsRegistry
	now       func() time.Time
}

func NewAirportResolver(
	airports *repositories.AirportRepository,
	ref AirportReference,
	timezones common.TimezoneFinder,
	m *metrics.MetricsRegistry,
) *AirportResolver {
	return &AirportResolver{
		airports:  airports,
		reference: ref,
		timezones: timezones,
		metrics:   m,
		now:       time.Now,
	}
}

// Resolve never fails for lack of data. Every non-empty input yields a
// stored airport; only store faults are returned.
func (r *AirportResolver) Resolve(ctx context.Context, input string, role constants.EndpointRole) (*Resolution, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return nil, invalid(roleField(role), "airport is required")
	}
	code := strings.ToUpper(raw)

	rec, err := r.reference.FindByCode(ctx, code)
	if err != nil {
		// A catalogue outage degrades match quality but never blocks a flight.
		logging.Warn("Reference lookup failed, resolving without it", "code", code, "error", err.Error())
		rec = nil
	}

	var res *Resolution
	if rec != nil {
		res, err = r.fromReference(ctx, *rec)
	} else {
		res, err = r.synthesize(ctx, raw, code, role)
	}
	if err != nil {
		return nil, err
	}

	r.metrics.ObserveResolution(string(res.Outcome))
	logging.Debug("Airport resolved",
		"input", raw,
		"role", string(role),
		"outcome", string(res.Outcome),
		"airport_id", res.Airport.ID,
	)
	return res, nil
}

func (r *AirportResolver) fromReference(ctx context.Context, rec reference.Record) (*Resolution, error) {
	airport := &gormModels.Airport{
		Name:      rec.Name,
		City:      common.NormalizeCityName(rec.City),
		Country:   common.NormalizeCountryName(rec.Country),
		Latitude:  rec.Latitude,
		Longitude: rec.Longitude,
	}
	if iata, ok := rec.IATA(); ok {
		airport.IATACode = &iata
	}
	if icao, ok := rec.ICAO(); ok {
		airport.ICAOCode = &icao
	}
	if airport.HasKnownPosition() {
		airport.Timezone = common.TimezoneAt(r.timezones, rec.Latitude, rec.Longitude)
	}

	stored, created, err := r.airports.InsertOrFetch(ctx, airport)
	if err != nil {
		return nil, &StoreFault{Op: "upsert_airport", Err: err}
	}

	outcome := OutcomeMatched
	if created {
		outcome = OutcomeCreatedFromReference
	}
	return &Resolution{Airport: stored, Outcome: outcome}, nil
}

func (r *AirportResolver) synthesize(ctx context.Context, raw, code string, role constants.EndpointRole) (*Resolution, error) {
	// Stored rows can carry codes the catalogue lacks, e.g. earlier
	// placeholders or manual corrections.
	existing, err := r.airports.FindByCode(ctx, code)
	if err != nil {
		return nil, &StoreFault{Op: "find_airport", Err: err}
	}
	if existing != nil {
		return &Resolution{Airport: existing, Outcome: OutcomeMatched}, nil
	}

	airport := &gormModels.Airport{
		Name:    raw,
		City:    common.UnknownPlace,
		Country: common.UnknownPlace,
	}

	if len([]rune(raw)) <= maxAssertedCodeLength {
		airport.IATACode = &code
		stored, created, err := r.airports.InsertOrFetch(ctx, airport)
		if err != nil {
			return nil, &StoreFault{Op: "upsert_airport", Err: err}
		}
		outcome := OutcomeSynthesizedUnknown
		if !created {
			outcome = OutcomeMatched
		}
		return &Resolution{Airport: stored, Outcome: outcome}, nil
	}

	placeholder := fmt.Sprintf("CUSTOM_%d_%s", r.now().UnixMilli(), role)
	airport.IATACode = &placeholder
	if err := r.airports.Create(ctx, airport); err != nil {
		return nil, &StoreFault{Op: "create_airport", Err: err}
	}
	return &Resolution{Airport: airport, Outcome: OutcomeSynthesizedUnknown}, nil
}

func roleField(role constants.EndpointRole) string {
	if role == constants.RoleArrival {
		return "arrivalAirportCode"
	}
	return "departureAirportCode"
}
