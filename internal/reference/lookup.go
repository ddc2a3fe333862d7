package reference

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"wayfarer/tracker/internal/common"
	"wayfarer/tracker/internal/constants"
	"wayfarer/tracker/internal/logging"
	"wayfarer/tracker/internal/metrics"
)

const (
	// MinQueryLength is the shortest trimmed query that reaches the dataset.
	MinQueryLength = 2
	// MaxResults caps every search response.
	MaxResults = 20
)

// Lookup answers code and free-text queries against a Dataset. Every record
// it returns has City and Country normalized.
type Lookup struct {
	dataset Dataset
	cache   common.CacheInterface
	ttl     time.Duration
	metrics *metrics.MetricsRegistry
	group   singleflight.Group
}

// LookupOption configures optional collaborators of a Lookup.
type LookupOption func(*Lookup)

// WithCache memoizes search results for ttl.
func WithCache(cache common.CacheInterface, ttl time.Duration) LookupOption {
	return func(l *Lookup) {
		l.cache = cache
		l.ttl = ttl
	}
}

// WithMetrics records faults and cache hits.
func WithMetrics(m *metrics.MetricsRegistry) LookupOption {
	return func(l *Lookup) {
		l.metrics = m
	}
}

func NewLookup(dataset Dataset, opts ...LookupOption) *Lookup {
	l := &Lookup{dataset: dataset}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// FindByCode returns the record whose ICAO or IATA code matches code,
// comparing case-insensitively. A nil record with a nil error means no match.
func (l *Lookup) FindByCode(ctx context.Context, code string) (*Record, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" || code == NotApplicable {
		return nil, nil
	}

	rec, err := l.dataset.QueryByCode(ctx, code)
	if err != nil {
		l.metrics.ObserveReferenceFault("by_code")
		return nil, &LookupFault{Op: "by_code", Err: err}
	}
	if rec == nil {
		return nil, nil
	}

	normalized := normalizeRecord(*rec)
	return &normalized, nil
}

// SearchByText returns at most MaxResults records matching query, ranked by
// exact ICAO, exact IATA, ICAO prefix, IATA prefix, then anything else,
// alphabetical by name within a tier. Queries shorter than MinQueryLength
// return an empty list without touching the dataset.
func (l *Lookup) SearchByText(ctx context.Context, query string) ([]Record, error) {
	term := strings.ToUpper(strings.TrimSpace(query))
	if len([]rune(term)) < MinQueryLength {
		return []Record{}, nil
	}

	cacheKey := string(constants.CachePrefixAirportSearch) + term
	if l.cache != nil {
		var cached []Record
		if l.cache.Get(cacheKey, &cached) {
			l.metrics.ObserveSearchCache(true)
			return cached, nil
		}
		l.metrics.ObserveSearchCache(false)
	}

	v, err, _ := l.group.Do(cacheKey, func() (interface{}, error) {
		return l.searchDataset(ctx, term)
	})
	if err != nil {
		return nil, err
	}

	results := v.([]Record)
	if l.cache != nil {
		l.cache.Set(cacheKey, results, l.ttl)
	}

	// Callers sharing a singleflight result must not alias its backing array.
	out := make([]Record, len(results))
	copy(out, results)
	return out, nil
}

func (l *Lookup) searchDataset(ctx context.Context, term string) ([]Record, error) {
	rows, err := l.dataset.QueryByText(ctx, term, MaxResults)
	if err != nil {
		l.metrics.ObserveReferenceFault("by_text")
		logging.Warn("Reference search failed", "query", term, "error", err.Error())
		return nil, &LookupFault{Op: "by_text", Err: err}
	}

	SortByRank(rows, term)
	if len(rows) > MaxResults {
		rows = rows[:MaxResults]
	}

	results := make([]Record, 0, len(rows))
	for _, row := range rows {
		results = append(results, normalizeRecord(row))
	}
	return results, nil
}

// Ping reports whether the dataset is reachable.
func (l *Lookup) Ping(ctx context.Context) error {
	return l.dataset.Ping(ctx)
}

func normalizeRecord(rec Record) Record {
	rec.City = common.NormalizeCityName(rec.City)
	rec.Country = common.NormalizeCountryName(rec.Country)
	return rec
}
