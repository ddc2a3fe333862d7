package reference

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wayfarer/tracker/internal/common"
	"wayfarer/tracker/internal/metrics"
)

func names(records []Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Name
	}
	return out
}

func TestSearchByTextRanksExactIATAFirstThenByName(t *testing.T) {
	lookup := NewLookup(loadCatalogue(t))

	results, err := lookup.SearchByText(context.Background(), "FRA")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Frankfurt am Main Airport",
		"Francisco Sarabia International Airport",
		"Frankfurt-Hahn Airport",
		"San Francisco International Airport",
	}, names(results))
}

func TestSearchByTextIsCaseInsensitiveAndTrimmed(t *testing.T) {
	lookup := NewLookup(loadCatalogue(t))

	results, err := lookup.SearchByText(context.Background(), "  klax ")
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "KLAX", results[0].ICAOCode)
}

func TestSearchByTextExactICAOOutranksExactIATA(t *testing.T) {
	ds := NewMemoryDataset([]Record{
		{ICAOCode: "ZZZZ", IATACode: "ABCD", Name: "Alpha"},
		{ICAOCode: "ABCD", IATACode: "N/A", Name: "Zulu"},
	})

	results, err := NewLookup(ds).SearchByText(context.Background(), "abcd")
	require.NoError(t, err)
	assert.Equal(t, []string{"Zulu", "Alpha"}, names(results))
}

func TestSearchByTextShortQueryNeverReachesDataset(t *testing.T) {
	ds := &countingDataset{Dataset: loadCatalogue(t)}
	lookup := NewLookup(ds)

	for _, q := range []string{"", "L", "  L  "} {
		results, err := lookup.SearchByText(context.Background(), q)
		require.NoError(t, err)
		assert.NotNil(t, results)
		assert.Empty(t, results)
	}
	assert.Zero(t, ds.byText)
}

func TestSearchByTextCapsResults(t *testing.T) {
	records := make([]Record, 0, 30)
	for i := 0; i < 30; i++ {
		records = append(records, Record{
			ICAOCode: fmt.Sprintf("X%03d", i),
			IATACode: NotApplicable,
			Name:     fmt.Sprintf("Testfield %02d", i),
			City:     "testville",
			Country:  "testland",
		})
	}

	results, err := NewLookup(NewMemoryDataset(records)).SearchByText(context.Background(), "testfield")
	require.NoError(t, err)
	assert.Len(t, results, MaxResults)
	assert.Equal(t, "Testfield 00", results[0].Name)
}

func TestSearchByTextNormalizesPlaces(t *testing.T) {
	results, err := NewLookup(loadCatalogue(t)).SearchByText(context.Background(), "VIE")
	require.NoError(t, err)
	require.NotEmpty(t, results)

	assert.Equal(t, "Vienna", results[0].City)
	assert.Equal(t, "Austria", results[0].Country)
}

func TestSearchByTextWrapsDatasetFailure(t *testing.T) {
	reg := metrics.NewMetricsRegistry(prometheus.NewRegistry())
	lookup := NewLookup(failingDataset{}, WithMetrics(reg))

	_, err := lookup.SearchByText(context.Background(), "LAX")

	var fault *LookupFault
	require.True(t, errors.As(err, &fault))
	assert.Equal(t, "by_text", fault.Op)
	assert.ErrorIs(t, err, errCatalogueDown)
	assert.Equal(t, 1.0, testutil.ToFloat64(reg.ReferenceFaultsTotal.WithLabelValues("by_text")))
}

func TestSearchByTextServesRepeatsFromCache(t *testing.T) {
	ds := &countingDataset{Dataset: loadCatalogue(t)}
	reg := metrics.NewMetricsRegistry(prometheus.NewRegistry())
	lookup := NewLookup(ds,
		WithCache(common.NewCacheService(time.Minute, time.Minute), time.Minute),
		WithMetrics(reg),
	)

	first, err := lookup.SearchByText(context.Background(), "lax")
	require.NoError(t, err)
	second, err := lookup.SearchByText(context.Background(), "LAX")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, ds.byText)
	assert.Equal(t, 1.0, testutil.ToFloat64(reg.SearchCacheTotal.WithLabelValues("hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(reg.SearchCacheTotal.WithLabelValues("miss")))
}

func TestFindByCodeMatchesEitherCode(t *testing.T) {
	lookup := NewLookup(loadCatalogue(t))

	byIATA, err := lookup.FindByCode(context.Background(), "lax")
	require.NoError(t, err)
	require.NotNil(t, byIATA)
	assert.Equal(t, "KLAX", byIATA.ICAOCode)
	assert.Equal(t, "Los Angeles", byIATA.City)
	assert.Equal(t, "United States", byIATA.Country)

	byICAO, err := lookup.FindByCode(context.Background(), "LOWW")
	require.NoError(t, err)
	require.NotNil(t, byICAO)
	assert.Equal(t, "VIE", byICAO.IATACode)
}

func TestFindByCodeMissAndSentinel(t *testing.T) {
	ds := &countingDataset{Dataset: loadCatalogue(t)}
	lookup := NewLookup(ds)

	rec, err := lookup.FindByCode(context.Background(), "ZZZ")
	require.NoError(t, err)
	assert.Nil(t, rec)

	rec, err = lookup.FindByCode(context.Background(), "n/a")
	require.NoError(t, err)
	assert.Nil(t, rec)
	assert.Equal(t, 1, ds.byCode)
}

func TestFindByCodeWrapsDatasetFailure(t *testing.T) {
	_, err := NewLookup(failingDataset{}).FindByCode(context.Background(), "LAX")

	var fault *LookupFault
	require.True(t, errors.As(err, &fault))
	assert.Equal(t, "by_code", fault.Op)
}

func TestRecordCodesSkipSentinel(t *testing.T) {
	rec := Record{ICAOCode: "LOAN", IATACode: "N/A"}

	_, ok := rec.IATA()
	assert.False(t, ok)

	icao, ok := rec.ICAO()
	assert.True(t, ok)
	assert.Equal(t, "LOAN", icao)
}
