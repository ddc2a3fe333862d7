package reference

import (
	"sort"
	"strings"
)

// Match tiers, best first. Within a tier records sort by name.
const (
	TierExactICAO = iota + 1
	TierExactIATA
	TierPrefixICAO
	TierPrefixIATA
	TierOther
)

// MatchTier places rec on the ranking ladder for an upper-cased query.
func MatchTier(rec Record, query string) int {
	icao := strings.ToUpper(rec.ICAOCode)
	iata := strings.ToUpper(rec.IATACode)

	switch {
	case icao == query:
		return TierExactICAO
	case iata == query:
		return TierExactIATA
	case strings.HasPrefix(icao, query):
		return TierPrefixICAO
	case strings.HasPrefix(iata, query):
		return TierPrefixIATA
	default:
		return TierOther
	}
}

// Matches reports whether rec contains query in any searchable field.
func Matches(rec Record, query string) bool {
	return strings.Contains(strings.ToUpper(rec.ICAOCode), query) ||
		strings.Contains(strings.ToUpper(rec.IATACode), query) ||
		strings.Contains(strings.ToUpper(rec.Name), query) ||
		strings.Contains(strings.ToUpper(rec.City), query)
}

// SortByRank orders records by tier, then name. The sort is stable so equal
// names keep the dataset's order.
func SortByRank(records []Record, query string) {
	sort.SliceStable(records, func(i, j int) bool {
		ti, tj := MatchTier(records[i], query), MatchTier(records[j], query)
		if ti != tj {
			return ti < tj
		}
		return records[i].Name < records[j].Name
	})
}
