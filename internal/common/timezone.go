package common

import (
	"fmt"
	"sync"
	"time"

	"github.com/ringsaturn/tzf"
)

// TimezoneFinder maps a coordinate to an IANA time zone name
type TimezoneFinder interface {
	GetTimezoneName(lng float64, lat float64) string
}

var (
	defaultFinder     TimezoneFinder
	defaultFinderErr  error
	defaultFinderOnce sync.Once
)

// DefaultTimezoneFinder loads the bundled boundary data once per process.
func DefaultTimezoneFinder() (TimezoneFinder, error) {
	defaultFinderOnce.Do(func() {
		f, err := tzf.NewDefaultFinder()
		if err != nil {
			defaultFinderErr = fmt.Errorf("load time zone boundaries: %w", err)
			return
		}
		defaultFinder = f
	})
	return defaultFinder, defaultFinderErr
}

// TimezoneAt returns the zone name for lat/lng, or "" when finder is nil or
// the point falls outside every zone.
func TimezoneAt(finder TimezoneFinder, lat, lng float64) string {
	if finder == nil {
		return ""
	}
	return finder.GetTimezoneName(lng, lat)
}

// LoadLocation resolves a zone name, falling back to fallback (then
// time.Local) when the name is empty or unknown.
func LoadLocation(name string, fallback *time.Location) *time.Location {
	if name != "" {
		if loc, err := time.LoadLocation(name); err == nil {
			return loc
		}
	}
	if fallback != nil {
		return fallback
	}
	return time.Local
}
