package services

import (
	"strings"
	"time"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// localNoon is used when a flight is recorded without a time of day so it
// still orders correctly by date.
const localNoon = "12:00"

// Layouts without an offset are read in the airport's own zone.
var localDateTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// schedule is a validated but not yet zoned departure or arrival time.
type schedule struct {
	instant *time.Time
	wall    time.Time // date and clock in UTC, re-zoned by in()
}

// parseSchedule validates one endpoint's date and optional time.
// clock may be HH:MM, a local date-time, or an RFC3339 instant; the last two
// make date optional.
func parseSchedule(dateField, date, clock string) (schedule, error) {
	date = strings.TrimSpace(date)
	clock = strings.TrimSpace(clock)

	if t, err := time.Parse(time.RFC3339, clock); err == nil {
		return schedule{instant: &t}, nil
	}
	for _, layout := range localDateTimeLayouts {
		if t, err := time.Parse(layout, clock); err == nil {
			return schedule{wall: t}, nil
		}
	}

	if date == "" {
		return schedule{}, invalid(dateField, "date is required")
	}
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return schedule{}, invalid(dateField, "date must be YYYY-MM-DD")
	}

	if clock == "" {
		clock = localNoon
	}
	tod, err := time.Parse(clockLayout, clock)
	if err != nil {
		return schedule{}, invalid(strings.Replace(dateField, "Date", "Time", 1), "time must be HH:MM")
	}

	return schedule{wall: time.Date(day.Year(), day.Month(), day.Day(), tod.Hour(), tod.Minute(), 0, 0, time.UTC)}, nil
}

// in resolves the schedule to a UTC instant, reading wall-clock values in
// loc. Stored times are always UTC so they order correctly as text.
func (s schedule) in(loc *time.Location) time.Time {
	if s.instant != nil {
		return s.instant.UTC()
	}
	w := s.wall
	return time.Date(w.Year(), w.Month(), w.Day(), w.Hour(), w.Minute(), w.Second(), 0, loc).UTC()
}
