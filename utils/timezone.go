package utils

import (
	"time"

	"github.com/Merchantry/backoffice/config"
)

// All persisted timestamps are UTC; display and input use the single
// store timezone from config. Accepted input layouts, tried in order.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func storeLocation() *time.Location {
	if config.StoreLocation != nil {
		return config.StoreLocation
	}
	return time.UTC
}

func parseInLocation(value string, loc *time.Location) *time.Time {
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return &t
		}
	}
	return nil
}

// ToLocal parses a UTC timestamp string and returns it in the store
// timezone. Returns nil on unparseable input, never panics.
func ToLocal(value string) *time.Time {
	t := parseInLocation(value, time.UTC)
	if t == nil {
		return nil
	}
	local := t.In(storeLocation())
	return &local
}

// ToUTC parses a store-local timestamp string and returns it in UTC.
// Returns nil on unparseable input, never panics.
func ToUTC(value string) *time.Time {
	t := parseInLocation(value, storeLocation())
	if t == nil {
		return nil
	}
	utc := t.UTC()
	return &utc
}

// StartOfLocalDay snaps t to 00:00:00 of its day in the store timezone
// and returns the instant in UTC.
func StartOfLocalDay(t time.Time) time.Time {
	loc := storeLocation()
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc).UTC()
}

// EndOfLocalDay snaps t to the last nanosecond of its day in the store
// timezone and returns the instant in UTC.
func EndOfLocalDay(t time.Time) time.Time {
	loc := storeLocation()
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 23, 59, 59, 999999999, loc).UTC()
}

// DayRangeToUTC converts a user-supplied date range to UTC instants,
// snapping the start to local day-start and the end to local day-end so
// the range is inclusive of both boundary days regardless of the time
// component supplied. Either bound may be nil when its input does not
// parse or is empty.
func DayRangeToUTC(start, end string) (*time.Time, *time.Time) {
	var from, to *time.Time
	if start != "" {
		if t := ToUTC(start); t != nil {
			snapped := StartOfLocalDay(*t)
			from = &snapped
		}
	}
	if end != "" {
		if t := ToUTC(end); t != nil {
			snapped := EndOfLocalDay(*t)
			to = &snapped
		}
	}
	return from, to
}
