// Package datekey produces the canonical calendar-day identifiers used as
// keys for all day-indexed habit records. Keys are local-calendar
// YYYY-MM-DD strings; the fixed-width zero-padded layout makes
// lexicographic order identical to chronological order, so "is this day
// before that one" is a plain string comparison.
package datekey

import (
	"fmt"
	"time"
)

const Layout = "2006-01-02"

// Format returns the date key for t's local calendar day. Two times on
// the same local day produce identical keys regardless of time of day.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Today returns the key for the current local day.
func Today() string {
	return Format(time.Now())
}

// Yesterday returns the key for the local day before today.
func Yesterday() string {
	return Format(time.Now().AddDate(0, 0, -1))
}

// Parse converts a date key back to local midnight of that day.
func Parse(key string) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date key %q: %w", key, err)
	}
	return t, nil
}

// StartOfDay normalizes t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
