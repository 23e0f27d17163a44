// Package dates provides local-time calendar helpers shared by the ledger,
// the daily quest selector and the history rollups. All bucketing is done in
// the local time zone at day granularity.
package dates

import (
	"fmt"
	"time"
)

// DayLayout is the calendar-day key format (YYYY-MM-DD).
const DayLayout = "2006-01-02"

// DayKey returns the local calendar-day key for t.
func DayKey(t time.Time) string {
	return t.Local().Format(DayLayout)
}

// ParseDay parses a YYYY-MM-DD day key in the local time zone.
func ParseDay(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DayLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// SameDay reports whether a and b fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	a, b = a.Local(), b.Local()
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// SameMonth reports whether a and b fall in the same local calendar month.
func SameMonth(a, b time.Time) bool {
	a, b = a.Local(), b.Local()
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()
}
