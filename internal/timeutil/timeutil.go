// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"time"

	dps "github.com/markusmobius/go-dateparser"
)

const secondsInAMinute = 60

// keyLayout is fixed width so that keys sort in time order.
const keyLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SecsToMinsAndSecs expresses a seconds value in minutes and seconds. Hours
// are folded into the minutes.
func SecsToMinsAndSecs(secs uint64) (mins, remainder uint64) {
	return secs / secondsInAMinute, secs % secondsInAMinute
}

// FormatClock renders a number of seconds as MM:SS.
func FormatClock(secs uint64) string {
	m, s := SecsToMinsAndSecs(secs)

	return fmt.Sprintf("%02d:%02d", m, s)
}

// FromStr parses a human readable date such as "2 days ago" or
// "2024-03-01 14:00" relative to now.
func FromStr(s string, now time.Time) (time.Time, error) {
	cfg := &dps.Configuration{
		CurrentTime: now,
	}

	dt, err := dps.Parse(cfg, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse %q as a date: %w", s, err)
	}

	return dt.Time, nil
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ToKey converts a time value to a database key for Bolt. Keys are always in
// UTC.
func ToKey(t time.Time) []byte {
	return []byte(t.UTC().Format(keyLayout))
}
