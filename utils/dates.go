package utils

import (
	"errors"
	"time"
)

// Calendar dates are normalized to midnight UTC everywhere: values are
// truncated before they are stored and day-equality is computed over the
// half-open window [day, day+24h). Clients send dates as "2006-01-02",
// which already parses to midnight UTC, so the wire format and the
// canonical form coincide.

var ErrInvalidDate = errors.New("invalid date")

// DayOf truncates t to midnight UTC.
func DayOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DayRange returns the [start, end) window covering the calendar day of t.
func DayRange(t time.Time) (time.Time, time.Time) {
	start := DayOf(t)
	return start, start.AddDate(0, 0, 1)
}

// ParseDay accepts "2006-01-02" or a full RFC 3339 timestamp and returns
// the normalized day.
func ParseDay(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return DayOf(t), nil
	}
	return time.Time{}, ErrInvalidDate
}
