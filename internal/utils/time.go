package utils

import (
	"strings"
	"time"
)

const layoutDate = "2006-01-02"

// Today returns the current civil date at midnight UTC.
func Today() time.Time {
	return DateOnly(time.Now())
}

// DateOnly drops the clock part, keeping the calendar date as seen in t's location.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses YYYY-MM-DD into a civil date at midnight UTC.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.UTC)
}

// FormatDate formats time to YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(layoutDate)
}

const secondsPerDay = 24 * 60 * 60

// DaysBetween counts whole calendar days from a to b; negative when b is before a.
// It works on Unix seconds since time.Duration saturates after about 292 years.
func DaysBetween(a, b time.Time) int {
	return int((DateOnly(b).Unix() - DateOnly(a).Unix()) / secondsPerDay)
}
