// Package dateutil handles the server date formats used across the
// Open edX platform APIs and the calendar-day comparison semantics the
// course dates screen relies on.
//
// # Server dates
//
// The platform emits ISO 8601 timestamps in UTC, normally with whole
// seconds. Some endpoints return fractional microseconds instead:
//
//	2023-05-15T09:30:00Z
//	2023-05-15T09:30:00.123456Z
//
// ParseServerDate accepts both; FormatServerDate always emits the first
// form.
//
// # Day granularity
//
// Course date comparisons intentionally ignore the time of day: two
// timestamps on the same calendar day are considered equal. CompareDays
// implements that ordering and is what the course date classifier uses.
package dateutil

import (
	"fmt"
	"strings"
	"time"
)

// ServerDateFormat is the standard timestamp layout used across the
// platform. All emitted dates use this form.
const ServerDateFormat = "2006-01-02T15:04:05Z"

// serverDateFormatMicroseconds covers APIs that return fractional
// microseconds instead of whole seconds.
const serverDateFormatMicroseconds = "2006-01-02T15:04:05.000000Z"

// DayOrder is the result of a calendar-day comparison.
type DayOrder int

const (
	// DayBefore means the first date falls on an earlier calendar day.
	DayBefore DayOrder = iota - 1

	// SameDay means both dates fall on the same calendar day,
	// regardless of time of day.
	SameDay

	// DayAfter means the first date falls on a later calendar day.
	DayAfter
)

// ParseServerDate converts a server timestamp string into a time.Time.
//
// Only UTC timestamps (trailing 'Z') are accepted. The boolean result
// is false for empty strings and anything that does not match one of
// the two known server layouts.
func ParseServerDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	layouts := []string{ServerDateFormat, serverDateFormatMicroseconds}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// FormatServerDate renders a date in the standard server layout,
// always UTC with whole-second precision.
func FormatServerDate(t time.Time) string {
	return t.UTC().Format(ServerDateFormat)
}

// StripTime truncates a date to midnight of its calendar day, keeping
// the location it was expressed in.
func StripTime(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// CompareDays orders two dates at calendar-day granularity. Each date
// is read in its own location, so times on the same calendar day always
// compare as SameDay no matter their time of day.
func CompareDays(a, b time.Time) DayOrder {
	a = StripTime(a)
	b = StripTime(b)

	switch {
	case a.Before(b):
		return DayBefore
	case a.After(b):
		return DayAfter
	default:
		return SameDay
	}
}

// FormatVideoDuration formats a duration in seconds for display as a
// video length like 23:35 or 01:14:33. The hours component is omitted
// entirely when zero.
func FormatVideoDuration(totalSeconds float64) string {
	seconds := int(totalSeconds) % 60
	minutes := (int(totalSeconds) / 60) % 60
	hours := int(totalSeconds) / 3600
	if hours == 0 {
		return fmt.Sprintf("%02d:%02d", minutes, seconds)
	}

	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// FormatWeekDayMonthDateYear renders a date like "Monday, May 15, 2023".
// Used for the display text on course date blocks.
func FormatWeekDayMonthDateYear(t time.Time) string {
	return t.Format("Monday, January 2, 2006")
}

// FormatMonthDay renders a date like "APRIL 11".
func FormatMonthDay(t time.Time) string {
	return strings.ToUpper(t.Format("January 02"))
}

// FormatMonthDayYear renders a date like "April 11, 2013".
func FormatMonthDayYear(t time.Time) string {
	return t.Format("January 02, 2006")
}

// FormatTimeOrDate renders the time of day when the date falls on the
// reference day, and a short date otherwise: "14:30" or "APR 11, 2013".
func FormatTimeOrDate(t, reference time.Time) string {
	if CompareDays(reference, t) == SameDay {
		return t.Format("15:04")
	}
	return strings.ToUpper(t.Format("Jan 02, 2006"))
}
