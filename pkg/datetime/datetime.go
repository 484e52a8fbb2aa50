// Package datetime renders an instant into the human-readable projections
// the clinic UI shows next to appointments. All four projections derive from
// the same instant and timezone, so date and time strings can never disagree
// across a day boundary.
package datetime

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrInvalidDate is returned when the input cannot be parsed as a date.
	ErrInvalidDate = errors.New("invalid date value")
	// ErrInvalidTimeZone is returned for an unknown IANA timezone name.
	ErrInvalidTimeZone = errors.New("invalid time zone")
)

// Formats holds the four projections of a single instant.
type Formats struct {
	DateTime string // "Jan 2, 2006, 3:04 PM"
	DateDay  string // "Mon, 01/02/2006"
	DateOnly string // "Jan 2, 2006"
	TimeOnly string // "3:04 PM"
}

// acceptedLayouts are tried in order when parsing a raw date string.
var acceptedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Parse converts an ISO-like date string into an instant.
func Parse(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, ErrInvalidDate
	}
	for _, layout := range acceptedLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// Format renders the instant in the given IANA timezone. An empty timeZone
// falls back to the process-local zone.
func Format(t time.Time, timeZone string) (Formats, error) {
	loc := time.Local
	if timeZone != "" {
		var err error
		loc, err = time.LoadLocation(timeZone)
		if err != nil {
			return Formats{}, ErrInvalidTimeZone
		}
	}

	local := t.In(loc)
	return Formats{
		DateTime: local.Format("Jan 2, 2006, 3:04 PM"),
		DateDay:  local.Format("Mon, 01/02/2006"),
		DateOnly: local.Format("Jan 2, 2006"),
		TimeOnly: local.Format("3:04 PM"),
	}, nil
}

// FormatString parses value and renders it in the given timezone.
func FormatString(value string, timeZone string) (Formats, error) {
	t, err := Parse(value)
	if err != nil {
		return Formats{}, err
	}
	return Format(t, timeZone)
}
