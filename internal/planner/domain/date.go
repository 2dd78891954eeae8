package domain

import (
	"time"

	"github.com/uniplan/uniplan/internal/platform/errors"
)

// DateLayout is the calendar-date form used for attendance dates and
// date-only due dates.
const DateLayout = "2006-01-02"

// DateTimeLayout is the display form for due dates that carry a time of day.
const DateTimeLayout = "2006-01-02 15:04"

// dueAtLayouts are the accepted ISO-8601 shapes for user-entered timestamps,
// most specific first.
var dueAtLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	DateLayout,
}

// ParseDueAt parses an ISO-8601 date or date-time string.
func ParseDueAt(value string) (time.Time, error) {
	for _, layout := range dueAtLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.WithMetadata(errors.CodeValidationBadDate,
		"unparseable date "+value,
		map[string]string{"Value": value})
}

// ParseDate parses a calendar date, tolerating a full timestamp by keeping
// only its date part.
func ParseDate(value string) (time.Time, error) {
	t, err := ParseDueAt(value)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
