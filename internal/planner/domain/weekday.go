package domain

import (
	"strings"
	"time"
)

// Weekdays lists the seven valid day labels in Sunday-first order. The index
// of each label equals its time.Weekday value, which keeps the mapping
// locale-independent.
var Weekdays = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// WeekdayLabel returns the canonical label for a time.Weekday.
func WeekdayLabel(d time.Weekday) string {
	return Weekdays[d]
}

// IsWeekday reports whether day is one of the seven valid labels.
// Matching is case-sensitive.
func IsWeekday(day string) bool {
	for _, w := range Weekdays {
		if day == w {
			return true
		}
	}
	return false
}

// WeekdayList renders the valid labels for error messages.
func WeekdayList() string {
	return strings.Join(Weekdays[:], ", ")
}
