// Package view computes read-only projections over a planner document.
//
// Every function is pure: it takes the current document plus any reference
// time as arguments and never mutates shared state, so front ends can call
// them freely between a load and its matching save.
package view

import (
	"sort"
	"time"

	"github.com/uniplan/uniplan/internal/planner/domain"
)

// AlertThreshold is the attendance percentage below which a subject is flagged.
const AlertThreshold = 75.0

// Class pairs a schedule slot with its owning subject.
type Class struct {
	Subject domain.Subject
	Slot    domain.ScheduleSlot
}

// Alert flags one subject whose attendance fell below the threshold.
type Alert struct {
	Subject domain.Subject
	Percent float64
}

// DueAssignment pairs an assignment with its parsed due time.
type DueAssignment struct {
	Assignment domain.Assignment
	DueAt      time.Time
}

// TodaysClasses returns every slot scheduled on today's weekday, in subject
// order then slot order.
func TodaysClasses(doc domain.Document, today time.Time) []Class {
	label := domain.WeekdayLabel(today.Weekday())
	var classes []Class
	for _, subject := range doc.Subjects {
		for _, slot := range subject.Schedule {
			if slot.Day == label {
				classes = append(classes, Class{Subject: subject, Slot: slot})
			}
		}
	}
	return classes
}

// AttendancePercent computes the share of present records for the subject.
// A subject with no records counts as 100%.
func AttendancePercent(doc domain.Document, subjectID string) float64 {
	total := 0
	present := 0
	for _, r := range doc.Attendance {
		if r.SubjectID != subjectID {
			continue
		}
		total++
		if r.Present {
			present++
		}
	}
	if total == 0 {
		return 100.0
	}
	return 100.0 * float64(present) / float64(total)
}

// AttendanceAlerts lists subjects below the alert threshold, in subject order.
func AttendanceAlerts(doc domain.Document) []Alert {
	var alerts []Alert
	for _, subject := range doc.Subjects {
		pct := AttendancePercent(doc, subject.ID)
		if pct < AlertThreshold {
			alerts = append(alerts, Alert{Subject: subject, Percent: pct})
		}
	}
	return alerts
}

// UpcomingAssignments returns assignments whose due time falls inside
// [now, now+windowDays], ascending by due time. Ties keep insertion order.
// Assignments without a parseable due time are skipped.
func UpcomingAssignments(doc domain.Document, now time.Time, windowDays int) []DueAssignment {
	windowEnd := now.AddDate(0, 0, windowDays)
	var upcoming []DueAssignment
	for _, a := range doc.Assignments {
		if a.DueAt == nil {
			continue
		}
		due, err := domain.ParseDueAt(*a.DueAt)
		if err != nil {
			continue
		}
		if due.Before(now) || due.After(windowEnd) {
			continue
		}
		upcoming = append(upcoming, DueAssignment{Assignment: a, DueAt: due})
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].DueAt.Before(upcoming[j].DueAt)
	})
	return upcoming
}

// FormatDueDate renders a stored due value for display: "N/A" when absent, a
// date when the time of day is midnight, a date plus time otherwise. Values
// that fail to parse come back verbatim.
func FormatDueDate(value *string) string {
	if value == nil || *value == "" {
		return "N/A"
	}
	t, err := domain.ParseDueAt(*value)
	if err != nil {
		return *value
	}
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
		return t.Format(domain.DateLayout)
	}
	return t.Format(domain.DateTimeLayout)
}

// SubjectName resolves an optional subject reference to a display name.
func SubjectName(doc domain.Document, subjectID *string) string {
	if subjectID != nil {
		if subject, ok := doc.SubjectByID(*subjectID); ok {
			return subject.Name
		}
	}
	return "No subject"
}
