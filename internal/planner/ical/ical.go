// Package ical renders the planner document as an iCalendar (RFC 5545) feed.
//
// Each schedule slot becomes one weekly-recurring VEVENT anchored on its
// first occurrence on or after the export date; each assignment with a
// parseable due time becomes a single VEVENT. The output imports cleanly
// into any standard calendar client.
package ical

import (
	"strconv"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/uniplan/uniplan/internal/planner/domain"
	"github.com/uniplan/uniplan/internal/planner/view"
)

// slotDuration is the assumed class length when an end time fails to parse.
const slotDuration = time.Hour

// byDayCodes maps planner weekday labels to RRULE BYDAY codes.
var byDayCodes = map[string]string{
	"Sun": "SU", "Mon": "MO", "Tue": "TU", "Wed": "WE",
	"Thu": "TH", "Fri": "FR", "Sat": "SA",
}

// Export serializes the document's schedule and dated assignments as an
// iCalendar feed. from anchors the first occurrence of each weekly slot.
func Export(doc domain.Document, from time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//uniplan//planner//EN")

	for _, subject := range doc.Subjects {
		for i, slot := range subject.Schedule {
			event := cal.AddEvent(subject.ID + "-" + strconv.Itoa(i) + "@uniplan")
			event.SetDtStampTime(from.UTC())
			event.SetSummary(subject.Name)
			if slot.Location != "" {
				event.SetLocation(slot.Location)
			}

			day := firstOccurrence(from, slot.Day)
			start, startErr := clockTime(day, slot.Start)
			end, endErr := clockTime(day, slot.End)
			if startErr != nil {
				// Unparseable times degrade to an all-day entry.
				event.SetAllDayStartAt(day)
				event.SetAllDayEndAt(day.AddDate(0, 0, 1))
			} else {
				if endErr != nil || !end.After(start) {
					end = start.Add(slotDuration)
				}
				event.SetStartAt(start)
				event.SetEndAt(end)
			}
			event.AddRrule("FREQ=WEEKLY;BYDAY=" + byDayCodes[slot.Day])
		}
	}

	for _, assignment := range doc.Assignments {
		if assignment.DueAt == nil {
			continue
		}
		due, err := domain.ParseDueAt(*assignment.DueAt)
		if err != nil {
			continue
		}
		event := cal.AddEvent(assignment.ID + "@uniplan")
		event.SetDtStampTime(from.UTC())
		event.SetSummary("Due: " + assignment.Title + " [" + view.SubjectName(doc, assignment.SubjectID) + "]")
		if assignment.Description != "" {
			event.SetDescription(assignment.Description)
		}
		if due.Hour() == 0 && due.Minute() == 0 && due.Second() == 0 {
			event.SetAllDayStartAt(due)
			event.SetAllDayEndAt(due.AddDate(0, 0, 1))
		} else {
			event.SetStartAt(due)
			event.SetEndAt(due.Add(time.Hour))
		}
	}

	return cal.Serialize()
}

// firstOccurrence returns the first calendar day on or after from that falls
// on the given weekday label.
func firstOccurrence(from time.Time, day string) time.Time {
	date := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		if domain.WeekdayLabel(date.Weekday()) == day {
			return date
		}
		date = date.AddDate(0, 0, 1)
	}
	return date
}

func clockTime(day time.Time, value string) (time.Time, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC), nil
}
