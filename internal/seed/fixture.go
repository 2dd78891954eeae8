// Package seed provides demo fixture data for the planner.
package seed

import (
	"time"

	"github.com/uniplan/uniplan/internal/planner/domain"
)

// DemoDocument builds a small, fully formed document for first-run demos.
// Installing it replaces the current document. The nil defaults for now and
// idGenerator are the real clock and domain.NewID.
func DemoDocument(now func() time.Time, idGenerator func() string) domain.Document {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = domain.NewID
	}

	createdAt := now().UTC()
	doc := domain.Document{
		Subjects: []domain.Subject{
			{
				ID:   idGenerator(),
				Name: "Engineering Mechanics",
				Code: "ME101",
				Prof: "Dr. Seenu",
				Schedule: []domain.ScheduleSlot{
					{Day: "Mon", Start: "09:00", End: "10:30", Location: "Room 101"},
				},
				CreatedAt: createdAt,
			},
			{
				ID:   idGenerator(),
				Name: "Calculus",
				Code: "MA101",
				Prof: "Dr. Roy",
				Schedule: []domain.ScheduleSlot{
					{Day: "Tue", Start: "11:00", End: "12:30"},
				},
				CreatedAt: createdAt,
			},
		},
		Attendance:  []domain.AttendanceRecord{},
		Assignments: []domain.Assignment{},
		Meta:        domain.Meta{CreatedAt: createdAt},
	}
	return doc
}
