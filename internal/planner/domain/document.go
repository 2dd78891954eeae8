package domain

import "time"

// Document is the root persisted object holding all planner data.
type Document struct {
	Subjects    []Subject          `json:"subjects"`
	Attendance  []AttendanceRecord `json:"attendance"`
	Assignments []Assignment       `json:"assignments"`
	Meta        Meta               `json:"meta"`
}

// Meta holds document-level metadata.
type Meta struct {
	CreatedAt time.Time `json:"createdAt"`
}

// Subject is one course being tracked.
type Subject struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Code      string         `json:"code"`
	Prof      string         `json:"prof"`
	Schedule  []ScheduleSlot `json:"schedule"`
	CreatedAt time.Time      `json:"createdAt"`
}

// ScheduleSlot is one weekly recurring time block belonging to a Subject.
type ScheduleSlot struct {
	Day      string `json:"day"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Location string `json:"location"`
}

// AttendanceRecord marks presence or absence for one subject on one date.
// Date is a calendar date in YYYY-MM-DD form.
type AttendanceRecord struct {
	ID        string    `json:"id"`
	SubjectID string    `json:"subjectId"`
	Date      string    `json:"date"`
	Present   bool      `json:"present"`
	CreatedAt time.Time `json:"createdAt"`
}

// Assignment is a piece of work, optionally tied to a subject and a due time.
// SubjectID and DueAt serialize as explicit null when absent. DueAt preserves
// the ISO-8601 text as entered (date-only or date+time).
type Assignment struct {
	ID          string    `json:"id"`
	SubjectID   *string   `json:"subjectId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueAt       *string   `json:"dueAt"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewDocument creates an empty document with creation metadata.
func NewDocument(now func() time.Time) Document {
	if now == nil {
		now = time.Now
	}
	return Document{
		Subjects:    []Subject{},
		Attendance:  []AttendanceRecord{},
		Assignments: []Assignment{},
		Meta:        Meta{CreatedAt: now().UTC()},
	}
}

// SubjectByID returns the subject with the given id.
func (d *Document) SubjectByID(id string) (Subject, bool) {
	for _, s := range d.Subjects {
		if s.ID == id {
			return s, true
		}
	}
	return Subject{}, false
}
