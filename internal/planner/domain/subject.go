package domain

import (
	"strings"
	"time"

	"github.com/uniplan/uniplan/internal/platform/errors"
)

// SubjectInput describes the user-editable fields of a subject. ScheduleText
// uses the notation accepted by ParseSchedule and may be empty.
type SubjectInput struct {
	Name         string
	Code         string
	Prof         string
	ScheduleText string
}

// AddSubject validates input, assigns a fresh id and creation timestamp, and
// appends the subject to the document. The nil defaults for now and
// idGenerator are the real clock and NewID.
func (d *Document) AddSubject(input SubjectInput, now func() time.Time, idGenerator func() string) (Subject, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = NewID
	}

	normalized, schedule, err := normalizeSubjectInput(input)
	if err != nil {
		return Subject{}, err
	}

	subject := Subject{
		ID:        idGenerator(),
		Name:      normalized.Name,
		Code:      normalized.Code,
		Prof:      normalized.Prof,
		Schedule:  schedule,
		CreatedAt: now().UTC(),
	}
	d.Subjects = append(d.Subjects, subject)
	return subject, nil
}

// UpdateSubject replaces the mutable fields of the subject with the given id,
// preserving its id and creation timestamp.
func (d *Document) UpdateSubject(id string, input SubjectInput) (Subject, error) {
	idx := -1
	for i := range d.Subjects {
		if d.Subjects[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Subject{}, subjectNotFound(id)
	}

	normalized, schedule, err := normalizeSubjectInput(input)
	if err != nil {
		return Subject{}, err
	}

	d.Subjects[idx].Name = normalized.Name
	d.Subjects[idx].Code = normalized.Code
	d.Subjects[idx].Prof = normalized.Prof
	d.Subjects[idx].Schedule = schedule
	return d.Subjects[idx], nil
}

// DeleteSubject removes the subject and cascades deletion of every attendance
// record and assignment referencing it. Assignments with no subject are left
// alone.
func (d *Document) DeleteSubject(id string) error {
	if _, ok := d.SubjectByID(id); !ok {
		return subjectNotFound(id)
	}

	subjects := d.Subjects[:0]
	for _, s := range d.Subjects {
		if s.ID != id {
			subjects = append(subjects, s)
		}
	}
	d.Subjects = subjects

	attendance := d.Attendance[:0]
	for _, r := range d.Attendance {
		if r.SubjectID != id {
			attendance = append(attendance, r)
		}
	}
	d.Attendance = attendance

	assignments := d.Assignments[:0]
	for _, a := range d.Assignments {
		if a.SubjectID != nil && *a.SubjectID == id {
			continue
		}
		assignments = append(assignments, a)
	}
	d.Assignments = assignments
	return nil
}

func normalizeSubjectInput(input SubjectInput) (SubjectInput, []ScheduleSlot, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return SubjectInput{}, nil, errors.New(errors.CodeValidationEmptyName,
			"subject name is required")
	}
	input.Code = strings.TrimSpace(input.Code)
	input.Prof = strings.TrimSpace(input.Prof)

	schedule, err := ParseSchedule(input.ScheduleText)
	if err != nil {
		return SubjectInput{}, nil, err
	}
	return input, schedule, nil
}

func subjectNotFound(id string) error {
	return errors.WithMetadata(errors.CodeSubjectNotFound,
		"no subject with id "+id,
		map[string]string{"ID": id})
}
