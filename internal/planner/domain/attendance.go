package domain

import (
	"time"

	"github.com/uniplan/uniplan/internal/platform/errors"
)

// RecordAttendance appends a presence mark for the subject on the given date.
func (d *Document) RecordAttendance(subjectID string, date time.Time, present bool, now func() time.Time, idGenerator func() string) (AttendanceRecord, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = NewID
	}

	if _, ok := d.SubjectByID(subjectID); !ok {
		return AttendanceRecord{}, subjectNotFound(subjectID)
	}

	record := AttendanceRecord{
		ID:        idGenerator(),
		SubjectID: subjectID,
		Date:      date.Format(DateLayout),
		Present:   present,
		CreatedAt: now().UTC(),
	}
	d.Attendance = append(d.Attendance, record)
	return record, nil
}

// DeleteAttendance removes a single attendance record. No cascade.
func (d *Document) DeleteAttendance(id string) error {
	for i, r := range d.Attendance {
		if r.ID == id {
			d.Attendance = append(d.Attendance[:i], d.Attendance[i+1:]...)
			return nil
		}
	}
	return errors.WithMetadata(errors.CodeAttendanceNotFound,
		"no attendance record with id "+id,
		map[string]string{"ID": id})
}
