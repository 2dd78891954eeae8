// Package domain defines the core entities and mutating operations for the planner.
//
// The model is centered around a single Document:
//
// # Document
//
// The Document is the root persisted object and the sole source of truth. It owns
// three ordered collections (subjects, attendance records, assignments) plus creation
// metadata. Every mutating operation validates its input, applies an in-memory change
// to the Document, and leaves persistence to the caller.
//
// # Subjects and schedules
//
// A Subject carries an opaque immutable id and an ordered sequence of ScheduleSlot
// values describing its weekly recurring class times. Slots are owned exclusively by
// their Subject and have no identity of their own. The compact textual notation
// "Mon@09:00-10:30 Room201" is handled by ParseSchedule and FormatSchedule.
//
// # Attendance and assignments
//
// AttendanceRecord and Assignment reference their Subject by id (a weak reference).
// Deleting a Subject cascades to every record referencing it; assignments with no
// subject are unaffected.
package domain
