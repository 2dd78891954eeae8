// Package routepath centralizes the URL paths served by the web front end.
package routepath

const (
	Root = "/"
)

const (
	Subjects       = "/subjects"
	SubjectsCreate = "/subjects/create"
	SubjectsEdit   = "/subjects/edit"
	SubjectsUpdate = "/subjects/update"
	SubjectsDelete = "/subjects/delete"
)

const (
	Attendance       = "/attendance"
	AttendanceRecord = "/attendance/record"
	AttendanceDelete = "/attendance/delete"
)

const (
	Assignments       = "/assignments"
	AssignmentsCreate = "/assignments/create"
	AssignmentsToggle = "/assignments/toggle"
	AssignmentsDelete = "/assignments/delete"
)

const (
	Backups        = "/backups"
	BackupsCreate  = "/backups/create"
	BackupsRestore = "/backups/restore"
)

const (
	Export = "/export"
	Import = "/import"
	Demo   = "/demo"
)
