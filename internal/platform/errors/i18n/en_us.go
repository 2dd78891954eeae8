package i18n

// Error codes must match the codes defined in internal/platform/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeValidationEmptyName      = "VALIDATION_EMPTY_NAME"
	CodeValidationEmptyTitle     = "VALIDATION_EMPTY_TITLE"
	CodeValidationBadSchedule    = "VALIDATION_BAD_SCHEDULE"
	CodeValidationUnknownWeekday = "VALIDATION_UNKNOWN_WEEKDAY"
	CodeValidationBadDate        = "VALIDATION_BAD_DATE"
	CodeSubjectNotFound          = "NOT_FOUND_SUBJECT"
	CodeAttendanceNotFound       = "NOT_FOUND_ATTENDANCE"
	CodeAssignmentNotFound       = "NOT_FOUND_ASSIGNMENT"
	CodeStorageRead              = "STORAGE_READ"
	CodeStorageWrite             = "STORAGE_WRITE"
	CodeStorageDecode            = "STORAGE_DECODE"
	CodeStorageBackupMissing     = "STORAGE_BACKUP_MISSING"
)

var enUSCatalog = &Catalog{
	locale: BaseLocale,
	messages: map[Code]string{
		// Validation errors
		CodeValidationEmptyName:      "Name cannot be empty",
		CodeValidationEmptyTitle:     "Title cannot be empty",
		CodeValidationBadSchedule:    "Bad schedule piece. Example: Mon@09:00-10:30",
		CodeValidationUnknownWeekday: "Unknown weekday: {{.Day}}. Use one of: {{.Valid}}",
		CodeValidationBadDate:        "Bad date format. Use YYYY-MM-DD or ISO datetime",

		// Not-found errors
		CodeSubjectNotFound:    "Subject not found",
		CodeAttendanceNotFound: "Attendance entry not found",
		CodeAssignmentNotFound: "Assignment not found",

		// Storage errors
		CodeStorageRead:          "Could not read the planner data file",
		CodeStorageWrite:         "Could not write the planner data file",
		CodeStorageDecode:        "The planner data file is corrupt",
		CodeStorageBackupMissing: "Backup file not found",
	},
}
