// Package errors provides structured error handling with i18n support.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Validation errors
	CodeValidationEmptyName      Code = "VALIDATION_EMPTY_NAME"
	CodeValidationEmptyTitle     Code = "VALIDATION_EMPTY_TITLE"
	CodeValidationBadSchedule    Code = "VALIDATION_BAD_SCHEDULE"
	CodeValidationUnknownWeekday Code = "VALIDATION_UNKNOWN_WEEKDAY"
	CodeValidationBadDate        Code = "VALIDATION_BAD_DATE"

	// Not-found errors
	CodeSubjectNotFound    Code = "NOT_FOUND_SUBJECT"
	CodeAttendanceNotFound Code = "NOT_FOUND_ATTENDANCE"
	CodeAssignmentNotFound Code = "NOT_FOUND_ASSIGNMENT"

	// Storage errors
	CodeStorageRead          Code = "STORAGE_READ"
	CodeStorageWrite         Code = "STORAGE_WRITE"
	CodeStorageDecode        Code = "STORAGE_DECODE"
	CodeStorageBackupMissing Code = "STORAGE_BACKUP_MISSING"
)

// IsValidation reports whether the code belongs to the validation class.
func (c Code) IsValidation() bool {
	switch c {
	case CodeValidationEmptyName, CodeValidationEmptyTitle, CodeValidationBadSchedule,
		CodeValidationUnknownWeekday, CodeValidationBadDate:
		return true
	}
	return false
}

// IsNotFound reports whether the code belongs to the not-found class.
func (c Code) IsNotFound() bool {
	switch c {
	case CodeSubjectNotFound, CodeAttendanceNotFound, CodeAssignmentNotFound:
		return true
	}
	return false
}

// IsStorage reports whether the code belongs to the storage class.
func (c Code) IsStorage() bool {
	switch c {
	case CodeStorageRead, CodeStorageWrite, CodeStorageDecode, CodeStorageBackupMissing:
		return true
	}
	return false
}
