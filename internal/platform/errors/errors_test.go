package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	base := New(CodeSubjectNotFound, "subject missing")
	other := New(CodeSubjectNotFound, "different message")

	if !stderrors.Is(base, other) {
		t.Fatal("expected errors with the same code to match")
	}
	if stderrors.Is(base, New(CodeAssignmentNotFound, "subject missing")) {
		t.Fatal("expected errors with different codes not to match")
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(CodeStorageWrite, "save document", cause)

	if !stderrors.Is(err, cause) {
		t.Fatal("expected wrapped cause to be reachable")
	}
	if err.Error() != "save document" {
		t.Fatalf("expected internal message, got %q", err.Error())
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"domain error", New(CodeValidationEmptyName, "empty"), CodeValidationEmptyName},
		{"wrapped domain error", fmt.Errorf("outer: %w", New(CodeStorageRead, "read")), CodeStorageRead},
		{"plain error", stderrors.New("plain"), CodeUnknown},
		{"nil", nil, CodeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCodeClasses(t *testing.T) {
	tests := []struct {
		code       Code
		validation bool
		notFound   bool
		storage    bool
	}{
		{CodeValidationEmptyName, true, false, false},
		{CodeValidationUnknownWeekday, true, false, false},
		{CodeSubjectNotFound, false, true, false},
		{CodeAttendanceNotFound, false, true, false},
		{CodeStorageDecode, false, false, true},
		{CodeStorageBackupMissing, false, false, true},
		{CodeUnknown, false, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.IsValidation(); got != tt.validation {
				t.Errorf("IsValidation() = %v, want %v", got, tt.validation)
			}
			if got := tt.code.IsNotFound(); got != tt.notFound {
				t.Errorf("IsNotFound() = %v, want %v", got, tt.notFound)
			}
			if got := tt.code.IsStorage(); got != tt.storage {
				t.Errorf("IsStorage() = %v, want %v", got, tt.storage)
			}
		})
	}
}

func TestLocalize(t *testing.T) {
	err := WithMetadata(CodeValidationUnknownWeekday, "unknown weekday token", map[string]string{
		"Day":   "Xyz",
		"Valid": "Sun, Mon, Tue, Wed, Thu, Fri, Sat",
	})

	got := Localize(err, "en-US")
	want := "Unknown weekday: Xyz. Use one of: Sun, Mon, Tue, Wed, Thu, Fri, Sat"
	if got != want {
		t.Fatalf("Localize() = %q, want %q", got, want)
	}

	if got := Localize(stderrors.New("boom"), "en-US"); got != "boom" {
		t.Fatalf("expected plain error text, got %q", got)
	}
	if got := Localize(nil, "en-US"); got != "" {
		t.Fatalf("expected empty string for nil error, got %q", got)
	}
}
