package domain

import (
	"testing"
	"time"

	"github.com/uniplan/uniplan/internal/platform/errors"
)

func TestAddAssignment(t *testing.T) {
	now := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	doc := NewDocument(fixedClock(now))
	subject, err := doc.AddSubject(SubjectInput{Name: "Calculus"}, fixedClock(now), sequenceIDs("sub-1"))
	if err != nil {
		t.Fatalf("add subject: %v", err)
	}

	assignment, err := doc.AddAssignment(AssignmentInput{
		SubjectID:   &subject.ID,
		Title:       " Problem set 3 ",
		Description: "Chapters 5-6",
		DueAt:       "2024-03-10",
	}, fixedClock(now), sequenceIDs("as-1"))
	if err != nil {
		t.Fatalf("add assignment: %v", err)
	}

	if assignment.ID != "as-1" {
		t.Fatalf("expected id as-1, got %q", assignment.ID)
	}
	if assignment.Title != "Problem set 3" {
		t.Fatalf("expected trimmed title, got %q", assignment.Title)
	}
	if assignment.Completed {
		t.Fatal("expected new assignment to be pending")
	}
	if assignment.DueAt == nil || *assignment.DueAt != "2024-03-10" {
		t.Fatalf("expected dueAt preserved verbatim, got %v", assignment.DueAt)
	}
	if len(doc.Assignments) != 1 {
		t.Fatalf("expected 1 assignment, got %d", len(doc.Assignments))
	}
}

func TestAddAssignmentUnassigned(t *testing.T) {
	doc := NewDocument(nil)

	assignment, err := doc.AddAssignment(AssignmentInput{Title: "Read paper"}, nil, sequenceIDs("as-1"))
	if err != nil {
		t.Fatalf("add assignment: %v", err)
	}
	if assignment.SubjectID != nil {
		t.Fatalf("expected nil subject id, got %v", assignment.SubjectID)
	}
	if assignment.DueAt != nil {
		t.Fatalf("expected nil dueAt, got %v", assignment.DueAt)
	}
}

func TestAddAssignmentValidation(t *testing.T) {
	unknown := "missing"
	tests := []struct {
		name  string
		input AssignmentInput
		want  errors.Code
	}{
		{"empty title", AssignmentInput{Title: "  "}, errors.CodeValidationEmptyTitle},
		{"bad due date", AssignmentInput{Title: "X", DueAt: "tomorrow"}, errors.CodeValidationBadDate},
		{"unknown subject", AssignmentInput{Title: "X", SubjectID: &unknown}, errors.CodeSubjectNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := NewDocument(nil)
			before := len(doc.Assignments)

			_, err := doc.AddAssignment(tt.input, nil, nil)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.CodeOf(err); got != tt.want {
				t.Fatalf("expected code %q, got %q", tt.want, got)
			}
			if len(doc.Assignments) != before {
				t.Fatalf("expected assignments unchanged, got %d", len(doc.Assignments))
			}
		})
	}
}

func TestAddAssignmentAcceptsDateTime(t *testing.T) {
	doc := NewDocument(nil)

	assignment, err := doc.AddAssignment(AssignmentInput{
		Title: "Lab report",
		DueAt: "2024-03-10T23:59",
	}, nil, nil)
	if err != nil {
		t.Fatalf("add assignment: %v", err)
	}
	if assignment.DueAt == nil || *assignment.DueAt != "2024-03-10T23:59" {
		t.Fatalf("expected dueAt preserved, got %v", assignment.DueAt)
	}
}

func TestToggleAssignment(t *testing.T) {
	doc := NewDocument(nil)
	assignment, err := doc.AddAssignment(AssignmentInput{Title: "Essay"}, nil, sequenceIDs("as-1"))
	if err != nil {
		t.Fatalf("add assignment: %v", err)
	}

	toggled, err := doc.ToggleAssignment(assignment.ID)
	if err != nil {
		t.Fatalf("toggle assignment: %v", err)
	}
	if !toggled.Completed {
		t.Fatal("expected assignment completed after first toggle")
	}

	toggled, err = doc.ToggleAssignment(assignment.ID)
	if err != nil {
		t.Fatalf("toggle assignment: %v", err)
	}
	if toggled.Completed {
		t.Fatal("expected assignment pending after second toggle")
	}

	if _, err := doc.ToggleAssignment("missing"); !errors.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestDeleteAssignment(t *testing.T) {
	doc := NewDocument(nil)
	assignment, err := doc.AddAssignment(AssignmentInput{Title: "Essay"}, nil, sequenceIDs("as-1"))
	if err != nil {
		t.Fatalf("add assignment: %v", err)
	}

	if err := doc.DeleteAssignment(assignment.ID); err != nil {
		t.Fatalf("delete assignment: %v", err)
	}
	if len(doc.Assignments) != 0 {
		t.Fatalf("expected no assignments, got %d", len(doc.Assignments))
	}
	if err := doc.DeleteAssignment(assignment.ID); !errors.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
