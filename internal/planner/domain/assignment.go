package domain

import (
	"strings"
	"time"

	"github.com/uniplan/uniplan/internal/platform/errors"
)

// AssignmentInput describes the user-editable fields of an assignment.
// SubjectID may be nil for unassigned work; DueAt is optional ISO-8601 text.
type AssignmentInput struct {
	SubjectID   *string
	Title       string
	Description string
	DueAt       string
}

// AddAssignment validates input and appends a new, not-yet-completed
// assignment. A present DueAt must parse as an ISO date or date-time; a
// present SubjectID must resolve to an existing subject.
func (d *Document) AddAssignment(input AssignmentInput, now func() time.Time, idGenerator func() string) (Assignment, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = NewID
	}

	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return Assignment{}, errors.New(errors.CodeValidationEmptyTitle,
			"assignment title is required")
	}

	input.DueAt = strings.TrimSpace(input.DueAt)
	var dueAt *string
	if input.DueAt != "" {
		if _, err := ParseDueAt(input.DueAt); err != nil {
			return Assignment{}, err
		}
		dueAt = &input.DueAt
	}

	if input.SubjectID != nil {
		if _, ok := d.SubjectByID(*input.SubjectID); !ok {
			return Assignment{}, subjectNotFound(*input.SubjectID)
		}
	}

	assignment := Assignment{
		ID:          idGenerator(),
		SubjectID:   input.SubjectID,
		Title:       input.Title,
		Description: strings.TrimSpace(input.Description),
		DueAt:       dueAt,
		Completed:   false,
		CreatedAt:   now().UTC(),
	}
	d.Assignments = append(d.Assignments, assignment)
	return assignment, nil
}

// ToggleAssignment flips the completed flag of the assignment.
func (d *Document) ToggleAssignment(id string) (Assignment, error) {
	for i := range d.Assignments {
		if d.Assignments[i].ID == id {
			d.Assignments[i].Completed = !d.Assignments[i].Completed
			return d.Assignments[i], nil
		}
	}
	return Assignment{}, assignmentNotFound(id)
}

// DeleteAssignment removes a single assignment.
func (d *Document) DeleteAssignment(id string) error {
	for i, a := range d.Assignments {
		if a.ID == id {
			d.Assignments = append(d.Assignments[:i], d.Assignments[i+1:]...)
			return nil
		}
	}
	return assignmentNotFound(id)
}

func assignmentNotFound(id string) error {
	return errors.WithMetadata(errors.CodeAssignmentNotFound,
		"no assignment with id "+id,
		map[string]string{"ID": id})
}
