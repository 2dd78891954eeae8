package web

import (
	"net/http"
	"strings"

	"github.com/uniplan/uniplan/internal/planner/domain"
	"github.com/uniplan/uniplan/internal/planner/view"
	"github.com/uniplan/uniplan/internal/services/web/routepath"
	"github.com/uniplan/uniplan/internal/services/web/templates"
)

func (h *Handler) handleAssignmentsPage(w http.ResponseWriter, r *http.Request) {
	doc, err := h.store.Load(r.Context())
	if err != nil {
		h.failRequest(w, r, err)
		return
	}

	page := templates.AssignmentsPage{}
	for _, assignment := range doc.Assignments {
		page.Rows = append(page.Rows, templates.AssignmentRow{
			ID:          assignment.ID,
			Title:       assignment.Title,
			Subject:     view.SubjectName(doc, assignment.SubjectID),
			Due:         view.FormatDueDate(assignment.DueAt),
			Description: assignment.Description,
			Completed:   assignment.Completed,
		})
	}
	for _, subject := range doc.Subjects {
		page.Subjects = append(page.Subjects, templates.SubjectOption{ID: subject.ID, Name: subject.Name})
	}

	h.renderPage(w, r, "Assignments", templates.Assignments(page))
}

func (h *Handler) handleAssignmentCreate(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	doc, err := h.store.Load(r.Context())
	if err != nil {
		h.failRequest(w, r, err)
		return
	}

	var subjectID *string
	if id := strings.TrimSpace(r.FormValue("subjectId")); id != "" {
		subjectID = &id
	}
	input := domain.AssignmentInput{
		SubjectID:   subjectID,
		Title:       r.FormValue("title"),
		Description: strings.TrimSpace(r.FormValue("description")),
		DueAt:       strings.TrimSpace(r.FormValue("dueAt")),
	}
	if _, err := doc.AddAssignment(input, h.clock, nil); err != nil {
		h.failRequest(w, r, err)
		return
	}
	if err := h.store.Save(r.Context(), doc); err != nil {
		h.failRequest(w, r, err)
		return
	}
	redirect(w, r, routepath.Assignments)
}

func (h *Handler) handleAssignmentToggle(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	doc, err := h.store.Load(r.Context())
	if err != nil {
		h.failRequest(w, r, err)
		return
	}
	if _, err := doc.ToggleAssignment(strings.TrimSpace(r.FormValue("id"))); err != nil {
		h.failRequest(w, r, err)
		return
	}
	if err := h.store.Save(r.Context(), doc); err != nil {
		h.failRequest(w, r, err)
		return
	}
	redirect(w, r, routepath.Assignments)
}

func (h *Handler) handleAssignmentDelete(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	doc, err := h.store.Load(r.Context())
	if err != nil {
		h.failRequest(w, r, err)
		return
	}
	if err := doc.DeleteAssignment(strings.TrimSpace(r.FormValue("id"))); err != nil {
		h.failRequest(w, r, err)
		return
	}
	if err := h.store.Save(r.Context(), doc); err != nil {
		h.failRequest(w, r, err)
		return
	}
	redirect(w, r, routepath.Assignments)
}
