package web

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/uniplan/uniplan/internal/planner/domain"
	"github.com/uniplan/uniplan/internal/planner/view"
	"github.com/uniplan/uniplan/internal/platform/errors"
	"github.com/uniplan/uniplan/internal/services/web/routepath"
	"github.com/uniplan/uniplan/internal/services/web/templates"
)

func (h *Handler) handleSubjectsPage(w http.ResponseWriter, r *http.Request) {
	doc, err := h.store.Load(r.Context())
	if err != nil {
		h.failRequest(w, r, err)
		return
	}

	rows := make([]templates.SubjectRow, 0, len(doc.Subjects))
	for _, subject := range doc.Subjects {
		rows = append(rows, templates.SubjectRow{
			ID:       subject.ID,
			Name:     subject.Name,
			Code:     subject.Code,
			Prof:     subject.Prof,
			Schedule: domain.FormatSchedule(subject.Schedule),
			Percent:  fmt.Sprintf("%.1f", view.AttendancePercent(doc, subject.ID)),
		})
	}
	form := templates.SubjectForm{Action: routepath.SubjectsCreate}
	h.renderPage(w, r, "Subjects", templates.Subjects(rows, form))
}

func (h *Handler) handleSubjectCreate(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	doc, err := h.store.Load(r.Context())
	if err != nil {
		h.failRequest(w, r, err)
		return
	}
	if _, err := doc.AddSubject(subjectInputFromForm(r), h.clock, nil); err != nil {
		h.failRequest(w, r, err)
		return
	}
	if err := h.store.Save(r.Context(), doc); err != nil {
		h.failRequest(w, r, err)
		return
	}
	redirect(w, r, routepath.Subjects)
}

func (h *Handler) handleSubjectEdit(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.URL.Query().Get("id"))
	doc, err := h.store.Load(r.Context())
	if err != nil {
		h.failRequest(w, r, err)
		return
	}
	subject, ok := doc.SubjectByID(id)
	if !ok {
		h.failRequest(w, r, errors.WithMetadata(errors.CodeSubjectNotFound, "subject not found", map[string]string{"ID": id}))
		return
	}
	form := templates.SubjectForm{
		ID:       subject.ID,
		Name:     subject.Name,
		Code:     subject.Code,
		Prof:     subject.Prof,
		Schedule: domain.FormatSchedule(subject.Schedule),
		Action:   routepath.SubjectsUpdate,
	}
	h.renderPage(w, r, "Edit Subject", templates.SubjectFormComponent(form))
}

func (h *Handler) handleSubjectUpdate(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	doc, err := h.store.Load(r.Context())
	if err != nil {
		h.failRequest(w, r, err)
		return
	}
	id := strings.TrimSpace(r.FormValue("id"))
	if _, err := doc.UpdateSubject(id, subjectInputFromForm(r)); err != nil {
		h.failRequest(w, r, err)
		return
	}
	if err := h.store.Save(r.Context(), doc); err != nil {
		h.failRequest(w, r, err)
		return
	}
	redirect(w, r, routepath.Subjects)
}

func (h *Handler) handleSubjectDelete(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	doc, err := h.store.Load(r.Context())
	if err != nil {
		h.failRequest(w, r, err)
		return
	}
	id := strings.TrimSpace(r.FormValue("id"))
	if err := doc.DeleteSubject(id); err != nil {
		h.failRequest(w, r, err)
		return
	}
	if err := h.store.Save(r.Context(), doc); err != nil {
		h.failRequest(w, r, err)
		return
	}
	redirect(w, r, routepath.Subjects)
}

func subjectInputFromForm(r *http.Request) domain.SubjectInput {
	return domain.SubjectInput{
		Name:         r.FormValue("name"),
		Code:         strings.TrimSpace(r.FormValue("code")),
		Prof:         strings.TrimSpace(r.FormValue("prof")),
		ScheduleText: r.FormValue("schedule"),
	}
}
