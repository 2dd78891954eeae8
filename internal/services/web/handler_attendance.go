package web

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/uniplan/uniplan/internal/planner/domain"
	"github.com/uniplan/uniplan/internal/planner/view"
	"github.com/uniplan/uniplan/internal/services/web/routepath"
	"github.com/uniplan/uniplan/internal/services/web/templates"
)

func (h *Handler) handleAttendancePage(w http.ResponseWriter, r *http.Request) {
	doc, err := h.store.Load(r.Context())
	if err != nil {
		h.failRequest(w, r, err)
		return
	}

	page := templates.AttendancePage{Today: h.clock().Format(domain.DateLayout)}
	for _, subject := range doc.Subjects {
		pct := view.AttendancePercent(doc, subject.ID)
		page.Report = append(page.Report, templates.ReportRow{
			Subject: subject.Name,
			Code:    subject.Code,
			Percent: fmt.Sprintf("%.1f", pct),
			Low:     pct < view.AlertThreshold,
		})
		page.Subjects = append(page.Subjects, templates.SubjectOption{ID: subject.ID, Name: subject.Name})
	}
	for _, record := range doc.Attendance {
		name := "Unknown subject"
		if subject, ok := doc.SubjectByID(record.SubjectID); ok {
			name = subject.Name
		}
		page.Entries = append(page.Entries, templates.AttendanceRow{
			ID:      record.ID,
			Subject: name,
			Date:    record.Date,
			Present: record.Present,
		})
	}

	h.renderPage(w, r, "Attendance", templates.Attendance(page))
}

func (h *Handler) handleAttendanceRecord(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	doc, err := h.store.Load(r.Context())
	if err != nil {
		h.failRequest(w, r, err)
		return
	}

	date := h.clock()
	if text := strings.TrimSpace(r.FormValue("date")); text != "" {
		date, err = domain.ParseDate(text)
		if err != nil {
			h.failRequest(w, r, err)
			return
		}
	}
	present := r.FormValue("present") == "yes"
	subjectID := strings.TrimSpace(r.FormValue("subjectId"))

	if _, err := doc.RecordAttendance(subjectID, date, present, h.clock, nil); err != nil {
		h.failRequest(w, r, err)
		return
	}
	if err := h.store.Save(r.Context(), doc); err != nil {
		h.failRequest(w, r, err)
		return
	}
	redirect(w, r, routepath.Attendance)
}

func (h *Handler) handleAttendanceDelete(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	doc, err := h.store.Load(r.Context())
	if err != nil {
		h.failRequest(w, r, err)
		return
	}
	if err := doc.DeleteAttendance(strings.TrimSpace(r.FormValue("id"))); err != nil {
		h.failRequest(w, r, err)
		return
	}
	if err := h.store.Save(r.Context(), doc); err != nil {
		h.failRequest(w, r, err)
		return
	}
	redirect(w, r, routepath.Attendance)
}
