package web

import (
	"fmt"
	"net/http"

	"github.com/uniplan/uniplan/internal/planner/domain"
	"github.com/uniplan/uniplan/internal/planner/view"
	"github.com/uniplan/uniplan/internal/services/web/routepath"
	"github.com/uniplan/uniplan/internal/services/web/templates"
)

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != routepath.Root {
		http.NotFound(w, r)
		return
	}
	doc, err := h.store.Load(r.Context())
	if err != nil {
		h.failRequest(w, r, err)
		return
	}
	now := h.clock()

	page := templates.DashboardPage{}
	for _, c := range view.TodaysClasses(doc, now) {
		page.Today = append(page.Today, templates.ClassRow{
			Subject:  c.Subject.Name,
			Start:    c.Slot.Start,
			End:      c.Slot.End,
			Location: c.Slot.Location,
		})
	}
	for _, due := range view.UpcomingAssignments(doc, now, upcomingWindowDays) {
		page.Upcoming = append(page.Upcoming, templates.DueRow{
			Title:   due.Assignment.Title,
			Subject: view.SubjectName(doc, due.Assignment.SubjectID),
			Due:     due.DueAt.Format(domain.DateTimeLayout),
		})
	}
	for _, alert := range view.AttendanceAlerts(doc) {
		page.Alerts = append(page.Alerts, templates.AlertRow{
			Subject: alert.Subject.Name,
			Percent: fmt.Sprintf("%.1f", alert.Percent),
		})
	}

	h.renderPage(w, r, "Dashboard", templates.Dashboard(page))
}

func (h *Handler) handleDemo(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	if err := h.installDemo(r); err != nil {
		h.failRequest(w, r, err)
		return
	}
	redirect(w, r, routepath.Root)
}
