// Package web implements the browser front end.
//
// Handlers mirror the text menu: each POST loads the document, applies one
// domain mutation, saves, and redirects back to the page it came from. Pages
// are rendered with templ components fed from prepared view-data structs.
package web

import (
	"log"
	"net/http"
	"time"

	"github.com/a-h/templ"

	"github.com/uniplan/uniplan/internal/platform/errors"
	"github.com/uniplan/uniplan/internal/platform/errors/i18n"
	"github.com/uniplan/uniplan/internal/services/web/routepath"
	"github.com/uniplan/uniplan/internal/services/web/templates"
	"github.com/uniplan/uniplan/internal/storage"
)

// upcomingWindowDays is the dashboard lookahead for due assignments.
const upcomingWindowDays = 7

// Handler routes planner web requests.
type Handler struct {
	store  storage.DocumentStore
	clock  func() time.Time
	locale string
}

// NewHandler builds a handler over the given document store.
func NewHandler(store storage.DocumentStore) *Handler {
	return &Handler{
		store:  store,
		clock:  time.Now,
		locale: i18n.BaseLocale,
	}
}

// WithClock overrides the wall clock, primarily for tests.
func (h *Handler) WithClock(clock func() time.Time) *Handler {
	if clock != nil {
		h.clock = clock
	}
	return h
}

// Routes registers every page and action on a fresh mux.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc(routepath.Root, h.handleDashboard)

	mux.HandleFunc(routepath.Subjects, h.handleSubjectsPage)
	mux.HandleFunc(routepath.SubjectsCreate, h.handleSubjectCreate)
	mux.HandleFunc(routepath.SubjectsEdit, h.handleSubjectEdit)
	mux.HandleFunc(routepath.SubjectsUpdate, h.handleSubjectUpdate)
	mux.HandleFunc(routepath.SubjectsDelete, h.handleSubjectDelete)

	mux.HandleFunc(routepath.Attendance, h.handleAttendancePage)
	mux.HandleFunc(routepath.AttendanceRecord, h.handleAttendanceRecord)
	mux.HandleFunc(routepath.AttendanceDelete, h.handleAttendanceDelete)

	mux.HandleFunc(routepath.Assignments, h.handleAssignmentsPage)
	mux.HandleFunc(routepath.AssignmentsCreate, h.handleAssignmentCreate)
	mux.HandleFunc(routepath.AssignmentsToggle, h.handleAssignmentToggle)
	mux.HandleFunc(routepath.AssignmentsDelete, h.handleAssignmentDelete)

	mux.HandleFunc(routepath.Backups, h.handleBackupsPage)
	mux.HandleFunc(routepath.BackupsCreate, h.handleBackupCreate)
	mux.HandleFunc(routepath.BackupsRestore, h.handleBackupRestore)

	mux.HandleFunc(routepath.Export, h.handleExport)
	mux.HandleFunc(routepath.Import, h.handleImport)
	mux.HandleFunc(routepath.Demo, h.handleDemo)
	return mux
}

// renderPage writes the shared layout around a page body.
func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, title string, body templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Layout(title, body).Render(r.Context(), w); err != nil {
		log.Printf("render %s: %v", r.URL.Path, err)
	}
}

// failRequest maps an error to a status code and renders it as a page.
func (h *Handler) failRequest(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.IsValidation(err):
		status = http.StatusBadRequest
	case errors.IsNotFound(err):
		status = http.StatusNotFound
	}
	log.Printf("%s %s: %v", r.Method, r.URL.Path, err)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	page := templates.Layout("Error", templates.ErrorBanner(errors.Localize(err, h.locale)))
	if renderErr := page.Render(r.Context(), w); renderErr != nil {
		log.Printf("render error page: %v", renderErr)
	}
}

// requirePost guards mutation endpoints.
func requirePost(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

func redirect(w http.ResponseWriter, r *http.Request, target string) {
	http.Redirect(w, r, target, http.StatusSeeOther)
}
