package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/uniplan/uniplan/internal/seed"
	"github.com/uniplan/uniplan/internal/storage/jsonfile"
)

func newTestHandler(t *testing.T) (*Handler, *jsonfile.Store) {
	t.Helper()
	dir := t.TempDir()
	store, err := jsonfile.New(filepath.Join(dir, "data.json"), filepath.Join(dir, "backups"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	clock := func() time.Time {
		return time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC) // a Monday
	}
	handler := NewHandler(store.WithClock(clock)).WithClock(clock)
	return handler, store
}

func postForm(t *testing.T, mux *http.ServeMux, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func get(t *testing.T, mux *http.ServeMux, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestDashboardRendersDemoData(t *testing.T) {
	handler, store := newTestHandler(t)
	if err := store.Save(context.Background(), seed.DemoDocument(handler.clock, nil)); err != nil {
		t.Fatalf("seed: %v", err)
	}

	rec := get(t, handler.Routes(), "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Engineering Mechanics 09:00-10:30 @ Room 101") {
		t.Fatalf("expected Monday class on dashboard, got:\n%s", body)
	}
	if !strings.Contains(body, "No upcoming assignments.") {
		t.Fatalf("expected empty upcoming section, got:\n%s", body)
	}
}

func TestDashboardUnknownPathIs404(t *testing.T) {
	handler, _ := newTestHandler(t)
	rec := get(t, handler.Routes(), "/nope")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestSubjectCreateListEditDelete(t *testing.T) {
	handler, store := newTestHandler(t)
	mux := handler.Routes()

	rec := postForm(t, mux, "/subjects/create", url.Values{
		"name":     {"Calculus"},
		"code":     {"MA101"},
		"prof":     {"Dr. Roy"},
		"schedule": {"Tue@11:00-12:30"},
	})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect after create, got %d: %s", rec.Code, rec.Body.String())
	}

	doc, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(doc.Subjects) != 1 {
		t.Fatalf("expected 1 subject, got %d", len(doc.Subjects))
	}
	id := doc.Subjects[0].ID

	rec = get(t, mux, "/subjects")
	if !strings.Contains(rec.Body.String(), "<td>Calculus</td>") {
		t.Fatalf("expected subject in listing, got:\n%s", rec.Body.String())
	}

	rec = get(t, mux, "/subjects/edit?id="+id)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for edit form, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `value="Tue@11:00-12:30"`) {
		t.Fatalf("expected prefilled schedule, got:\n%s", rec.Body.String())
	}

	rec = postForm(t, mux, "/subjects/update", url.Values{
		"id":       {id},
		"name":     {"Calculus II"},
		"schedule": {"Wed@09:00-10:00"},
	})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect after update, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = postForm(t, mux, "/subjects/delete", url.Values{"id": {id}})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect after delete, got %d", rec.Code)
	}
	doc, err = store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(doc.Subjects) != 0 {
		t.Fatalf("expected no subjects after delete, got %d", len(doc.Subjects))
	}
}

func TestSubjectCreateEmptyNameIsBadRequest(t *testing.T) {
	handler, _ := newTestHandler(t)
	rec := postForm(t, handler.Routes(), "/subjects/create", url.Values{"name": {"  "}})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Name cannot be empty") {
		t.Fatalf("expected localized message, got:\n%s", rec.Body.String())
	}
}

func TestSubjectEditUnknownIDIs404(t *testing.T) {
	handler, _ := newTestHandler(t)
	rec := get(t, handler.Routes(), "/subjects/edit?id=missing")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAttendanceRecordAndReport(t *testing.T) {
	handler, store := newTestHandler(t)
	mux := handler.Routes()
	if err := store.Save(context.Background(), seed.DemoDocument(handler.clock, nil)); err != nil {
		t.Fatalf("seed: %v", err)
	}
	doc, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	subjectID := doc.Subjects[0].ID

	rec := postForm(t, mux, "/attendance/record", url.Values{
		"subjectId": {subjectID},
		"date":      {"2024-03-04"},
	})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = get(t, mux, "/attendance")
	body := rec.Body.String()
	if !strings.Contains(body, "<td>2024-03-04</td>") {
		t.Fatalf("expected recorded entry, got:\n%s", body)
	}
	// absent was not checked, so the entry is Absent and the subject drops low
	if !strings.Contains(body, "Absent") {
		t.Fatalf("expected absent entry, got:\n%s", body)
	}
	if !strings.Contains(body, "<td>0.0%</td><td>LOW</td>") {
		t.Fatalf("expected low report row, got:\n%s", body)
	}
}

func TestAssignmentCreateToggleDelete(t *testing.T) {
	handler, store := newTestHandler(t)
	mux := handler.Routes()

	rec := postForm(t, mux, "/assignments/create", url.Values{
		"title": {"Problem set"},
		"dueAt": {"2024-03-10"},
	})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect after create, got %d: %s", rec.Code, rec.Body.String())
	}

	doc, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(doc.Assignments) != 1 {
		t.Fatalf("expected 1 assignment, got %d", len(doc.Assignments))
	}
	id := doc.Assignments[0].ID

	rec = postForm(t, mux, "/assignments/toggle", url.Values{"id": {id}})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect after toggle, got %d", rec.Code)
	}
	doc, _ = store.Load(context.Background())
	if !doc.Assignments[0].Completed {
		t.Fatal("expected assignment marked completed")
	}

	rec = postForm(t, mux, "/assignments/delete", url.Values{"id": {id}})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect after delete, got %d", rec.Code)
	}
	doc, _ = store.Load(context.Background())
	if len(doc.Assignments) != 0 {
		t.Fatalf("expected no assignments after delete, got %d", len(doc.Assignments))
	}
}

func TestBackupCreateAndListing(t *testing.T) {
	handler, store := newTestHandler(t)
	mux := handler.Routes()

	rec := postForm(t, mux, "/backups/create", nil)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect, got %d", rec.Code)
	}

	backups, err := store.ListBackups(context.Background())
	if err != nil {
		t.Fatalf("list backups: %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("expected 1 backup, got %d", len(backups))
	}

	rec = get(t, mux, "/backups")
	if !strings.Contains(rec.Body.String(), filepath.Base(backups[0])) {
		t.Fatalf("expected backup name in listing, got:\n%s", rec.Body.String())
	}
}

func TestExportJSONAndICS(t *testing.T) {
	handler, store := newTestHandler(t)
	mux := handler.Routes()
	if err := store.Save(context.Background(), seed.DemoDocument(handler.clock, nil)); err != nil {
		t.Fatalf("seed: %v", err)
	}

	rec := get(t, mux, "/export")
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("expected JSON content type, got %q", got)
	}
	if !strings.Contains(rec.Body.String(), `"Engineering Mechanics"`) {
		t.Fatalf("expected subject in JSON export, got:\n%s", rec.Body.String())
	}

	rec = get(t, mux, "/export?format=ics")
	if got := rec.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/calendar") {
		t.Fatalf("expected calendar content type, got %q", got)
	}
	if !strings.Contains(rec.Body.String(), "BEGIN:VCALENDAR") {
		t.Fatalf("expected iCalendar payload, got:\n%s", rec.Body.String())
	}
}

func TestDemoEndpointInstallsFixture(t *testing.T) {
	handler, store := newTestHandler(t)
	rec := postForm(t, handler.Routes(), "/demo", nil)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect, got %d", rec.Code)
	}
	doc, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(doc.Subjects) != 2 {
		t.Fatalf("expected 2 demo subjects, got %d", len(doc.Subjects))
	}
}

func TestMutationsRejectGET(t *testing.T) {
	handler, _ := newTestHandler(t)
	mux := handler.Routes()
	for _, path := range []string{
		"/subjects/create", "/subjects/delete", "/attendance/record",
		"/assignments/create", "/backups/create", "/demo",
	} {
		rec := get(t, mux, path)
		if rec.Code != http.StatusMethodNotAllowed {
			t.Fatalf("expected 405 for GET %s, got %d", path, rec.Code)
		}
	}
}
