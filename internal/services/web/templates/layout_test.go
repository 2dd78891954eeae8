package templates

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestComposePageTitle(t *testing.T) {
	if got := ComposePageTitle("Subjects"); got != "Subjects | "+AppName {
		t.Fatalf("ComposePageTitle = %q", got)
	}
	if got := ComposePageTitle(""); got != AppName {
		t.Fatalf("ComposePageTitle(empty) = %q", got)
	}
}

func TestLayoutEscapesTitleAndRendersBody(t *testing.T) {
	var b bytes.Buffer
	body := ErrorBanner("boom & bust")
	if err := Layout("A <b> title", body).Render(context.Background(), &b); err != nil {
		t.Fatalf("render layout: %v", err)
	}
	got := b.String()
	if !strings.Contains(got, "A &lt;b&gt; title") {
		t.Fatalf("expected escaped title, got %q", got)
	}
	if !strings.Contains(got, "boom &amp; bust") {
		t.Fatalf("expected escaped banner body, got %q", got)
	}
	if !strings.Contains(got, `<a href="/subjects">Subjects</a>`) {
		t.Fatalf("expected nav link, got %q", got)
	}
}

func TestDashboardEmptySections(t *testing.T) {
	var b bytes.Buffer
	if err := Dashboard(DashboardPage{}).Render(context.Background(), &b); err != nil {
		t.Fatalf("render dashboard: %v", err)
	}
	got := b.String()
	for _, want := range []string{
		"No classes scheduled for today.",
		"No upcoming assignments.",
		"No attendance alerts.",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in empty dashboard, got %q", want, got)
		}
	}
}

func TestSubjectsTableAndForm(t *testing.T) {
	var b bytes.Buffer
	rows := []SubjectRow{{ID: "s1", Name: "Calculus", Code: "MA101", Schedule: "Tue@11:00-12:30", Percent: "100.0"}}
	form := SubjectForm{Action: "/subjects/create"}
	if err := Subjects(rows, form).Render(context.Background(), &b); err != nil {
		t.Fatalf("render subjects: %v", err)
	}
	got := b.String()
	if !strings.Contains(got, "<td>Calculus</td>") {
		t.Fatalf("expected subject row, got %q", got)
	}
	if !strings.Contains(got, `href="/subjects/edit?id=s1"`) {
		t.Fatalf("expected edit link, got %q", got)
	}
	if !strings.Contains(got, `action="/subjects/create"`) {
		t.Fatalf("expected create form action, got %q", got)
	}
}

func TestAssignmentsToggleLabelFollowsCompletion(t *testing.T) {
	var b bytes.Buffer
	page := AssignmentsPage{Rows: []AssignmentRow{
		{ID: "a1", Title: "Open task"},
		{ID: "a2", Title: "Closed task", Completed: true},
	}}
	if err := Assignments(page).Render(context.Background(), &b); err != nil {
		t.Fatalf("render assignments: %v", err)
	}
	got := b.String()
	if !strings.Contains(got, "Mark done") {
		t.Fatalf("expected pending toggle label, got %q", got)
	}
	if !strings.Contains(got, "Reopen") {
		t.Fatalf("expected completed toggle label, got %q", got)
	}
}
