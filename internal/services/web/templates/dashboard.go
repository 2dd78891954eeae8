package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// ClassRow is one scheduled class for the dashboard's today section.
type ClassRow struct {
	Subject  string
	Start    string
	End      string
	Location string
}

// DueRow is one upcoming assignment for the dashboard.
type DueRow struct {
	Title   string
	Subject string
	Due     string
}

// AlertRow is one low-attendance warning.
type AlertRow struct {
	Subject string
	Percent string
}

// DashboardPage holds everything the dashboard renders.
type DashboardPage struct {
	Today    []ClassRow
	Upcoming []DueRow
	Alerts   []AlertRow
}

// Dashboard renders the landing page body.
func Dashboard(page DashboardPage) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<section><h2>Today's classes</h2>"); err != nil {
			return err
		}
		if len(page.Today) == 0 {
			if _, err := io.WriteString(w, "<p>No classes scheduled for today.</p>"); err != nil {
				return err
			}
		} else {
			if _, err := io.WriteString(w, "<ul>"); err != nil {
				return err
			}
			for _, row := range page.Today {
				line := esc(row.Subject) + " " + esc(row.Start) + "-" + esc(row.End)
				if row.Location != "" {
					line += " @ " + esc(row.Location)
				}
				if _, err := io.WriteString(w, "<li>"+line+"</li>"); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, "</ul>"); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, "</section><section><h2>Upcoming assignments (next 7 days)</h2>"); err != nil {
			return err
		}
		if len(page.Upcoming) == 0 {
			if _, err := io.WriteString(w, "<p>No upcoming assignments.</p>"); err != nil {
				return err
			}
		} else {
			if _, err := io.WriteString(w, "<ul>"); err != nil {
				return err
			}
			for _, row := range page.Upcoming {
				if _, err := io.WriteString(w, "<li>"+esc(row.Title)+" ["+esc(row.Subject)+"] due "+esc(row.Due)+"</li>"); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, "</ul>"); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, "</section><section><h2>Attendance alerts</h2>"); err != nil {
			return err
		}
		if len(page.Alerts) == 0 {
			if _, err := io.WriteString(w, "<p>No attendance alerts.</p>"); err != nil {
				return err
			}
		} else {
			if _, err := io.WriteString(w, "<ul>"); err != nil {
				return err
			}
			for _, row := range page.Alerts {
				if _, err := io.WriteString(w, "<li>"+esc(row.Subject)+": "+esc(row.Percent)+"%</li>"); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, "</ul>"); err != nil {
				return err
			}
		}

		toolbox := "<section><h2>Data</h2>" +
			"<p><a href=\"/export\">Export JSON</a> | <a href=\"/export?format=ics\">Export calendar (.ics)</a></p>" +
			"<form method=\"post\" action=\"/demo\"><button type=\"submit\">Load demo data</button></form>" +
			"</section>"
		_, err := io.WriteString(w, "</section>"+toolbox)
		return err
	})
}
