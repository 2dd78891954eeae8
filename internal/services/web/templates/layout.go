// Package templates holds the templ components rendered by the web front end.
//
// Components are built by hand as templ.ComponentFunc values over escaped
// string writes. Each page component receives a fully prepared view-data
// struct; no template does its own computation.
package templates

import (
	"context"
	"html"
	"io"

	"github.com/a-h/templ"
)

// AppName is the browser-facing product name.
const AppName = "University Planner"

// navLink is one entry in the top navigation bar.
type navLink struct {
	Label string
	URL   string
}

var navLinks = []navLink{
	{Label: "Dashboard", URL: "/"},
	{Label: "Subjects", URL: "/subjects"},
	{Label: "Attendance", URL: "/attendance"},
	{Label: "Assignments", URL: "/assignments"},
	{Label: "Backups", URL: "/backups"},
}

// Layout wraps a page body in the shared document chrome.
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<!doctype html><html lang=\"en\"><head><meta charset=\"utf-8\"><title>"+esc(ComposePageTitle(title))+"</title></head><body>"); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "<nav>"); err != nil {
			return err
		}
		for _, link := range navLinks {
			if _, err := io.WriteString(w, "<a href=\""+link.URL+"\">"+esc(link.Label)+"</a> "); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "</nav><h1>"+esc(title)+"</h1>"); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</body></html>")
		return err
	})
}

// ComposePageTitle appends the product name unless the title already carries it.
func ComposePageTitle(title string) string {
	if title == "" {
		return AppName
	}
	return title + " | " + AppName
}

// ErrorBanner renders a dismissable-looking error message above a page body.
func ErrorBanner(message string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if message == "" {
			return nil
		}
		_, err := io.WriteString(w, "<p class=\"error\">"+esc(message)+"</p>")
		return err
	})
}

func esc(s string) string {
	return html.EscapeString(s)
}
