package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// AssignmentRow is one assignment in the listing table.
type AssignmentRow struct {
	ID          string
	Title       string
	Subject     string
	Due         string
	Description string
	Completed   bool
}

// AssignmentsPage holds the listing and the add-form data.
type AssignmentsPage struct {
	Rows     []AssignmentRow
	Subjects []SubjectOption
}

// Assignments renders the assignment listing with the add form.
func Assignments(page AssignmentsPage) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if len(page.Rows) == 0 {
			if _, err := io.WriteString(w, "<p>No assignments found.</p>"); err != nil {
				return err
			}
		} else {
			if _, err := io.WriteString(w, "<table><tr><th>Title</th><th>Subject</th><th>Due</th><th>Status</th><th></th></tr>"); err != nil {
				return err
			}
			for _, row := range page.Rows {
				status := "Pending"
				toggle := "Mark done"
				if row.Completed {
					status = "Done"
					toggle = "Reopen"
				}
				title := esc(row.Title)
				if row.Description != "" {
					title += "<br><small>" + esc(row.Description) + "</small>"
				}
				actions := "<td><form method=\"post\" action=\"/assignments/toggle\" style=\"display:inline\">" +
					"<input type=\"hidden\" name=\"id\" value=\"" + esc(row.ID) + "\">" +
					"<button type=\"submit\">" + toggle + "</button></form> " +
					"<form method=\"post\" action=\"/assignments/delete\" style=\"display:inline\">" +
					"<input type=\"hidden\" name=\"id\" value=\"" + esc(row.ID) + "\">" +
					"<button type=\"submit\">Delete</button></form></td>"
				out := "<tr><td>" + title + "</td><td>" + esc(row.Subject) + "</td><td>" + esc(row.Due) +
					"</td><td>" + status + "</td>" + actions + "</tr>"
				if _, err := io.WriteString(w, out); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, "</table>"); err != nil {
				return err
			}
		}

		form := "<h2>Add assignment</h2><form method=\"post\" action=\"/assignments/create\">" +
			"<label>Subject <select name=\"subjectId\"><option value=\"\">No subject</option>"
		for _, opt := range page.Subjects {
			form += "<option value=\"" + esc(opt.ID) + "\">" + esc(opt.Name) + "</option>"
		}
		form += "</select></label><br>" +
			"<label>Title <input type=\"text\" name=\"title\" required></label><br>" +
			"<label>Description <input type=\"text\" name=\"description\"></label><br>" +
			"<label>Due <input type=\"text\" name=\"dueAt\" placeholder=\"YYYY-MM-DD or YYYY-MM-DDTHH:MM\"></label><br>" +
			"<button type=\"submit\">Add</button></form>"
		_, err := io.WriteString(w, form)
		return err
	})
}
