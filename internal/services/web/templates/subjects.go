package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// SubjectRow is one subject in the listing table.
type SubjectRow struct {
	ID       string
	Name     string
	Code     string
	Prof     string
	Schedule string
	Percent  string
}

// SubjectForm carries the prefilled values for the add/edit form.
type SubjectForm struct {
	ID       string
	Name     string
	Code     string
	Prof     string
	Schedule string
	// Action is the POST target, create or update.
	Action string
}

// Subjects renders the subject listing with an inline add form.
func Subjects(rows []SubjectRow, form SubjectForm) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(rows) == 0 {
			if _, err := io.WriteString(w, "<p>No subjects found. Add one below.</p>"); err != nil {
				return err
			}
		} else {
			if _, err := io.WriteString(w, "<table><tr><th>Name</th><th>Code</th><th>Professor</th><th>Schedule</th><th>Attendance</th><th></th></tr>"); err != nil {
				return err
			}
			for _, row := range rows {
				cells := "<td>" + esc(row.Name) + "</td><td>" + esc(row.Code) + "</td><td>" + esc(row.Prof) +
					"</td><td>" + esc(row.Schedule) + "</td><td>" + esc(row.Percent) + "%</td>"
				actions := "<td><a href=\"/subjects/edit?id=" + esc(row.ID) + "\">Edit</a> " +
					"<form method=\"post\" action=\"/subjects/delete\" style=\"display:inline\">" +
					"<input type=\"hidden\" name=\"id\" value=\"" + esc(row.ID) + "\">" +
					"<button type=\"submit\">Delete</button></form></td>"
				if _, err := io.WriteString(w, "<tr>"+cells+actions+"</tr>"); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, "</table>"); err != nil {
				return err
			}
		}
		return SubjectFormComponent(form).Render(ctx, w)
	})
}

// SubjectFormComponent renders the add or edit form.
func SubjectFormComponent(form SubjectForm) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		heading := "Add subject"
		button := "Add"
		if form.ID != "" {
			heading = "Edit subject"
			button = "Save"
		}
		out := "<h2>" + heading + "</h2><form method=\"post\" action=\"" + esc(form.Action) + "\">"
		if form.ID != "" {
			out += "<input type=\"hidden\" name=\"id\" value=\"" + esc(form.ID) + "\">"
		}
		out += "<label>Name <input type=\"text\" name=\"name\" value=\"" + esc(form.Name) + "\" required></label><br>" +
			"<label>Code <input type=\"text\" name=\"code\" value=\"" + esc(form.Code) + "\"></label><br>" +
			"<label>Professor <input type=\"text\" name=\"prof\" value=\"" + esc(form.Prof) + "\"></label><br>" +
			"<label>Schedule <input type=\"text\" name=\"schedule\" value=\"" + esc(form.Schedule) +
			"\" placeholder=\"Mon@09:00-10:30,Tue@11:00-12:30 Room201\"></label><br>" +
			"<button type=\"submit\">" + button + "</button></form>"
		_, err := io.WriteString(w, out)
		return err
	})
}
