package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// ReportRow is one subject line in the attendance report.
type ReportRow struct {
	Subject string
	Code    string
	Percent string
	Low     bool
}

// AttendanceRow is one recorded attendance entry.
type AttendanceRow struct {
	ID      string
	Subject string
	Date    string
	Present bool
}

// SubjectOption populates subject select boxes.
type SubjectOption struct {
	ID   string
	Name string
}

// AttendancePage holds the report, the raw entries, and the record form data.
type AttendancePage struct {
	Report   []ReportRow
	Entries  []AttendanceRow
	Subjects []SubjectOption
	Today    string
}

// Attendance renders the report page with the record form.
func Attendance(page AttendancePage) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if len(page.Report) == 0 {
			if _, err := io.WriteString(w, "<p>No subjects.</p>"); err != nil {
				return err
			}
		} else {
			if _, err := io.WriteString(w, "<table><tr><th>Subject</th><th>Code</th><th>Attendance</th><th>Status</th></tr>"); err != nil {
				return err
			}
			for _, row := range page.Report {
				status := "OK"
				if row.Low {
					status = "LOW"
				}
				if _, err := io.WriteString(w, "<tr><td>"+esc(row.Subject)+"</td><td>"+esc(row.Code)+
					"</td><td>"+esc(row.Percent)+"%</td><td>"+status+"</td></tr>"); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, "</table>"); err != nil {
				return err
			}
		}

		form := "<h2>Record attendance</h2><form method=\"post\" action=\"/attendance/record\">" +
			"<label>Subject <select name=\"subjectId\" required>"
		for _, opt := range page.Subjects {
			form += "<option value=\"" + esc(opt.ID) + "\">" + esc(opt.Name) + "</option>"
		}
		form += "</select></label><br>" +
			"<label>Date <input type=\"date\" name=\"date\" value=\"" + esc(page.Today) + "\"></label><br>" +
			"<label>Present <input type=\"checkbox\" name=\"present\" value=\"yes\" checked></label><br>" +
			"<button type=\"submit\">Record</button></form>"
		if _, err := io.WriteString(w, form); err != nil {
			return err
		}

		if len(page.Entries) == 0 {
			return nil
		}
		if _, err := io.WriteString(w, "<h2>Entries</h2><table><tr><th>Subject</th><th>Date</th><th>Status</th><th></th></tr>"); err != nil {
			return err
		}
		for _, entry := range page.Entries {
			status := "Absent"
			if entry.Present {
				status = "Present"
			}
			row := "<tr><td>" + esc(entry.Subject) + "</td><td>" + esc(entry.Date) + "</td><td>" + status + "</td>" +
				"<td><form method=\"post\" action=\"/attendance/delete\">" +
				"<input type=\"hidden\" name=\"id\" value=\"" + esc(entry.ID) + "\">" +
				"<button type=\"submit\">Delete</button></form></td></tr>"
			if _, err := io.WriteString(w, row); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</table>")
		return err
	})
}
