package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// BackupRow is one backup file in the listing.
type BackupRow struct {
	Path string
	Name string
}

// BackupsPage holds the backup listing.
type BackupsPage struct {
	Rows []BackupRow
}

// Backups renders the backup listing with create/restore/import controls.
func Backups(page BackupsPage) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		create := "<form method=\"post\" action=\"/backups/create\"><button type=\"submit\">Create backup</button></form>"
		if _, err := io.WriteString(w, create); err != nil {
			return err
		}

		if len(page.Rows) == 0 {
			if _, err := io.WriteString(w, "<p>No backups yet.</p>"); err != nil {
				return err
			}
		} else {
			if _, err := io.WriteString(w, "<table><tr><th>Backup</th><th></th></tr>"); err != nil {
				return err
			}
			for _, row := range page.Rows {
				out := "<tr><td>" + esc(row.Name) + "</td>" +
					"<td><form method=\"post\" action=\"/backups/restore\">" +
					"<input type=\"hidden\" name=\"path\" value=\"" + esc(row.Path) + "\">" +
					"<button type=\"submit\">Restore</button></form></td></tr>"
				if _, err := io.WriteString(w, out); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, "</table>"); err != nil {
				return err
			}
		}

		importForm := "<h2>Import</h2>" +
			"<form method=\"post\" action=\"/import\" enctype=\"multipart/form-data\">" +
			"<label>JSON file <input type=\"file\" name=\"file\" accept=\".json\" required></label><br>" +
			"<button type=\"submit\">Import (replaces current data)</button></form>"
		_, err := io.WriteString(w, importForm)
		return err
	})
}
