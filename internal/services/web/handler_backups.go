package web

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/uniplan/uniplan/internal/planner/ical"
	"github.com/uniplan/uniplan/internal/seed"
	"github.com/uniplan/uniplan/internal/services/web/routepath"
	"github.com/uniplan/uniplan/internal/services/web/templates"
)

func (h *Handler) handleBackupsPage(w http.ResponseWriter, r *http.Request) {
	backups, err := h.store.ListBackups(r.Context())
	if err != nil {
		h.failRequest(w, r, err)
		return
	}
	page := templates.BackupsPage{}
	for _, path := range backups {
		page.Rows = append(page.Rows, templates.BackupRow{Path: path, Name: filepath.Base(path)})
	}
	h.renderPage(w, r, "Backups", templates.Backups(page))
}

func (h *Handler) handleBackupCreate(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	if _, err := h.store.Backup(r.Context()); err != nil {
		h.failRequest(w, r, err)
		return
	}
	redirect(w, r, routepath.Backups)
}

func (h *Handler) handleBackupRestore(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	path := strings.TrimSpace(r.FormValue("path"))
	if err := h.store.Restore(r.Context(), path); err != nil {
		h.failRequest(w, r, err)
		return
	}
	redirect(w, r, routepath.Backups)
}

// handleExport streams the document as JSON, or as an iCalendar feed when
// format=ics is requested.
func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	doc, err := h.store.Load(r.Context())
	if err != nil {
		h.failRequest(w, r, err)
		return
	}

	if strings.EqualFold(r.URL.Query().Get("format"), "ics") {
		w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="planner.ics"`)
		_, _ = io.WriteString(w, ical.Export(doc, h.clock()))
		return
	}

	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		h.failRequest(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="planner.json"`)
	_, _ = w.Write(payload)
}

// handleImport receives an uploaded JSON document and installs it after a
// safety backup of the current data.
func (h *Handler) handleImport(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file upload is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	tmp, err := os.CreateTemp("", "planner-import-*.json")
	if err != nil {
		h.failRequest(w, r, err)
		return
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		h.failRequest(w, r, err)
		return
	}
	if err := tmp.Close(); err != nil {
		h.failRequest(w, r, err)
		return
	}

	if err := h.store.Import(r.Context(), tmpPath); err != nil {
		h.failRequest(w, r, err)
		return
	}
	redirect(w, r, routepath.Backups)
}

func (h *Handler) installDemo(r *http.Request) error {
	return h.store.Save(r.Context(), seed.DemoDocument(h.clock, nil))
}
