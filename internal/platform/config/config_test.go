package config

import "testing"

func TestPlannerDefaults(t *testing.T) {
	var cfg Planner
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.DataFile != "data.json" {
		t.Fatalf("expected default data file data.json, got %q", cfg.DataFile)
	}
	if cfg.BackupDir != "backups" {
		t.Fatalf("expected default backup dir backups, got %q", cfg.BackupDir)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("expected default http addr :8080, got %q", cfg.HTTPAddr)
	}
}

func TestPlannerOverrides(t *testing.T) {
	t.Setenv("PLANNER_DATA_FILE", "/tmp/planner.json")
	t.Setenv("PLANNER_BACKUP_DIR", "/tmp/planner-backups")

	var cfg Planner
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.DataFile != "/tmp/planner.json" {
		t.Fatalf("expected overridden data file, got %q", cfg.DataFile)
	}
	if cfg.BackupDir != "/tmp/planner-backups" {
		t.Fatalf("expected overridden backup dir, got %q", cfg.BackupDir)
	}
}
