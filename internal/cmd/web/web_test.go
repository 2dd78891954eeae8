package web

import (
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, ":8080")
	}
	if cfg.DataFile != "data.json" {
		t.Fatalf("DataFile = %q, want %q", cfg.DataFile, "data.json")
	}
	if cfg.BackupDir != "backups" {
		t.Fatalf("BackupDir = %q, want %q", cfg.BackupDir, "backups")
	}
}

func TestParseConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("PLANNER_HTTP_ADDR", ":9999")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http-addr", "localhost:8081"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8081" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "localhost:8081")
	}
}
