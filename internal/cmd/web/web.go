// Package web wires configuration for the web process.
package web

import (
	"context"
	"flag"
	"fmt"

	platformcmd "github.com/uniplan/uniplan/internal/platform/cmd"
	"github.com/uniplan/uniplan/internal/platform/config"
	websvc "github.com/uniplan/uniplan/internal/services/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr  string
	DataFile  string
	BackupDir string
}

// ParseConfig loads environment defaults and then applies flags.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var env config.Planner
	if err := platformcmd.ParseConfig(&env); err != nil {
		return Config{}, err
	}
	cfg := Config{
		HTTPAddr:  env.HTTPAddr,
		DataFile:  env.DataFile,
		BackupDir: env.BackupDir,
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DataFile, "data-file", cfg.DataFile, "path to the planner JSON document")
	fs.StringVar(&cfg.BackupDir, "backup-dir", cfg.BackupDir, "directory for timestamped backups")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web server until the context ends.
func Run(ctx context.Context, cfg Config) error {
	server, err := websvc.NewServer(websvc.Config{
		HTTPAddr:  cfg.HTTPAddr,
		DataFile:  cfg.DataFile,
		BackupDir: cfg.BackupDir,
	})
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}
	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}
