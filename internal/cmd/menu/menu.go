// Package menu wires configuration for the text menu process.
package menu

import (
	"context"
	"flag"
	"fmt"
	"os"

	platformcmd "github.com/uniplan/uniplan/internal/platform/cmd"
	"github.com/uniplan/uniplan/internal/platform/config"
	menusvc "github.com/uniplan/uniplan/internal/services/menu"
	"github.com/uniplan/uniplan/internal/storage/jsonfile"
)

// Config holds the menu command configuration.
type Config struct {
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
		DataFile:  env.DataFile,
		BackupDir: env.BackupDir,
	}
	fs.StringVar(&cfg.DataFile, "data-file", cfg.DataFile, "path to the planner JSON document")
	fs.StringVar(&cfg.BackupDir, "backup-dir", cfg.BackupDir, "directory for timestamped backups")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the interactive menu on stdin/stdout.
func Run(ctx context.Context, cfg Config) error {
	store, err := jsonfile.New(cfg.DataFile, cfg.BackupDir)
	if err != nil {
		return fmt.Errorf("open document store: %w", err)
	}
	return menusvc.New(store, os.Stdin, os.Stdout).Run(ctx)
}
