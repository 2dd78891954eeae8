package storage

import (
	"context"

	"github.com/uniplan/uniplan/internal/planner/domain"
)

// DocumentStore persists exactly one planner document at a fixed location.
type DocumentStore interface {
	// Ensure creates a fresh empty document if none exists yet. Idempotent.
	Ensure(ctx context.Context) error
	// Load ensures existence, then reads and decodes the document.
	Load(ctx context.Context) (domain.Document, error)
	// Save serializes the full document, replacing any prior content.
	Save(ctx context.Context, doc domain.Document) error
	// Backup copies the current document into the backup directory under a
	// timestamped name and returns the backup's path.
	Backup(ctx context.Context) (string, error)
	// ListBackups returns backup paths in lexicographic (chronological) order.
	ListBackups(ctx context.Context) ([]string, error)
	// Restore backs up the current document, then copies backupPath over it.
	Restore(ctx context.Context, backupPath string) error
	// Export writes the live document verbatim to path.
	Export(ctx context.Context, path string) error
	// Import backs up the current document, then installs the document read
	// from path. The imported document is trusted beyond parse success.
	Import(ctx context.Context, path string) error
}
