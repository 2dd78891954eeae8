// Package jsonfile stores the planner document as a single JSON file with
// plain-copy backups.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/uniplan/uniplan/internal/planner/domain"
	"github.com/uniplan/uniplan/internal/platform/errors"
)

// backupTimeLayout names backups at one-second resolution so lexicographic
// order equals chronological order.
const backupTimeLayout = "20060102_150405"

// backupPrefix and backupExt frame every backup file name.
const (
	backupPrefix = "data_backup_"
	backupExt    = ".json"
)

// Store is a JSON-file-backed document store.
type Store struct {
	dataFile  string
	backupDir string
	clock     func() time.Time
}

// New creates a store bound to the given document path and backup directory.
func New(dataFile, backupDir string) (*Store, error) {
	if strings.TrimSpace(dataFile) == "" {
		return nil, fmt.Errorf("data file path is required")
	}
	if strings.TrimSpace(backupDir) == "" {
		return nil, fmt.Errorf("backup directory is required")
	}
	return &Store{
		dataFile:  filepath.Clean(dataFile),
		backupDir: filepath.Clean(backupDir),
		clock:     time.Now,
	}, nil
}

// WithClock replaces the clock used for backup names and fresh documents.
func (s *Store) WithClock(clock func() time.Time) *Store {
	if clock != nil {
		s.clock = clock
	}
	return s
}

// DataFile returns the bound document path.
func (s *Store) DataFile() string {
	return s.dataFile
}

// Ensure creates a fresh empty document if none exists. Never overwrites.
func (s *Store) Ensure(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := os.Stat(s.dataFile); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return errors.Wrap(errors.CodeStorageRead, "stat document file", err)
	}
	return s.Save(ctx, domain.NewDocument(s.clock))
}

// Load ensures existence, then reads and decodes the document.
func (s *Store) Load(ctx context.Context) (domain.Document, error) {
	if err := s.Ensure(ctx); err != nil {
		return domain.Document{}, err
	}
	payload, err := os.ReadFile(s.dataFile)
	if err != nil {
		return domain.Document{}, errors.Wrap(errors.CodeStorageRead, "read document file", err)
	}
	var doc domain.Document
	if err := json.Unmarshal(payload, &doc); err != nil {
		return domain.Document{}, errors.Wrap(errors.CodeStorageDecode, "decode document file", err)
	}
	return doc, nil
}

// Save serializes the full document, replacing prior content. The write goes
// to a temp file in the same directory followed by a rename, so a crash
// mid-write cannot leave a truncated document behind.
func (s *Store) Save(ctx context.Context, doc domain.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(errors.CodeStorageWrite, "encode document", err)
	}
	return s.writeFileAtomic(s.dataFile, payload)
}

// Backup copies the current document verbatim into the backup directory and
// returns the backup's path. The source is not mutated.
func (s *Store) Backup(ctx context.Context) (string, error) {
	if err := s.Ensure(ctx); err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.backupDir, 0o755); err != nil {
		return "", errors.Wrap(errors.CodeStorageWrite, "create backup directory", err)
	}
	payload, err := os.ReadFile(s.dataFile)
	if err != nil {
		return "", errors.Wrap(errors.CodeStorageRead, "read document file", err)
	}
	name := backupPrefix + s.clock().Format(backupTimeLayout) + backupExt
	dest := filepath.Join(s.backupDir, name)
	if err := os.WriteFile(dest, payload, 0o644); err != nil {
		return "", errors.Wrap(errors.CodeStorageWrite, "write backup file", err)
	}
	return dest, nil
}

// ListBackups returns backup paths sorted lexicographically, which is
// chronological given the timestamped names. A missing backup directory
// yields an empty list.
func (s *Store) ListBackups(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(s.backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, errors.Wrap(errors.CodeStorageRead, "read backup directory", err)
	}
	backups := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, backupPrefix) || !strings.HasSuffix(name, backupExt) {
			continue
		}
		backups = append(backups, filepath.Join(s.backupDir, name))
	}
	sort.Strings(backups)
	return backups, nil
}

// Restore takes a fresh safety backup of the current document, then copies
// backupPath over it.
func (s *Store) Restore(ctx context.Context, backupPath string) error {
	payload, err := os.ReadFile(backupPath)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.WithMetadata(errors.CodeStorageBackupMissing,
				"backup file does not exist: "+backupPath,
				map[string]string{"Path": backupPath})
		}
		return errors.Wrap(errors.CodeStorageRead, "read backup file", err)
	}
	if _, err := s.Backup(ctx); err != nil {
		return err
	}
	return s.writeFileAtomic(s.dataFile, payload)
}

// Export writes the live document verbatim to path.
func (s *Store) Export(ctx context.Context, path string) error {
	if err := s.Ensure(ctx); err != nil {
		return err
	}
	payload, err := os.ReadFile(s.dataFile)
	if err != nil {
		return errors.Wrap(errors.CodeStorageRead, "read document file", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return errors.Wrap(errors.CodeStorageWrite, "write export file", err)
	}
	return nil
}

// Import installs the document read from path, after a safety backup of the
// current one. The imported content must parse as a document but is otherwise
// trusted as-is.
func (s *Store) Import(ctx context.Context, path string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.WithMetadata(errors.CodeStorageBackupMissing,
				"import file does not exist: "+path,
				map[string]string{"Path": path})
		}
		return errors.Wrap(errors.CodeStorageRead, "read import file", err)
	}
	var doc domain.Document
	if err := json.Unmarshal(payload, &doc); err != nil {
		return errors.Wrap(errors.CodeStorageDecode, "decode import file", err)
	}
	if _, err := s.Backup(ctx); err != nil {
		return err
	}
	return s.writeFileAtomic(s.dataFile, payload)
}

func (s *Store) writeFileAtomic(dest string, payload []byte) error {
	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(errors.CodeStorageWrite, "create data directory", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(dest)+".tmp-*")
	if err != nil {
		return errors.Wrap(errors.CodeStorageWrite, "create temp file", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrap(errors.CodeStorageWrite, "write temp file", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(errors.CodeStorageWrite, "close temp file", err)
	}
	if err := os.Rename(tmpName, dest); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(errors.CodeStorageWrite, "replace document file", err)
	}
	return nil
}
