// Package storage persists the notebook collection. Both backends keep the
// collection under a single logical key and rewrite it in full on every
// save; there is no partial or incremental persistence.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/heartmarshall/memelingo-backend/internal/domain"
)

// FileStore keeps the collection as one JSON document on disk.
type FileStore struct {
	path string
	log  *slog.Logger
}

// NewFileStore creates a FileStore writing to path.
func NewFileStore(path string, logger *slog.Logger) *FileStore {
	return &FileStore{
		path: path,
		log:  logger.With("adapter", "storage.file"),
	}
}

// Load reads the collection. A missing file yields an empty collection; a
// malformed payload is logged, discarded, and also yields an empty
// collection. Neither is fatal.
func (s *FileStore) Load(ctx context.Context) (domain.NotebookCollection, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.NotebookCollection{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", s.path, err)
	}

	var c domain.NotebookCollection
	if err := json.Unmarshal(data, &c); err != nil {
		s.log.WarnContext(ctx, "corrupt notebook payload discarded",
			slog.String("path", s.path),
			slog.String("error", err.Error()),
		)
		return domain.NotebookCollection{}, nil
	}
	return c, nil
}

// Save rewrites the whole collection atomically (temp file + rename).
func (s *FileStore) Save(ctx context.Context, c domain.NotebookCollection) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("storage: marshal collection: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: create dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("storage: create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("storage: write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("storage: close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("storage: rename into place: %w", err)
	}

	s.log.DebugContext(ctx, "notebook persisted",
		slog.String("path", s.path),
		slog.Int("items", len(c)),
	)
	return nil
}
