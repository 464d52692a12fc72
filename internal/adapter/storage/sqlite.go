package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite"

	"github.com/heartmarshall/memelingo-backend/internal/domain"
)

// notebookKey is the single logical key the collection lives under.
const notebookKey = "meme_translator_notebook"

// SQLiteStore keeps the collection as one JSON payload in an SQLite kv
// table. The semantics match FileStore: full rewrite per save.
type SQLiteStore struct {
	db  *sql.DB
	log *slog.Logger
}

// OpenSQLite opens (creating if needed) the database at path and ensures the
// schema. Pragmas follow the usual production set: WAL journal, busy
// timeout, NORMAL synchronous.
func OpenSQLite(path string, logger *slog.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: open sqlite %s: %w", path, err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 10000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA foreign_keys = ON",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("storage: %s: %w", p, err)
		}
	}

	const schema = `CREATE TABLE IF NOT EXISTS notebook (
		key     TEXT PRIMARY KEY,
		payload TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: create schema: %w", err)
	}

	return &SQLiteStore{
		db:  db,
		log: logger.With("adapter", "storage.sqlite"),
	}, nil
}

// Load reads the collection. A missing row or malformed payload yields an
// empty collection (the latter is logged and discarded), never an error.
func (s *SQLiteStore) Load(ctx context.Context) (domain.NotebookCollection, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		"SELECT payload FROM notebook WHERE key = ?", notebookKey,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotebookCollection{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: select payload: %w", err)
	}

	var c domain.NotebookCollection
	if err := json.Unmarshal([]byte(payload), &c); err != nil {
		s.log.WarnContext(ctx, "corrupt notebook payload discarded",
			slog.String("key", notebookKey),
			slog.String("error", err.Error()),
		)
		return domain.NotebookCollection{}, nil
	}
	return c, nil
}

// Save rewrites the whole collection under the single key.
func (s *SQLiteStore) Save(ctx context.Context, c domain.NotebookCollection) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("storage: marshal collection: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO notebook (key, payload) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET payload = excluded.payload`,
		notebookKey, string(data),
	)
	if err != nil {
		return fmt.Errorf("storage: upsert payload: %w", err)
	}

	s.log.DebugContext(ctx, "notebook persisted", slog.Int("items", len(c)))
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
