// Package library maintains a browsable index of the saved charts in the
// charts directory. The index is a rebuildable sqlite cache over .vac files;
// the files themselves stay the source of truth.
package library

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite" // Pure-Go SQLite driver.

	"github.com/Gauthampro7/vedic-astrology-app/internal/vacfile"
)

// schema contains the DDL executed on first open. Using IF NOT EXISTS makes
// it safe to run on every startup.
const schema = `
CREATE TABLE IF NOT EXISTS charts (
    id         TEXT PRIMARY KEY,
    path       TEXT NOT NULL UNIQUE,
    place      TEXT NOT NULL,
    birth_date TEXT NOT NULL,
    birth_time TEXT NOT NULL,
    created    TEXT NOT NULL DEFAULT '',
    version    TEXT NOT NULL DEFAULT '',
    indexed_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// Entry is one indexed chart file.
type Entry struct {
	ID      string
	Path    string
	Place   string
	Date    string
	Time    string
	Created string
	Version string
}

// Index is the sqlite-backed chart catalogue.
type Index struct {
	db  *sql.DB
	log *zap.Logger
}

// Open opens (or creates) the index database at dbPath, enables WAL mode and
// busy timeout, and creates the schema if needed.
func Open(ctx context.Context, dbPath string, log *zap.Logger) (*Index, error) {
	if log == nil {
		log = zap.NewNop()
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("library: open database: %w", err)
	}

	// One connection: SQLite supports a single writer, and a single pooled
	// connection avoids SQLITE_BUSY between connections with separate PRAGMAs.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("library: enable WAL mode: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("library: set busy timeout: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("library: create schema: %w", err)
	}

	return &Index{db: db, log: log}, nil
}

// Close releases the database handle.
func (ix *Index) Close() error {
	return ix.db.Close()
}

// Upsert records or refreshes the index row for one chart file.
func (ix *Index) Upsert(ctx context.Context, path string, s vacfile.Summary) error {
	const q = `
		INSERT INTO charts (id, path, place, birth_date, birth_time, created, version, indexed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(path) DO UPDATE SET
			place = excluded.place,
			birth_date = excluded.birth_date,
			birth_time = excluded.birth_time,
			created = excluded.created,
			version = excluded.version,
			indexed_at = CURRENT_TIMESTAMP`
	if _, err := ix.db.ExecContext(ctx, q, uuid.NewString(), path, s.Place, s.Date, s.Time, s.Created, s.Version); err != nil {
		return fmt.Errorf("library: upsert %s: %w", path, err)
	}
	return nil
}

// Remove drops the index row for a chart file, typically after the file was
// deleted.
func (ix *Index) Remove(ctx context.Context, path string) error {
	if _, err := ix.db.ExecContext(ctx, "DELETE FROM charts WHERE path = ?", path); err != nil {
		return fmt.Errorf("library: remove %s: %w", path, err)
	}
	return nil
}

// List returns all indexed charts, most recently created first.
func (ix *Index) List(ctx context.Context) ([]Entry, error) {
	const q = `
		SELECT id, path, place, birth_date, birth_time, created, version
		FROM charts ORDER BY created DESC, path ASC`
	rows, err := ix.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("library: list: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Path, &e.Place, &e.Date, &e.Time, &e.Created, &e.Version); err != nil {
			return nil, fmt.Errorf("library: scan row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("library: iterate rows: %w", err)
	}
	return entries, nil
}

// Rescan walks the charts directory, re-indexing every readable .vac file and
// dropping rows for files that no longer exist. Unreadable files are logged
// and skipped.
func (ix *Index) Rescan(ctx context.Context, dir string, h *vacfile.Handler) error {
	seen := make(map[string]bool)

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), vacfile.Extension) {
			return nil
		}
		s, ok := h.Summarize(path)
		if !ok {
			ix.log.Warn("skipping unreadable chart file", zap.String("path", path))
			return nil
		}
		if err := ix.Upsert(ctx, path, s); err != nil {
			return err
		}
		seen[path] = true
		return nil
	})
	if err != nil {
		return fmt.Errorf("library: rescan %s: %w", dir, err)
	}

	existing, err := ix.List(ctx)
	if err != nil {
		return err
	}
	for _, e := range existing {
		if !seen[e.Path] {
			if err := ix.Remove(ctx, e.Path); err != nil {
				return err
			}
		}
	}
	return nil
}
