// Package store provides a SQLite-backed archive for canvas documents.
package store

import (
	"bytes"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite" // register sqlite driver

	"github.com/go-collage/collage/pkg/document"
)

const schema = `
CREATE TABLE IF NOT EXISTS documents (
	id       TEXT PRIMARY KEY,
	format   TEXT NOT NULL,
	body     TEXT NOT NULL,
	updated  INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_documents_updated ON documents(updated);
`

// Archive is a SQLite-backed document archive.
type Archive struct {
	mu sync.Mutex
	db *sql.DB
}

// Entry describes one archived document.
type Entry struct {
	ID      string
	Format  string
	Updated time.Time
}

// Open creates or opens an archive database at the given path.
func Open(dbPath string) (*Archive, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open archive db: %w", err)
	}

	// SQLite pragmas for performance.
	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("pragma %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Archive{db: db}, nil
}

// Close closes the database.
func (a *Archive) Close() error {
	if a == nil {
		return nil
	}
	return a.db.Close()
}

// Put stores a document under the given id, replacing any previous version.
func (a *Archive) Put(id string, doc *document.Document) error {
	var buf bytes.Buffer
	if err := doc.Save(&buf); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	_, err := a.db.Exec(
		`INSERT INTO documents (id, format, body, updated) VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET format = excluded.format, body = excluded.body, updated = excluded.updated`,
		id, doc.Format, buf.String(), time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("archive put %q: %w", id, err)
	}
	return nil
}

// Get loads the document stored under id.
func (a *Archive) Get(id string) (*document.Document, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	var body string
	err := a.db.QueryRow(`SELECT body FROM documents WHERE id = ?`, id).Scan(&body)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("archive: no document %q", id)
	}
	if err != nil {
		return nil, fmt.Errorf("archive get %q: %w", id, err)
	}
	return document.Load(bytes.NewReader([]byte(body)))
}

// List returns all archived documents, most recently updated first.
func (a *Archive) List() ([]Entry, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	rows, err := a.db.Query(`SELECT id, format, updated FROM documents ORDER BY updated DESC`)
	if err != nil {
		return nil, fmt.Errorf("archive list: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var updated int64
		if err := rows.Scan(&e.ID, &e.Format, &updated); err != nil {
			log.Warn().Err(err).Msg("skipping unreadable archive row")
			continue
		}
		e.Updated = time.Unix(updated, 0)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Delete removes the document stored under id. Removing a missing id is not
// an error.
func (a *Archive) Delete(id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, err := a.db.Exec(`DELETE FROM documents WHERE id = ?`, id); err != nil {
		return fmt.Errorf("archive delete %q: %w", id, err)
	}
	return nil
}
