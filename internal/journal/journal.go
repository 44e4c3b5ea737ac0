// Package journal provides SQLite-backed storage for generated narrations,
// so sessions can replay what the narrator said and when.
// See DESIGN.md Section 7.
package journal

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Entry is one stored narration.
type Entry struct {
	ID        string    `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	Language  string    `db:"lang"`
	Terrain   string    `db:"terrain"`
	Kind      string    `db:"kind"` // ambient | action | search
	Text      string    `db:"text"`
}

// Journal wraps a SQLite connection for narration storage.
type Journal struct {
	conn *sqlx.DB
}

// Open opens or creates a journal database at the given path. Use ":memory:"
// for an ephemeral journal.
func Open(path string) (*Journal, error) {
	dsn := path
	if path != ":memory:" {
		dsn = path + "?_journal_mode=WAL&_busy_timeout=5000"
	}
	conn, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}

	j := &Journal{conn: conn}
	if err := j.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return j, nil
}

// Close closes the database connection.
func (j *Journal) Close() error {
	return j.conn.Close()
}

func (j *Journal) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS narrations (
		id TEXT PRIMARY KEY,
		created_at TIMESTAMP NOT NULL,
		lang TEXT NOT NULL,
		terrain TEXT NOT NULL,
		kind TEXT NOT NULL,
		text TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_narrations_created ON narrations(created_at);
	`
	_, err := j.conn.Exec(schema)
	return err
}

// Append stores a narration and returns its generated id.
func (j *Journal) Append(language, terrain, kind, text string) (string, error) {
	id := uuid.NewString()
	_, err := j.conn.Exec(
		`INSERT INTO narrations (id, created_at, lang, terrain, kind, text)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, time.Now().UTC(), language, terrain, kind, text,
	)
	if err != nil {
		return "", fmt.Errorf("append narration: %w", err)
	}
	return id, nil
}

// Recent returns up to limit narrations, newest first.
func (j *Journal) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	var entries []Entry
	err := j.conn.Select(&entries,
		`SELECT id, created_at, lang, terrain, kind, text
		 FROM narrations ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("load narrations: %w", err)
	}
	return entries, nil
}
