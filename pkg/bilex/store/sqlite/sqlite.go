// Package sqlite is a store.Store backed by a SQLite file, for inputs whose
// expanded candidate set outgrows memory, and for serving lookups after a
// run. Each conversion run is recorded with a ULID id.
package sqlite

import (
	"context"
	"crypto/rand"
	"database/sql"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/cognilex/bilex/pkg/bilex/store"
)

// Store implements store.Store on SQLite.
type Store struct {
	db      *sql.DB
	entropy *ulid.MonotonicEntropy
}

// Open opens (creating if needed) a SQLite index with WAL mode enabled.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{
		db:      db,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	source_lang TEXT NOT NULL,
	target_lang TEXT NOT NULL,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS keys (
	key TEXT PRIMARY KEY,
	used_substitution INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS translations (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	key TEXT NOT NULL,
	class TEXT NOT NULL DEFAULT '',
	text TEXT NOT NULL,
	FOREIGN KEY(key) REFERENCES keys(key) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_translations_key ON translations(key);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// BeginRun records run metadata and returns the run's ULID.
func (s *Store) BeginRun(ctx context.Context, sourceLang, targetLang string) (string, error) {
	id := ulid.MustNew(ulid.Now(), s.entropy).String()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, source_lang, target_lang, created_at) VALUES (?, ?, ?, ?)`,
		id, sourceLang, targetLang, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return "", err
	}
	return id, nil
}

// Add implements store.Store. The key row's flag is OR-accumulated; the
// translation row keeps insertion order through its rowid.
func (s *Store) Add(ctx context.Context, key string, usedSubstitution bool, class, text string) error {
	used := 0
	if usedSubstitution {
		used = 1
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO keys (key, used_substitution) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET used_substitution = MAX(used_substitution, excluded.used_substitution)`,
		key, used)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO translations (key, class, text) VALUES (?, ?, ?)`,
		key, class, text)
	return err
}

// Keys implements store.Store.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key FROM keys ORDER BY key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// Get implements store.Store.
func (s *Store) Get(ctx context.Context, key string) (store.KeyRecord, bool, error) {
	var used int
	err := s.db.QueryRowContext(ctx,
		`SELECT used_substitution FROM keys WHERE key = ?`, key).Scan(&used)
	if err == sql.ErrNoRows {
		return store.KeyRecord{}, false, nil
	}
	if err != nil {
		return store.KeyRecord{}, false, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT class, text FROM translations WHERE key = ? ORDER BY id`, key)
	if err != nil {
		return store.KeyRecord{}, false, err
	}
	defer rows.Close()

	rec := store.KeyRecord{Key: key, UsedSubstitution: used != 0}
	for rows.Next() {
		var tr store.Translation
		if err := rows.Scan(&tr.Class, &tr.Text); err != nil {
			return store.KeyRecord{}, false, err
		}
		rec.Translations = append(rec.Translations, tr)
	}
	return rec, true, rows.Err()
}
