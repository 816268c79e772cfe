// Package cache persists line romanizations in SQLite, so batch runs over
// large corpora skip lines they have already seen. Entries are keyed by a
// hash of the line, the language code and the rule data checksum; new rule
// data invalidates the cache implicitly.
//
// The store works with either SQLite implementation:
//   - Default (CGO_ENABLED=0): pure Go modernc.org/sqlite
//   - CGO mode (CGO_ENABLED=1 -tags cgo_sqlite): mattn/go-sqlite3
package cache

import (
	"database/sql"
	"encoding/hex"

	"github.com/zeebo/blake3"

	"github.com/FocuswithJustin/Latinize/core/errors"
	"github.com/FocuswithJustin/Latinize/internal/logging"
)

const schema = `
CREATE TABLE IF NOT EXISTS romanizations (
	key        TEXT PRIMARY KEY,
	lcode      TEXT NOT NULL,
	original   TEXT NOT NULL,
	romanized  TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// Store is a persistent romanization cache. It is safe for concurrent use;
// database/sql serializes access to the underlying connection pool.
type Store struct {
	db   *sql.DB
	path string
}

// DriverType reports which SQLite implementation is compiled in,
// "purego" or "cgo".
func DriverType() string { return driverType }

// Open opens or creates a cache database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, errors.NewIO("open", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.NewIO("migrate", path, err)
	}
	logging.CacheEvent("open", path, "driver", driverType)
	return &Store{db: db, path: path}, nil
}

// Key derives the cache key for one line. The rule data checksum is part
// of the key, so entries written under older rule data never resurface.
func Key(line, lcode, checksum string) string {
	h := blake3.New()
	h.Write([]byte(line))
	h.Write([]byte{0})
	h.Write([]byte(lcode))
	h.Write([]byte{0})
	h.Write([]byte(checksum))
	return hex.EncodeToString(h.Sum(nil))
}

// Get looks up a cached romanization. The second return is false on miss.
func (s *Store) Get(key string) (string, bool, error) {
	var romanized string
	err := s.db.QueryRow(
		`SELECT romanized FROM romanizations WHERE key = ?`, key,
	).Scan(&romanized)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.NewIO("get", s.path, err)
	}
	return romanized, true, nil
}

// Put stores a romanization. Re-putting an existing key overwrites it.
func (s *Store) Put(key, lcode, original, romanized string) error {
	_, err := s.db.Exec(
		`INSERT INTO romanizations (key, lcode, original, romanized)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET romanized = excluded.romanized`,
		key, lcode, original, romanized,
	)
	if err != nil {
		return errors.NewIO("put", s.path, err)
	}
	return nil
}

// Len reports how many entries the cache holds.
func (s *Store) Len() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM romanizations`).Scan(&n); err != nil {
		return 0, errors.NewIO("count", s.path, err)
	}
	return n, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	logging.CacheEvent("close", s.path)
	return s.db.Close()
}
