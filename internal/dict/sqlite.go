// internal/dict/sqlite.go
//
// SQLite-backed Dictionary. Expects a read-only table:
//
//   CREATE TABLE dictionary (
//     lang TEXT NOT NULL,
//     word TEXT NOT NULL,
//     PRIMARY KEY (lang, word)
//   );
//
// Pointed at via DICT_DB; useful for full-size word lists that are too
// large to hold in memory.

package dict

import (
	"database/sql"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

// SQLite answers word lookups from a dictionary table.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens the dictionary database at dsn read-only.
func OpenSQLite(dsn string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", dsn+"?mode=ro&_busy_timeout=5000")
	if err != nil {
		return nil, err
	}
	return &SQLite{db: db}, nil
}

// NewSQLite wraps an existing database handle.
func NewSQLite(db *sql.DB) *SQLite { return &SQLite{db: db} }

// IsRealWord queries the dictionary table for (lang, word).
// Query errors are logged and treated as "not a word".
func (s *SQLite) IsRealWord(word, lang string) bool {
	var one int
	err := s.db.QueryRow(
		`SELECT 1 FROM dictionary WHERE lang=? AND word=?`,
		lang, strings.ToLower(word),
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false
	}
	if err != nil {
		log.Warn().Err(err).Str("word", word).Str("lang", lang).Msg("dictionary lookup")
		return false
	}
	return one == 1
}

// Stats returns the number of words stored for lang.
func (s *SQLite) Stats(lang string) int {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(1) FROM dictionary WHERE lang=?`, lang).Scan(&n); err != nil {
		return 0
	}
	return n
}

// Close releases the underlying database handle.
func (s *SQLite) Close() error { return s.db.Close() }
