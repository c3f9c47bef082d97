package store

import (
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/riordanpawley/storyboard/internal/domain"
	"github.com/zeebo/blake3"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS snapshot (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	codec TEXT NOT NULL,
	body BLOB NOT NULL,
	digest TEXT NOT NULL,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

var errNoSnapshot = errors.New("no snapshot has been written")

// SQLiteStore keeps the encoded dataset in a single row. The row carries a
// BLAKE3 digest of the body so a hand-edited or truncated blob reads back
// as a format error instead of a half-decoded state.
type SQLiteStore struct {
	db    *sql.DB
	path  string
	codec Codec
}

// OpenSQLite opens or creates the database at path and ensures the schema
func OpenSQLite(path string, codec Codec) (*SQLiteStore, error) {
	if codec == nil {
		codec = jsonCodec{}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, &domain.StoreError{Op: "open", Backend: BackendSQLite, Path: path, Kind: domain.ErrIO,
			Err: fmt.Errorf("failed to create directory: %w", err)}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &domain.StoreError{Op: "open", Backend: BackendSQLite, Path: path, Kind: domain.ErrIO, Err: err}
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, &domain.StoreError{Op: "open", Backend: BackendSQLite, Path: path, Kind: domain.ErrIO,
			Err: fmt.Errorf("failed to create schema: %w", err)}
	}

	return &SQLiteStore{db: db, path: path, codec: codec}, nil
}

// Read loads the snapshot row, checks its digest and decodes it
func (s *SQLiteStore) Read() (*domain.DBState, error) {
	var (
		codecName string
		body      []byte
		digest    string
	)
	err := s.db.QueryRow(`SELECT codec, body, digest FROM snapshot WHERE id = 1`).Scan(&codecName, &body, &digest)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, s.fail("read", domain.ErrIO, errNoSnapshot)
	}
	if err != nil {
		return nil, s.fail("read", domain.ErrIO, err)
	}

	if codecName != s.codec.Name() {
		return nil, s.fail("read", domain.ErrFormat,
			fmt.Errorf("snapshot encoded as %s, store configured for %s", codecName, s.codec.Name()))
	}
	if got := digestOf(body); got != digest {
		return nil, s.fail("read", domain.ErrFormat, fmt.Errorf("digest mismatch: stored %s, computed %s", digest, got))
	}

	state, err := decode(s.codec, body)
	if err != nil {
		return nil, s.fail("read", domain.ErrFormat, err)
	}
	return state, nil
}

// Write replaces the snapshot row
func (s *SQLiteStore) Write(state *domain.DBState) error {
	body, err := encode(s.codec, state)
	if err != nil {
		return s.fail("write", domain.ErrFormat, err)
	}

	_, err = s.db.Exec(`
		INSERT INTO snapshot (id, codec, body, digest, updated_at)
		VALUES (1, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			codec = excluded.codec,
			body = excluded.body,
			digest = excluded.digest,
			updated_at = excluded.updated_at
	`, s.codec.Name(), body, digestOf(body))
	if err != nil {
		return s.fail("write", domain.ErrIO, err)
	}
	return nil
}

// Close releases the database handle
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) fail(op string, kind, err error) error {
	return &domain.StoreError{Op: op, Backend: BackendSQLite, Path: s.path, Kind: kind, Err: err}
}

func digestOf(body []byte) string {
	sum := blake3.Sum256(body)
	return hex.EncodeToString(sum[:])
}
