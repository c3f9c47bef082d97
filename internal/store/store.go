// Package store persists the whole storyboard dataset as one unit.
//
// A Store reads and writes the complete DBState on every call. Backends
// differ only in where the bytes live (a file, a SQLite row, memory) and
// in the Codec that turns a DBState into bytes.
package store

import (
	"fmt"

	"github.com/riordanpawley/storyboard/internal/domain"
)

// Store reads and writes the entire dataset
type Store interface {
	Read() (*domain.DBState, error)
	Write(state *domain.DBState) error
}

// Backend names
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Options selects and configures a backend
type Options struct {
	Backend     string // file (default), sqlite, memory
	Path        string // file or database path; ignored for memory
	Codec       string // json (default), yaml, cbor
	Compression string // none (default), zstd, lz4
}

// Open creates the backend described by opts. The returned closer releases
// backend resources and is always non-nil.
func Open(opts Options) (Store, func() error, error) {
	codec, err := NewCodec(opts.Codec, opts.Compression)
	if err != nil {
		return nil, nil, err
	}

	noop := func() error { return nil }

	switch opts.Backend {
	case BackendFile, "":
		if opts.Path == "" {
			return nil, nil, fmt.Errorf("file store requires a path")
		}
		return NewFileStore(opts.Path, codec), noop, nil
	case BackendSQLite:
		if opts.Path == "" {
			return nil, nil, fmt.Errorf("sqlite store requires a path")
		}
		s, err := OpenSQLite(opts.Path, codec)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case BackendMemory:
		return NewMemoryStore(codec), noop, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend: %s (supported: file, sqlite, memory)", opts.Backend)
	}
}

// Init writes an empty dataset to s
func Init(s Store) error {
	return s.Write(domain.NewDBState())
}

// encode validates state before handing it to the codec so that a store
// never persists bytes it would refuse to read back.
func encode(codec Codec, state *domain.DBState) ([]byte, error) {
	if err := state.Validate(); err != nil {
		return nil, err
	}
	return codec.Marshal(state)
}

// decode turns stored bytes into a validated state, tagging failures as
// format errors.
func decode(codec Codec, data []byte) (*domain.DBState, error) {
	var state domain.DBState
	if err := codec.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	state.Normalize()
	if err := state.Validate(); err != nil {
		return nil, err
	}
	return &state, nil
}
