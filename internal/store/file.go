package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/riordanpawley/storyboard/internal/domain"
)

// FileStore keeps the dataset in a single file. Every write replaces the
// whole file; there is no append or partial update.
type FileStore struct {
	path  string
	codec Codec
}

// NewFileStore creates a file-backed store. A nil codec selects json.
func NewFileStore(path string, codec Codec) *FileStore {
	if codec == nil {
		codec = jsonCodec{}
	}
	return &FileStore{path: path, codec: codec}
}

// Path returns the file location
func (s *FileStore) Path() string {
	return s.path
}

// Exists reports whether the backing file is present
func (s *FileStore) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Read loads and decodes the whole file
func (s *FileStore) Read() (*domain.DBState, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, s.fail("read", domain.ErrIO, err)
	}

	state, err := decode(s.codec, data)
	if err != nil {
		return nil, s.fail("read", domain.ErrFormat, err)
	}
	return state, nil
}

// Write encodes state and overwrites the file
func (s *FileStore) Write(state *domain.DBState) error {
	data, err := encode(s.codec, state)
	if err != nil {
		return s.fail("write", domain.ErrFormat, err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return s.fail("write", domain.ErrIO, fmt.Errorf("failed to create directory: %w", err))
		}
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return s.fail("write", domain.ErrIO, err)
	}
	return nil
}

func (s *FileStore) fail(op string, kind, err error) error {
	return &domain.StoreError{Op: op, Backend: BackendFile, Path: s.path, Kind: kind, Err: err}
}
