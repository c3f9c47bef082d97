package store

import (
	"errors"

	"github.com/riordanpawley/storyboard/internal/domain"
)

var errNeverWritten = errors.New("store has not been written")

// MemoryStore keeps the encoded dataset in memory. Going through the codec
// on every call means callers never share maps with the store.
type MemoryStore struct {
	codec  Codec
	data   []byte
	reads  int
	writes int
}

// NewMemoryStore creates an unwritten in-memory store. A nil codec selects json.
func NewMemoryStore(codec Codec) *MemoryStore {
	if codec == nil {
		codec = jsonCodec{}
	}
	return &MemoryStore{codec: codec}
}

// Read decodes the last written dataset
func (s *MemoryStore) Read() (*domain.DBState, error) {
	s.reads++
	if s.data == nil {
		return nil, s.fail("read", domain.ErrIO, errNeverWritten)
	}

	state, err := decode(s.codec, s.data)
	if err != nil {
		return nil, s.fail("read", domain.ErrFormat, err)
	}
	return state, nil
}

// Write replaces the held dataset
func (s *MemoryStore) Write(state *domain.DBState) error {
	s.writes++
	data, err := encode(s.codec, state)
	if err != nil {
		return s.fail("write", domain.ErrFormat, err)
	}
	s.data = data
	return nil
}

// Bytes returns the encoded dataset as last written
func (s *MemoryStore) Bytes() []byte {
	return s.data
}

// SetBytes replaces the encoded dataset without going through the codec
func (s *MemoryStore) SetBytes(data []byte) {
	s.data = data
}

// Reads returns how many times Read was called
func (s *MemoryStore) Reads() int {
	return s.reads
}

// Writes returns how many times Write was called
func (s *MemoryStore) Writes() int {
	return s.writes
}

func (s *MemoryStore) fail(op string, kind, err error) error {
	return &domain.StoreError{Op: op, Backend: BackendMemory, Kind: kind, Err: err}
}
