package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/riordanpawley/storyboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const canonicalJSON = `{"last_item_id":2,"epics":{"1":{"name":"E1","description":"first","status":"Open","stories":[2]}},"stories":{"2":{"name":"S1","description":"","status":"Resolved"}}}`

func TestFileStore_ReadCanonicalFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(path, []byte(canonicalJSON), 0644))

	state, err := NewFileStore(path, nil).Read()
	require.NoError(t, err)

	assert.Equal(t, uint32(2), state.LastItemID)
	require.Contains(t, state.Epics, uint32(1))
	assert.Equal(t, "E1", state.Epics[1].Name)
	assert.Equal(t, []uint32{2}, state.Epics[1].Stories)
	assert.Equal(t, domain.StatusResolved, state.Stories[2].Status)
}

func TestFileStore_WriteCanonicalFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	s := NewFileStore(path, nil)

	state := domain.NewDBState()
	state.LastItemID = 2
	state.Epics[1] = domain.Epic{Name: "E1", Description: "first", Status: domain.StatusOpen, Stories: []uint32{2}}
	state.Stories[2] = domain.Story{Name: "S1", Status: domain.StatusResolved}
	require.NoError(t, s.Write(state))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, canonicalJSON, string(data))
}

func TestFileStore_ReadMissingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "missing.json"), nil)
	assert.False(t, s.Exists())

	_, err := s.Read()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIO)
	assert.NotErrorIs(t, err, domain.ErrFormat)

	var storeErr *domain.StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "read", storeErr.Op)
	assert.Equal(t, BackendFile, storeErr.Backend)
}

func TestFileStore_ReadMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "not json"},
		{"non numeric key", `{"last_item_id":1,"epics":{"abc":{"name":"E","description":"","status":"Open","stories":[]}},"stories":{}}`},
		{"negative counter", `{"last_item_id":-1,"epics":{},"stories":{}}`},
		{"wrong story list type", `{"last_item_id":1,"epics":{"1":{"name":"E","description":"","status":"Open","stories":"2"}},"stories":{}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "db.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := NewFileStore(path, nil).Read()
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrFormat)
		})
	}
}

func TestFileStore_WriteCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "db.json")
	s := NewFileStore(path, nil)

	require.NoError(t, Init(s))
	assert.True(t, s.Exists())
	assert.Equal(t, path, s.Path())
}

func TestFileStore_WriteOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	s := NewFileStore(path, nil)

	require.NoError(t, s.Write(sampleState()))
	require.NoError(t, Init(s))

	state, err := s.Read()
	require.NoError(t, err)
	assert.Empty(t, state.Epics)
	assert.Equal(t, uint32(0), state.LastItemID)
}

func TestFileStore_WriteFailure(t *testing.T) {
	dir := t.TempDir()
	// A directory where the file should be makes the write fail
	path := filepath.Join(dir, "db.json")
	require.NoError(t, os.Mkdir(path, 0755))

	err := NewFileStore(path, nil).Write(domain.NewDBState())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIO)
}
