package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestStoreError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  StoreError
		want string
	}{
		{
			name: "with path",
			err:  StoreError{Op: "read", Backend: "file", Path: "db.json", Kind: ErrIO, Err: errors.New("no such file")},
			want: "file store read [db.json]: i/o failure: no such file",
		},
		{
			name: "without path",
			err:  StoreError{Op: "write", Backend: "memory", Kind: ErrFormat, Err: errors.New("bad status")},
			want: "memory store write: malformed data: bad status",
		},
		{
			name: "minimal",
			err:  StoreError{Op: "read", Backend: "sqlite", Kind: ErrIO},
			want: "sqlite store read: i/o failure",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("StoreError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStoreError_Is(t *testing.T) {
	cause := errors.New("disk full")
	err := fmt.Errorf("failed to create epic: %w", &StoreError{Op: "write", Backend: "file", Kind: ErrIO, Err: cause})

	if !errors.Is(err, ErrIO) {
		t.Error("expected errors.Is(err, ErrIO)")
	}
	if errors.Is(err, ErrFormat) {
		t.Error("did not expect errors.Is(err, ErrFormat)")
	}
	if !errors.Is(err, cause) {
		t.Error("expected the underlying cause to be reachable")
	}

	var storeErr *StoreError
	if !errors.As(err, &storeErr) {
		t.Fatal("expected errors.As to find *StoreError")
	}
	if storeErr.Op != "write" {
		t.Errorf("Op = %q, want write", storeErr.Op)
	}
}

func TestNotFoundError(t *testing.T) {
	tests := []struct {
		name string
		err  *NotFoundError
		want string
	}{
		{"epic", &NotFoundError{Kind: KindEpic, ID: 3}, "epic 3 not found"},
		{"story", &NotFoundError{Kind: KindStory, ID: 7}, "story 7 not found"},
		{"story in epic", &NotFoundError{Kind: KindStory, ID: 7, EpicID: 3}, "story 7 not found in epic 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
			if !errors.Is(tt.err, ErrNotFound) {
				t.Error("expected errors.Is(err, ErrNotFound)")
			}
		})
	}
}
