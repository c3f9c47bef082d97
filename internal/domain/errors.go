package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrNotFound     = errors.New("not found")
	ErrIO           = errors.New("i/o failure")
	ErrFormat       = errors.New("malformed data")
	ErrUserCanceled = errors.New("user canceled")
)

// StoreError represents a failure reading or writing the persisted dataset
type StoreError struct {
	Op      string // "read" or "write"
	Backend string // "file", "sqlite", "memory"
	Path    string // Optional: location of the store
	Kind    error  // ErrIO or ErrFormat
	Err     error  // Underlying error
}

func (e *StoreError) Error() string {
	kind := "failed"
	if e.Kind != nil {
		kind = e.Kind.Error()
	}
	if e.Path != "" {
		return fmt.Sprintf("%s store %s [%s]: %s: %v", e.Backend, e.Op, e.Path, kind, e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s store %s: %s: %v", e.Backend, e.Op, kind, e.Err)
	}
	return fmt.Sprintf("%s store %s: %s", e.Backend, e.Op, kind)
}

// Unwrap exposes both the kind sentinel and the cause to errors.Is/As
func (e *StoreError) Unwrap() []error {
	var errs []error
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// NotFoundError reports a missing epic or story. EpicID is set when a story
// was looked up through its parent epic's list.
type NotFoundError struct {
	Kind   EntityKind
	ID     uint32
	EpicID uint32
}

func (e *NotFoundError) Error() string {
	if e.Kind == KindStory && e.EpicID != 0 {
		return fmt.Sprintf("story %d not found in epic %d", e.ID, e.EpicID)
	}
	return fmt.Sprintf("%s %d not found", e.Kind, e.ID)
}

// Is makes errors.Is(err, ErrNotFound) match
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
