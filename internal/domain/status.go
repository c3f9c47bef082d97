package domain

import "fmt"

// Status represents the lifecycle state of an epic or story
type Status string

const (
	StatusOpen       Status = "Open"
	StatusInProgress Status = "InProgress"
	StatusResolved   Status = "Resolved"
	StatusClosed     Status = "Closed"
)

// Statuses lists every status in display order
var Statuses = []Status{StatusOpen, StatusInProgress, StatusResolved, StatusClosed}

// Valid reports whether s is a known status
func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusResolved, StatusClosed:
		return true
	default:
		return false
	}
}

// Label returns the display string
func (s Status) Label() string {
	switch s {
	case StatusOpen:
		return "OPEN"
	case StatusInProgress:
		return "IN PROGRESS"
	case StatusResolved:
		return "RESOLVED"
	case StatusClosed:
		return "CLOSED"
	default:
		return "UNKNOWN"
	}
}

// String returns the serialized name
func (s Status) String() string {
	return string(s)
}

// ParseStatusChoice maps the 1-based menu choice used by the status prompt
func ParseStatusChoice(choice string) (Status, error) {
	switch choice {
	case "1":
		return StatusOpen, nil
	case "2":
		return StatusInProgress, nil
	case "3":
		return StatusResolved, nil
	case "4":
		return StatusClosed, nil
	default:
		return "", fmt.Errorf("invalid status choice %q", choice)
	}
}

// EntityKind names the kind of record an error or prompt refers to
type EntityKind string

const (
	KindEpic  EntityKind = "epic"
	KindStory EntityKind = "story"
)
