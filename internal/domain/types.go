// Package domain contains core business types for the storyboard tracker.
package domain

// DBState is the whole persisted dataset
type DBState struct {
	LastItemID uint32           `json:"last_item_id" yaml:"last_item_id"`
	Epics      map[uint32]Epic  `json:"epics" yaml:"epics"`
	Stories    map[uint32]Story `json:"stories" yaml:"stories"`
}

// NewDBState returns an empty dataset with initialized maps
func NewDBState() *DBState {
	return &DBState{
		Epics:   make(map[uint32]Epic),
		Stories: make(map[uint32]Story),
	}
}

// Normalize replaces nil collections with empty ones so that a decoded
// state and a freshly built one compare equal and encode identically.
func (s *DBState) Normalize() {
	if s.Epics == nil {
		s.Epics = make(map[uint32]Epic)
	}
	if s.Stories == nil {
		s.Stories = make(map[uint32]Story)
	}
	for id, epic := range s.Epics {
		if epic.Stories == nil {
			epic.Stories = []uint32{}
			s.Epics[id] = epic
		}
	}
}

// Epic is a top-level work item owning an ordered list of story ids
type Epic struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Status      Status   `json:"status" yaml:"status"`
	Stories     []uint32 `json:"stories" yaml:"stories"`
}

// NewEpic creates an open epic with no stories
func NewEpic(name, description string) Epic {
	return Epic{
		Name:        name,
		Description: description,
		Status:      StatusOpen,
		Stories:     []uint32{},
	}
}

// HasStory reports whether the story id is listed by this epic
func (e Epic) HasStory(storyID uint32) bool {
	for _, id := range e.Stories {
		if id == storyID {
			return true
		}
	}
	return false
}

// Story is a leaf work item listed by exactly one epic
type Story struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Status      Status `json:"status" yaml:"status"`
}

// NewStory creates an open story
func NewStory(name, description string) Story {
	return Story{
		Name:        name,
		Description: description,
		Status:      StatusOpen,
	}
}
