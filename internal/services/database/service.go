// Package database exposes epic and story operations over a Store while
// keeping the two collections referentially consistent.
//
// Every operation reads the full dataset, validates the ids it touches,
// mutates the copy and writes the whole dataset back. Nothing is cached
// between calls, so edits made to the store by another process between two
// operations are picked up by the next one.
package database

import (
	"log/slog"

	"github.com/riordanpawley/storyboard/internal/domain"
	"github.com/riordanpawley/storyboard/internal/store"
)

// Service wraps a Store with entity-level operations
type Service struct {
	store  store.Store
	logger *slog.Logger
}

// NewService creates a new database service with dependency injection
func NewService(s store.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:  s,
		logger: logger,
	}
}

// ReadDB returns the current dataset
func (s *Service) ReadDB() (*domain.DBState, error) {
	return s.store.Read()
}

// CreateEpic stores epic under a fresh id and returns that id
func (s *Service) CreateEpic(epic domain.Epic) (uint32, error) {
	state, err := s.store.Read()
	if err != nil {
		return 0, err
	}

	state.LastItemID++
	id := state.LastItemID
	if epic.Stories == nil {
		epic.Stories = []uint32{}
	}
	state.Epics[id] = epic

	if err := s.store.Write(state); err != nil {
		return 0, err
	}

	s.logger.Debug("epic created", "id", id, "name", epic.Name)
	return id, nil
}

// CreateStory stores story under a fresh id and appends it to the epic's list
func (s *Service) CreateStory(story domain.Story, epicID uint32) (uint32, error) {
	state, err := s.store.Read()
	if err != nil {
		return 0, err
	}

	epic, ok := state.Epics[epicID]
	if !ok {
		return 0, &domain.NotFoundError{Kind: domain.KindEpic, ID: epicID}
	}

	state.LastItemID++
	id := state.LastItemID
	state.Stories[id] = story
	epic.Stories = append(epic.Stories, id)
	state.Epics[epicID] = epic

	if err := s.store.Write(state); err != nil {
		return 0, err
	}

	s.logger.Debug("story created", "id", id, "epic", epicID, "name", story.Name)
	return id, nil
}

// DeleteEpic removes the epic and every story it lists
func (s *Service) DeleteEpic(epicID uint32) error {
	state, err := s.store.Read()
	if err != nil {
		return err
	}

	epic, ok := state.Epics[epicID]
	if !ok {
		return &domain.NotFoundError{Kind: domain.KindEpic, ID: epicID}
	}

	for _, storyID := range epic.Stories {
		delete(state.Stories, storyID)
	}
	delete(state.Epics, epicID)

	if err := s.store.Write(state); err != nil {
		return err
	}

	s.logger.Debug("epic deleted", "id", epicID, "stories", len(epic.Stories))
	return nil
}

// DeleteStory removes a story that is listed by the given epic. A story that
// exists but belongs to another epic (or to none) is reported as not found.
func (s *Service) DeleteStory(epicID, storyID uint32) error {
	state, err := s.store.Read()
	if err != nil {
		return err
	}

	epic, ok := state.Epics[epicID]
	if !ok {
		return &domain.NotFoundError{Kind: domain.KindEpic, ID: epicID}
	}

	index := -1
	for i, id := range epic.Stories {
		if id == storyID {
			index = i
			break
		}
	}
	if index < 0 {
		return &domain.NotFoundError{Kind: domain.KindStory, ID: storyID, EpicID: epicID}
	}

	epic.Stories = append(epic.Stories[:index], epic.Stories[index+1:]...)
	state.Epics[epicID] = epic
	delete(state.Stories, storyID)

	if err := s.store.Write(state); err != nil {
		return err
	}

	s.logger.Debug("story deleted", "id", storyID, "epic", epicID)
	return nil
}

// UpdateEpicStatus overwrites an epic's status. Any transition is allowed.
func (s *Service) UpdateEpicStatus(epicID uint32, status domain.Status) error {
	state, err := s.store.Read()
	if err != nil {
		return err
	}

	epic, ok := state.Epics[epicID]
	if !ok {
		return &domain.NotFoundError{Kind: domain.KindEpic, ID: epicID}
	}
	epic.Status = status
	state.Epics[epicID] = epic

	if err := s.store.Write(state); err != nil {
		return err
	}

	s.logger.Debug("epic status updated", "id", epicID, "status", status)
	return nil
}

// UpdateStoryStatus overwrites a story's status. Any transition is allowed.
func (s *Service) UpdateStoryStatus(storyID uint32, status domain.Status) error {
	state, err := s.store.Read()
	if err != nil {
		return err
	}

	story, ok := state.Stories[storyID]
	if !ok {
		return &domain.NotFoundError{Kind: domain.KindStory, ID: storyID}
	}
	story.Status = status
	state.Stories[storyID] = story

	if err := s.store.Write(state); err != nil {
		return err
	}

	s.logger.Debug("story status updated", "id", storyID, "status", status)
	return nil
}
