package domain

import (
	"fmt"
	"sort"
)

// Problem describes one referential-integrity violation found by Verify
type Problem struct {
	Kind    EntityKind
	ID      uint32
	Message string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s %d: %s", p.Kind, p.ID, p.Message)
}

// Verify checks the epic/story invariants and returns every violation,
// ordered by kind then id. An empty result means the dataset is consistent.
func (s *DBState) Verify() []Problem {
	var problems []Problem

	owners := make(map[uint32][]uint32, len(s.Stories))
	for epicID, epic := range s.Epics {
		if epicID > s.LastItemID {
			problems = append(problems, Problem{KindEpic, epicID, fmt.Sprintf("id exceeds last_item_id %d", s.LastItemID)})
		}
		seen := make(map[uint32]bool, len(epic.Stories))
		for _, storyID := range epic.Stories {
			if seen[storyID] {
				problems = append(problems, Problem{KindEpic, epicID, fmt.Sprintf("lists story %d more than once", storyID)})
				continue
			}
			seen[storyID] = true
			owners[storyID] = append(owners[storyID], epicID)
			if _, ok := s.Stories[storyID]; !ok {
				problems = append(problems, Problem{KindEpic, epicID, fmt.Sprintf("references missing story %d", storyID)})
			}
		}
	}

	for storyID := range s.Stories {
		if storyID > s.LastItemID {
			problems = append(problems, Problem{KindStory, storyID, fmt.Sprintf("id exceeds last_item_id %d", s.LastItemID)})
		}
		if _, clash := s.Epics[storyID]; clash {
			problems = append(problems, Problem{KindStory, storyID, "id is also used by an epic"})
		}
		switch epics := owners[storyID]; len(epics) {
		case 0:
			problems = append(problems, Problem{KindStory, storyID, "is not listed by any epic"})
		case 1:
		default:
			sort.Slice(epics, func(i, j int) bool { return epics[i] < epics[j] })
			problems = append(problems, Problem{KindStory, storyID, fmt.Sprintf("is listed by %d epics %v", len(epics), epics)})
		}
	}

	sort.SliceStable(problems, func(i, j int) bool {
		if problems[i].Kind != problems[j].Kind {
			return problems[i].Kind < problems[j].Kind
		}
		return problems[i].ID < problems[j].ID
	})
	return problems
}

// Validate rejects states a store must not hand out: unknown status names
// anywhere in the dataset.
func (s *DBState) Validate() error {
	for id, epic := range s.Epics {
		if !epic.Status.Valid() {
			return fmt.Errorf("epic %d has unknown status %q", id, epic.Status)
		}
	}
	for id, story := range s.Stories {
		if !story.Status.Valid() {
			return fmt.Errorf("story %d has unknown status %q", id, story.Status)
		}
	}
	return nil
}
