package pages

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/riordanpawley/storyboard/internal/domain"
)

const missingStory = "<missing story>"

// EpicDetail shows one epic and the stories it lists
type EpicDetail struct {
	deps   Deps
	epicID uint32
}

// NewEpicDetail creates the page for epicID. The epic is looked up when the
// page renders or handles input.
func NewEpicDetail(deps Deps, epicID uint32) *EpicDetail {
	return &EpicDetail{deps: deps.withDefaults(), epicID: epicID}
}

// EpicID returns the epic shown by this page
func (p *EpicDetail) EpicID() uint32 { return p.epicID }

func (p *EpicDetail) Title() string { return fmt.Sprintf("Epic %d", p.epicID) }

func (p *EpicDetail) epic() (domain.Epic, *domain.DBState, error) {
	state, err := p.deps.DB.ReadDB()
	if err != nil {
		return domain.Epic{}, nil, err
	}
	epic, ok := state.Epics[p.epicID]
	if !ok {
		return domain.Epic{}, nil, &domain.NotFoundError{Kind: domain.KindEpic, ID: p.epicID}
	}
	return epic, state, nil
}

func (p *EpicDetail) Render() (string, error) {
	epic, state, err := p.epic()
	if err != nil {
		return "", err
	}

	l := p.deps.Layout
	details := newTable(p.deps.Styles,
		column{"id", l.ID},
		column{"name", l.Name},
		column{"description", l.Description},
		column{"status", l.Status},
	)
	details.addStatusRow(epic.Status, strconv.FormatUint(uint64(p.epicID), 10), epic.Name, epic.Description)

	stories := newTable(p.deps.Styles,
		column{"id", l.ID},
		column{"name", l.Name},
		column{"status", l.Status},
	)
	for _, id := range epic.Stories {
		idText := strconv.FormatUint(uint64(id), 10)
		story, ok := state.Stories[id]
		if !ok {
			stories.addRow(idText, missingStory)
			continue
		}
		stories.addStatusRow(story.Status, idText, story.Name)
	}

	var b strings.Builder
	b.WriteString(banner(p.deps.Styles, "EPIC", details.width()))
	b.WriteString("\n")
	b.WriteString(details.render())
	b.WriteString("\n\n")
	b.WriteString(banner(p.deps.Styles, "STORIES", stories.width()))
	b.WriteString("\n")
	b.WriteString(stories.render())
	if len(epic.Stories) == 0 {
		b.WriteString("\n")
		b.WriteString(p.deps.Styles.Empty.Render("no stories yet, press c to create one"))
	}
	return b.String(), nil
}

func (p *EpicDetail) HandleInput(input string) (domain.Action, error) {
	input = strings.TrimSpace(input)
	switch {
	case matches(input, keyPrevious):
		return domain.NavigateToPreviousPage{}, nil
	case matches(input, keyUpdate):
		return domain.UpdateEpicStatus{EpicID: p.epicID}, nil
	case matches(input, keyDelete):
		return domain.DeleteEpic{EpicID: p.epicID}, nil
	case matches(input, keyCreate):
		return domain.CreateStory{EpicID: p.epicID}, nil
	}

	id, ok := parseID(input)
	if !ok {
		return nil, nil
	}
	epic, _, err := p.epic()
	if err != nil {
		return nil, err
	}
	if !epic.HasStory(id) {
		return nil, nil
	}
	return domain.NavigateToStoryDetail{EpicID: p.epicID, StoryID: id}, nil
}

func (p *EpicDetail) ShortHelp() []key.Binding {
	return []key.Binding{keyOpen, keyCreate, keyUpdate, keyDelete, keyPrevious}
}

func (p *EpicDetail) FullHelp() [][]key.Binding {
	return [][]key.Binding{p.ShortHelp()}
}
