package pages

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/riordanpawley/storyboard/internal/domain"
)

// StoryDetail shows one story
type StoryDetail struct {
	deps    Deps
	epicID  uint32
	storyID uint32
}

// NewStoryDetail creates the page for storyID reached through epicID
func NewStoryDetail(deps Deps, epicID, storyID uint32) *StoryDetail {
	return &StoryDetail{deps: deps.withDefaults(), epicID: epicID, storyID: storyID}
}

// EpicID returns the epic the story was opened from
func (p *StoryDetail) EpicID() uint32 { return p.epicID }

// StoryID returns the story shown by this page
func (p *StoryDetail) StoryID() uint32 { return p.storyID }

func (p *StoryDetail) Title() string {
	return fmt.Sprintf("Epic %d / Story %d", p.epicID, p.storyID)
}

func (p *StoryDetail) Render() (string, error) {
	state, err := p.deps.DB.ReadDB()
	if err != nil {
		return "", err
	}
	story, ok := state.Stories[p.storyID]
	if !ok {
		return "", &domain.NotFoundError{Kind: domain.KindStory, ID: p.storyID}
	}

	l := p.deps.Layout
	t := newTable(p.deps.Styles,
		column{"id", l.ID},
		column{"name", l.Name},
		column{"description", l.Description},
		column{"status", l.Status},
	)
	t.addStatusRow(story.Status, strconv.FormatUint(uint64(p.storyID), 10), story.Name, story.Description)

	var b strings.Builder
	b.WriteString(banner(p.deps.Styles, "STORY", t.width()))
	b.WriteString("\n")
	b.WriteString(t.render())
	return b.String(), nil
}

func (p *StoryDetail) HandleInput(input string) (domain.Action, error) {
	switch input = strings.TrimSpace(input); {
	case matches(input, keyPrevious):
		return domain.NavigateToPreviousPage{}, nil
	case matches(input, keyUpdate):
		return domain.UpdateStoryStatus{StoryID: p.storyID}, nil
	case matches(input, keyDelete):
		return domain.DeleteStory{EpicID: p.epicID, StoryID: p.storyID}, nil
	}
	return nil, nil
}

func (p *StoryDetail) ShortHelp() []key.Binding {
	return []key.Binding{keyUpdate, keyDelete, keyPrevious}
}

func (p *StoryDetail) FullHelp() [][]key.Binding {
	return [][]key.Binding{p.ShortHelp()}
}
