package pages

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/riordanpawley/storyboard/internal/domain"
)

// Home lists every epic
type Home struct {
	deps Deps
}

// NewHome creates the epic list page
func NewHome(deps Deps) *Home {
	return &Home{deps: deps.withDefaults()}
}

func (h *Home) Title() string { return "Epics" }

func (h *Home) Render() (string, error) {
	state, err := h.deps.DB.ReadDB()
	if err != nil {
		return "", err
	}

	l := h.deps.Layout
	t := newTable(h.deps.Styles,
		column{"id", l.ID},
		column{"name", l.Name},
		column{"status", l.Status},
	)
	for _, id := range slices.Sorted(maps.Keys(state.Epics)) {
		epic := state.Epics[id]
		t.addStatusRow(epic.Status, strconv.FormatUint(uint64(id), 10), epic.Name)
	}

	var b strings.Builder
	b.WriteString(banner(h.deps.Styles, "EPICS", t.width()))
	b.WriteString("\n")
	b.WriteString(t.render())
	if len(state.Epics) == 0 {
		b.WriteString("\n")
		b.WriteString(h.deps.Styles.Empty.Render("no epics yet, press c to create one"))
	}
	return b.String(), nil
}

func (h *Home) HandleInput(input string) (domain.Action, error) {
	input = strings.TrimSpace(input)
	switch {
	case matches(input, keyQuit):
		return domain.Exit{}, nil
	case matches(input, keyCreate):
		return domain.CreateEpic{}, nil
	}

	id, ok := parseID(input)
	if !ok {
		return nil, nil
	}
	state, err := h.deps.DB.ReadDB()
	if err != nil {
		return nil, err
	}
	if _, exists := state.Epics[id]; !exists {
		return nil, nil
	}
	return domain.NavigateToEpicDetail{EpicID: id}, nil
}

func (h *Home) ShortHelp() []key.Binding {
	return []key.Binding{keyOpen, keyCreate, keyQuit}
}

func (h *Home) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
