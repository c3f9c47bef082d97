package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/storyboard/internal/domain"
	"github.com/riordanpawley/storyboard/internal/ui/styles"
)

// StatusPicker lets the user choose one of the statuses. Number keys select
// directly; j/k move the cursor and enter selects it.
type StatusPicker struct {
	cursor   int
	selected *domain.Status
	done     bool
	keys     KeyMap
	styles   *styles.Styles
}

// NewStatusPicker creates a picker with the cursor on the first status
func NewStatusPicker(s *styles.Styles) *StatusPicker {
	if s == nil {
		s = styles.New()
	}
	return &StatusPicker{keys: DefaultKeyMap, styles: s}
}

// Init initializes the picker
func (p *StatusPicker) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (p *StatusPicker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch {
	case key.Matches(keyMsg, p.keys.Cancel), keyMsg.String() == "q":
		p.done = true
		return p, tea.Quit

	case key.Matches(keyMsg, p.keys.Up):
		if p.cursor > 0 {
			p.cursor--
		}
		return p, nil

	case key.Matches(keyMsg, p.keys.Down):
		if p.cursor < len(domain.Statuses)-1 {
			p.cursor++
		}
		return p, nil

	case key.Matches(keyMsg, p.keys.Select):
		return p, p.choose(domain.Statuses[p.cursor])
	}

	if status, err := domain.ParseStatusChoice(keyMsg.String()); err == nil {
		return p, p.choose(status)
	}
	return p, nil
}

func (p *StatusPicker) choose(status domain.Status) tea.Cmd {
	p.selected = &status
	p.done = true
	return tea.Quit
}

// View renders the picker
func (p *StatusPicker) View() string {
	var b strings.Builder
	for i, status := range domain.Statuses {
		keyStyle := p.styles.MenuItem
		labelStyle := p.styles.Status(status)
		indicator := "  "
		if i == p.cursor {
			keyStyle = p.styles.MenuKey
			indicator = p.styles.MenuItemActive.Render("▸ ")
		}
		b.WriteString(indicator)
		b.WriteString(keyStyle.Render("[" + strconv.Itoa(i+1) + "]"))
		b.WriteString(" ")
		b.WriteString(labelStyle.Render(status.Label()))
		b.WriteString("\n")
	}

	return frame(p.styles, p.Title(), strings.TrimSuffix(b.String(), "\n"),
		p.keys.Down, p.keys.Up, p.keys.Select, p.keys.Cancel)
}

// Title returns the picker title
func (p *StatusPicker) Title() string {
	return fmt.Sprintf("New Status (1-%d)", len(domain.Statuses))
}

// Selected returns the chosen status, or nil if the picker was closed
// without a choice
func (p *StatusPicker) Selected() *domain.Status {
	return p.selected
}

// Done reports whether the picker has finished
func (p *StatusPicker) Done() bool {
	return p.done
}
