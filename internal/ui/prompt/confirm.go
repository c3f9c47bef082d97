package prompt

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/storyboard/internal/domain"
	"github.com/riordanpawley/storyboard/internal/ui/styles"
)

// ConfirmDialog asks the user to confirm a deletion
type ConfirmDialog struct {
	kind      domain.EntityKind
	selected  bool // true = Yes, false = No
	confirmed bool
	done      bool
	keys      KeyMap
	styles    *styles.Styles
}

// NewConfirmDialog creates a dialog defaulting to No
func NewConfirmDialog(kind domain.EntityKind, s *styles.Styles) *ConfirmDialog {
	if s == nil {
		s = styles.New()
	}
	return &ConfirmDialog{kind: kind, keys: DefaultKeyMap, styles: s}
}

// Init initializes the dialog
func (c *ConfirmDialog) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (c *ConfirmDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch {
	case key.Matches(keyMsg, c.keys.Yes):
		return c, c.finish(true)

	case key.Matches(keyMsg, c.keys.No), key.Matches(keyMsg, c.keys.Cancel):
		return c, c.finish(false)

	case key.Matches(keyMsg, c.keys.Select):
		return c, c.finish(c.selected)

	case key.Matches(keyMsg, c.keys.Left):
		c.selected = false

	case key.Matches(keyMsg, c.keys.Right):
		c.selected = true
	}
	return c, nil
}

func (c *ConfirmDialog) finish(confirmed bool) tea.Cmd {
	c.confirmed = confirmed
	c.done = true
	return tea.Quit
}

// View renders the dialog
func (c *ConfirmDialog) View() string {
	var b strings.Builder

	b.WriteString(c.styles.MenuItem.Render(c.message()))
	b.WriteString("\n\n")

	yesStyle := c.styles.MenuItem
	noStyle := c.styles.MenuItem
	if c.selected {
		yesStyle = c.styles.MenuItemActive
	} else {
		noStyle = c.styles.MenuItemActive
	}
	b.WriteString(yesStyle.Render("[Y] Yes"))
	b.WriteString("    ")
	b.WriteString(noStyle.Render("[N] No"))

	return frame(c.styles, c.Title(), b.String(),
		c.keys.Yes, c.keys.No, c.keys.Select, c.keys.Cancel)
}

func (c *ConfirmDialog) message() string {
	if c.kind == domain.KindEpic {
		return "Are you sure you want to delete this epic?\nAll stories in this epic will also be deleted."
	}
	return fmt.Sprintf("Are you sure you want to delete this %s?", c.kind)
}

// Title returns the dialog title
func (c *ConfirmDialog) Title() string {
	return fmt.Sprintf("Delete %s", titleCase(string(c.kind)))
}

// Confirmed reports whether the user agreed to the deletion
func (c *ConfirmDialog) Confirmed() bool {
	return c.confirmed
}

// Done reports whether the dialog has been answered
func (c *ConfirmDialog) Done() bool {
	return c.done
}
