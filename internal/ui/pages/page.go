// Package pages implements the screens shown by the navigator: the epic
// list, a single epic with its stories, and a single story.
//
// A page renders itself from a fresh read of the database and maps one line
// of user input to at most one domain.Action.
package pages

import (
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/riordanpawley/storyboard/internal/domain"
	"github.com/riordanpawley/storyboard/internal/services/database"
	"github.com/riordanpawley/storyboard/internal/ui/styles"
)

// Page is a screen on the navigator's stack
type Page interface {
	help.KeyMap

	// Title is shown in the status bar
	Title() string

	// Render reads the database and returns the page body
	Render() (string, error)

	// HandleInput maps a raw input token to an action. A nil action means
	// the input was not recognised.
	HandleInput(input string) (domain.Action, error)
}

// Deps are shared by every page
type Deps struct {
	DB     *database.Service
	Layout Layout
	Styles *styles.Styles
}

func (d Deps) withDefaults() Deps {
	if d.Styles == nil {
		d.Styles = styles.New()
	}
	d.Layout = d.Layout.withDefaults()
	return d
}

// matches reports whether input is one of the binding's keys
func matches(input string, b key.Binding) bool {
	return b.Enabled() && slices.Contains(b.Keys(), input)
}

// parseID parses a decimal entity id typed by the user
func parseID(input string) (uint32, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(input), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(id), true
}
