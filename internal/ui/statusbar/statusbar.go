// Package statusbar renders the bar shown under every page: the page title
// followed by the keys the page accepts.
package statusbar

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/storyboard/internal/ui/styles"
)

// StatusBar represents the status bar at the bottom of the TUI
type StatusBar struct {
	title  string
	keys   help.KeyMap
	width  int
	styles *styles.Styles
}

// New creates a new StatusBar for the given page title and key map
func New(title string, keys help.KeyMap, width int, s *styles.Styles) StatusBar {
	if s == nil {
		s = styles.New()
	}
	return StatusBar{
		title:  title,
		keys:   keys,
		width:  width,
		styles: s,
	}
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	badge := sb.styles.StatusMode.Render(strings.ToUpper(sb.title))

	hints := Hints(sb.keys)
	content := badge
	if hints != "" {
		separator := sb.styles.StatusHint.Render(" │ ")
		content = lipgloss.JoinHorizontal(lipgloss.Left, badge, separator, sb.styles.StatusHint.Render(hints))
	}

	style := sb.styles.StatusBar
	if sb.width > 0 {
		style = style.Width(sb.width)
	}
	return style.Render(content)
}
