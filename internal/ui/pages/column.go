package pages

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Layout holds the fixed column widths used by the tables
type Layout struct {
	ID          int
	Name        int
	Description int
	Status      int
}

// DefaultLayout returns the standard column widths
func DefaultLayout() Layout {
	return Layout{
		ID:          11,
		Name:        32,
		Description: 27,
		Status:      17,
	}
}

func (l Layout) withDefaults() Layout {
	def := DefaultLayout()
	if l.ID <= 0 {
		l.ID = def.ID
	}
	if l.Name <= 0 {
		l.Name = def.Name
	}
	if l.Description <= 0 {
		l.Description = def.Description
	}
	if l.Status <= 0 {
		l.Status = def.Status
	}
	return l
}

// Column fits text into exactly width cells: shorter text is padded with
// spaces, longer text is cut and ends in "...".
func Column(text string, width int) string {
	if width <= 0 {
		return ""
	}
	w := ansi.StringWidth(text)
	switch {
	case w == width:
		return text
	case w < width:
		return text + strings.Repeat(" ", width-w)
	case width <= 3:
		return strings.Repeat(".", width)
	}
	// Wide runes can leave the cut one cell short.
	cut := ansi.Truncate(text, width, "...")
	if w := ansi.StringWidth(cut); w < width {
		cut += strings.Repeat(" ", width-w)
	}
	return cut
}
