// Package prompt provides the blocking dialogs used to collect input for
// create, update and delete actions. Each dialog is a Bubble Tea model that
// quits its program once the user answers or cancels.
package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/riordanpawley/storyboard/internal/ui/styles"
)

// frame draws a titled, bordered box with a hint footer
func frame(s *styles.Styles, title, body string, hints ...key.Binding) string {
	var b strings.Builder
	b.WriteString(s.OverlayTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(body)
	if len(hints) > 0 {
		h := help.New()
		h.Styles.ShortKey = s.MenuKey
		h.Styles.ShortDesc = s.Footer.UnsetMarginTop()
		h.Styles.ShortSeparator = s.Separator
		b.WriteString("\n\n")
		b.WriteString(h.ShortHelpView(hints))
	}
	return s.Overlay.Render(b.String())
}
