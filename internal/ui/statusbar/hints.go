package statusbar

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
)

// Hints returns the keybinding hints for a key map in "key: desc" form
func Hints(keys help.KeyMap) string {
	if keys == nil {
		return ""
	}
	var parts []string
	for _, b := range keys.ShortHelp() {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, h.Key+": "+h.Desc)
	}
	return strings.Join(parts, "  ")
}
