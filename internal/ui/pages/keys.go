package pages

import "github.com/charmbracelet/bubbles/key"

var (
	keyQuit = key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	)
	keyPrevious = key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "previous"),
	)
	keyCreate = key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "create"),
	)
	keyUpdate = key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "update status"),
	)
	keyDelete = key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	)
	keyOpen = key.NewBinding(
		// Ids are parsed, not matched; the digits keep the hint enabled.
		key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("<id>", "open"),
	)
)
