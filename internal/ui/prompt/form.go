package prompt

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/storyboard/internal/domain"
	"github.com/riordanpawley/storyboard/internal/ui/styles"
)

const (
	focusName = iota
	focusDescription
	focusSubmit
	focusCount
)

// Form collects the name and description of a new epic or story
type Form struct {
	kind        domain.EntityKind
	name        textinput.Model
	description textarea.Model
	focusIndex  int
	keys        KeyMap
	styles      *styles.Styles

	submitted bool
	canceled  bool
	invalid   string
}

// NewForm creates a form for the given entity kind
func NewForm(kind domain.EntityKind, s *styles.Styles) *Form {
	if s == nil {
		s = styles.New()
	}

	ti := textinput.New()
	ti.Placeholder = fmt.Sprintf("%s name...", titleCase(string(kind)))
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 60

	ta := textarea.New()
	ta.Placeholder = "Description (optional)..."
	ta.CharLimit = 2000
	ta.ShowLineNumbers = false
	ta.SetWidth(60)
	ta.SetHeight(4)

	return &Form{
		kind:        kind,
		name:        ti,
		description: ta,
		focusIndex:  focusName,
		keys:        DefaultKeyMap,
		styles:      s,
	}
}

// Init starts the cursor blinking
func (f *Form) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (f *Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, f.keys.Cancel):
			f.canceled = true
			return f, tea.Quit

		case key.Matches(msg, f.keys.Submit):
			return f, f.submit()

		case key.Matches(msg, f.keys.NextField):
			f.setFocus((f.focusIndex + 1) % focusCount)
			return f, nil

		case key.Matches(msg, f.keys.PrevField):
			f.setFocus((f.focusIndex - 1 + focusCount) % focusCount)
			return f, nil

		case key.Matches(msg, f.keys.Select):
			switch f.focusIndex {
			case focusSubmit:
				return f, f.submit()
			case focusName:
				f.setFocus(focusDescription)
				return f, nil
			}
			// Enter inserts a newline in the description
		}
	}

	var cmd tea.Cmd
	switch f.focusIndex {
	case focusName:
		f.name, cmd = f.name.Update(msg)
	case focusDescription:
		f.description, cmd = f.description.Update(msg)
	}
	return f, cmd
}

func (f *Form) setFocus(index int) {
	f.focusIndex = index
	f.name.Blur()
	f.description.Blur()
	switch index {
	case focusName:
		f.name.Focus()
	case focusDescription:
		f.description.Focus()
	}
}

// submit quits when the name is filled in
func (f *Form) submit() tea.Cmd {
	if f.Name() == "" {
		f.invalid = "name is required"
		f.setFocus(focusName)
		return nil
	}
	f.invalid = ""
	f.submitted = true
	return tea.Quit
}

// View renders the form
func (f *Form) View() string {
	var b strings.Builder

	b.WriteString(f.label("Name:", focusName))
	b.WriteString("  ")
	b.WriteString(f.name.View())
	b.WriteString("\n\n")

	b.WriteString(f.label("Description:", focusDescription))
	b.WriteString("\n")
	b.WriteString(f.description.View())
	b.WriteString("\n\n")

	submitStyle := f.styles.MenuItem
	if f.focusIndex == focusSubmit {
		submitStyle = f.styles.MenuItemActive
	}
	b.WriteString(submitStyle.Render(fmt.Sprintf("[ Create %s ]", titleCase(string(f.kind)))))

	if f.invalid != "" {
		b.WriteString("\n")
		b.WriteString(f.styles.ToastError.UnsetBorderStyle().Render(f.invalid))
	}

	return frame(f.styles, f.Title(), b.String(),
		f.keys.NextField, f.keys.Submit, f.keys.Cancel)
}

func (f *Form) label(text string, index int) string {
	if f.focusIndex == index {
		return f.styles.FieldLabelActive.Render(text)
	}
	return f.styles.FieldLabel.Render(text)
}

// Title returns the form title
func (f *Form) Title() string {
	return fmt.Sprintf("New %s", titleCase(string(f.kind)))
}

// Name returns the trimmed name field
func (f *Form) Name() string {
	return strings.TrimSpace(f.name.Value())
}

// Description returns the trimmed description field
func (f *Form) Description() string {
	return strings.TrimSpace(f.description.Value())
}

// Submitted reports whether the user saved the form
func (f *Form) Submitted() bool {
	return f.submitted
}

// Canceled reports whether the user closed the form
func (f *Form) Canceled() bool {
	return f.canceled
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
