package prompt

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/storyboard/internal/domain"
	"github.com/riordanpawley/storyboard/internal/ui/styles"
)

// Terminal answers prompts by running each dialog as its own Bubble Tea
// program. Every call blocks until the dialog quits.
type Terminal struct {
	input     io.Reader
	output    io.Writer
	styles    *styles.Styles
	altScreen bool
}

// TerminalOption configures a Terminal
type TerminalOption func(*Terminal)

// WithIO sets the reader and writer the dialogs use. Nil values keep the
// process's stdin and stdout.
func WithIO(in io.Reader, out io.Writer) TerminalOption {
	return func(t *Terminal) {
		t.input = in
		t.output = out
	}
}

// WithAltScreen runs the dialogs in the alternate screen buffer
func WithAltScreen(enabled bool) TerminalOption {
	return func(t *Terminal) {
		t.altScreen = enabled
	}
}

// WithStyles overrides the default styles
func WithStyles(s *styles.Styles) TerminalOption {
	return func(t *Terminal) {
		t.styles = s
	}
}

// NewTerminal creates a terminal prompter
func NewTerminal(opts ...TerminalOption) *Terminal {
	t := &Terminal{styles: styles.New()}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Run runs model to completion and returns its final state. It is exported
// so the host loop can run page screens the same way the dialogs run.
func (t *Terminal) Run(model tea.Model) (tea.Model, error) {
	var opts []tea.ProgramOption
	if t.input != nil {
		opts = append(opts, tea.WithInput(t.input))
	}
	if t.output != nil {
		opts = append(opts, tea.WithOutput(t.output))
	}
	if t.altScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}
	return final, nil
}

// Styles returns the styles used for rendering
func (t *Terminal) Styles() *styles.Styles {
	return t.styles
}

// CollectEpic asks for the fields of a new epic
func (t *Terminal) CollectEpic() (domain.Epic, error) {
	name, description, err := t.collect(domain.KindEpic)
	if err != nil {
		return domain.Epic{}, err
	}
	return domain.NewEpic(name, description), nil
}

// CollectStory asks for the fields of a new story
func (t *Terminal) CollectStory() (domain.Story, error) {
	name, description, err := t.collect(domain.KindStory)
	if err != nil {
		return domain.Story{}, err
	}
	return domain.NewStory(name, description), nil
}

func (t *Terminal) collect(kind domain.EntityKind) (string, string, error) {
	final, err := t.Run(NewForm(kind, t.styles))
	if err != nil {
		return "", "", err
	}
	form := final.(*Form)
	if !form.Submitted() {
		return "", "", domain.ErrUserCanceled
	}
	return form.Name(), form.Description(), nil
}

// SelectStatus asks for a new status. It returns nil when the user closes
// the picker without choosing.
func (t *Terminal) SelectStatus() (*domain.Status, error) {
	final, err := t.Run(NewStatusPicker(t.styles))
	if err != nil {
		return nil, err
	}
	return final.(*StatusPicker).Selected(), nil
}

// ConfirmDeletion asks whether an entity of the given kind should be deleted
func (t *Terminal) ConfirmDeletion(kind domain.EntityKind) (bool, error) {
	final, err := t.Run(NewConfirmDialog(kind, t.styles))
	if err != nil {
		return false, err
	}
	return final.(*ConfirmDialog).Confirmed(), nil
}
