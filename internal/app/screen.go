package app

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/storyboard/internal/domain"
	"github.com/riordanpawley/storyboard/internal/ui/pages"
	"github.com/riordanpawley/storyboard/internal/ui/statusbar"
	"github.com/riordanpawley/storyboard/internal/ui/styles"
	"github.com/riordanpawley/storyboard/internal/ui/toast"
)

// Screen shows one page and reads input lines until the page turns one into
// an action. The program quits as soon as an action is available.
type Screen struct {
	page      pages.Page
	body      string
	renderErr error
	toasts    []toast.Toast
	input     textinput.Model
	width     int
	action    domain.Action

	styles *styles.Styles
	toast  *toast.Renderer
}

// NewScreen renders page and prepares the input line. Toasts are shown
// until the first input is submitted.
func NewScreen(page pages.Page, toasts []toast.Toast, s *styles.Styles) *Screen {
	if s == nil {
		s = styles.New()
	}

	ti := textinput.New()
	ti.Prompt = s.Prompt.Render("> ")
	ti.TextStyle = s.Input
	ti.CharLimit = 32
	ti.Focus()

	sc := &Screen{
		page:   page,
		toasts: toasts,
		input:  ti,
		styles: s,
		toast:  toast.New(s),
	}
	sc.body, sc.renderErr = page.Render()
	return sc
}

// Init starts the cursor blinking
func (s *Screen) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (s *Screen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		return s, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			s.action = domain.Exit{}
			return s, tea.Quit

		case tea.KeyEnter:
			return s, s.submit()
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submit hands the typed line to the page
func (s *Screen) submit() tea.Cmd {
	line := strings.TrimSpace(s.input.Value())
	s.input.Reset()
	s.toasts = nil
	if line == "" {
		return nil
	}

	action, err := s.page.HandleInput(line)
	if err != nil {
		s.toasts = []toast.Toast{toast.FromError(err)}
		return nil
	}
	if action == nil {
		s.toasts = []toast.Toast{{Level: toast.Warning, Message: "unknown command " + strconv.Quote(line)}}
		return nil
	}
	s.action = action
	return tea.Quit
}

// View renders the page, notifications, status bar and input line
func (s *Screen) View() string {
	body := s.body
	if s.renderErr != nil {
		body = s.styles.ToastError.Render(s.renderErr.Error())
	}

	parts := []string{body, ""}
	if t := s.toast.Render(s.toasts, s.width); t != "" {
		parts = append(parts, t)
	}
	parts = append(parts,
		statusbar.New(s.page.Title(), s.page, s.width, s.styles).Render(),
		s.input.View(),
	)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Action returns the action chosen on this screen, or nil if none was
func (s *Screen) Action() domain.Action {
	return s.action
}

// RenderErr returns the error raised while rendering the page
func (s *Screen) RenderErr() error {
	return s.renderErr
}
