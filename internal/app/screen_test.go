package app

import (
	"errors"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/storyboard/internal/domain"
	"github.com/riordanpawley/storyboard/internal/ui/toast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPage maps inputs to canned actions
type stubPage struct {
	body      string
	renderErr error
	actions   map[string]domain.Action
	inputErr  error
	inputs    []string
}

func (p *stubPage) Title() string             { return "Stub" }
func (p *stubPage) Render() (string, error)   { return p.body, p.renderErr }
func (p *stubPage) ShortHelp() []key.Binding  { return nil }
func (p *stubPage) FullHelp() [][]key.Binding { return nil }
func (p *stubPage) HandleInput(in string) (domain.Action, error) {
	p.inputs = append(p.inputs, in)
	if p.inputErr != nil {
		return nil, p.inputErr
	}
	return p.actions[in], nil
}

func typeLine(s *Screen, line string) tea.Cmd {
	s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(line)})
	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestScreen_SubmitAction(t *testing.T) {
	page := &stubPage{body: "page body", actions: map[string]domain.Action{"c": domain.CreateEpic{}}}
	s := NewScreen(page, nil, nil)

	cmd := typeLine(s, " c ")
	assert.True(t, isQuit(cmd))
	assert.Equal(t, domain.CreateEpic{}, s.Action())
	assert.Equal(t, []string{"c"}, page.inputs)
}

func TestScreen_UnknownInputStays(t *testing.T) {
	page := &stubPage{body: "page body"}
	s := NewScreen(page, nil, nil)

	cmd := typeLine(s, "zz")
	assert.False(t, isQuit(cmd))
	assert.Nil(t, s.Action())
	assert.Contains(t, s.View(), `unknown command "zz"`)
	assert.Equal(t, "", s.input.Value(), "input cleared after submit")
}

func TestScreen_EmptyLineIgnored(t *testing.T) {
	page := &stubPage{}
	s := NewScreen(page, nil, nil)

	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Empty(t, page.inputs)
}

func TestScreen_InputErrorShownAsToast(t *testing.T) {
	page := &stubPage{inputErr: &domain.NotFoundError{Kind: domain.KindEpic, ID: 4}}
	s := NewScreen(page, nil, nil)

	cmd := typeLine(s, "7")
	assert.False(t, isQuit(cmd))
	assert.Contains(t, s.View(), "epic 4 not found")
}

func TestScreen_RenderErrorShownInPlace(t *testing.T) {
	page := &stubPage{
		body:      "never shown",
		renderErr: errors.New("file store read: i/o failure"),
		actions:   map[string]domain.Action{"p": domain.NavigateToPreviousPage{}},
	}
	s := NewScreen(page, nil, nil)

	require.Error(t, s.RenderErr())
	view := s.View()
	assert.Contains(t, view, "i/o failure")
	assert.NotContains(t, view, "never shown")

	cmd := typeLine(s, "p")
	assert.True(t, isQuit(cmd), "input still works after a render failure")
}

func TestScreen_CtrlCExits(t *testing.T) {
	s := NewScreen(&stubPage{}, nil, nil)

	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, isQuit(cmd))
	assert.Equal(t, domain.Exit{}, s.Action())
}

func TestScreen_ToastsClearedOnInput(t *testing.T) {
	s := NewScreen(&stubPage{body: "body"}, []toast.Toast{toast.FromError(errors.New("failed to delete epic: boom"))}, nil)
	assert.Contains(t, s.View(), "failed to delete epic: boom")

	s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotContains(t, s.View(), "failed to delete epic")
}

func TestScreen_ViewShowsStatusBar(t *testing.T) {
	s := NewScreen(&stubPage{body: "body"}, nil, nil)
	s.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	view := s.View()
	assert.Contains(t, view, "body")
	assert.Contains(t, view, "STUB")
	assert.Contains(t, view, "> ")
}
