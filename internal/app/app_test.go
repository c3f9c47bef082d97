package app

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/storyboard/internal/domain"
	"github.com/riordanpawley/storyboard/internal/navigator"
	"github.com/riordanpawley/storyboard/internal/services/database"
	"github.com/riordanpawley/storyboard/internal/store"
	"github.com/riordanpawley/storyboard/internal/ui/pages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedRunner types one line per screen. When the script runs out it
// presses ctrl+c.
type scriptedRunner struct {
	lines []string
	views []string
	err   error
}

func (r *scriptedRunner) Run(model tea.Model) (tea.Model, error) {
	if r.err != nil {
		return nil, r.err
	}
	s := model.(*Screen)
	s.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	r.views = append(r.views, s.View())

	for s.Action() == nil {
		if len(r.lines) == 0 {
			s.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
			break
		}
		line := r.lines[0]
		r.lines = r.lines[1:]
		typeLine(s, line)
	}
	return s, nil
}

type fakePrompts struct {
	epic    domain.Epic
	story   domain.Story
	status  domain.Status
	confirm bool
	err     error
}

func (p *fakePrompts) CollectEpic() (domain.Epic, error)   { return p.epic, p.err }
func (p *fakePrompts) CollectStory() (domain.Story, error) { return p.story, p.err }
func (p *fakePrompts) SelectStatus() (*domain.Status, error) {
	s := p.status
	return &s, p.err
}
func (p *fakePrompts) ConfirmDeletion(domain.EntityKind) (bool, error) { return p.confirm, p.err }

func setupApp(t *testing.T, prompts *fakePrompts, runner *scriptedRunner) (*App, *database.Service) {
	t.Helper()
	mem := store.NewMemoryStore(nil)
	require.NoError(t, store.Init(mem))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db := database.NewService(mem, logger)
	nav := navigator.New(pages.Deps{DB: db}, prompts, logger)
	return New(nav, runner, nil, logger), db
}

func TestApp_FullSession(t *testing.T) {
	prompts := &fakePrompts{
		epic:    domain.NewEpic("Alpha", "first epic"),
		story:   domain.NewStory("Beta", "first story"),
		status:  domain.StatusResolved,
		confirm: true,
	}
	runner := &scriptedRunner{lines: []string{
		"c", // create epic 1
		"1", // open it
		"c", // create story 2
		"2", // open it
		"u", // resolve it
		"p", // back to the epic
		"d", // delete the epic, back home
		"q",
	}}
	a, db := setupApp(t, prompts, runner)

	require.NoError(t, a.Run())

	state, err := db.ReadDB()
	require.NoError(t, err)
	assert.Empty(t, state.Epics)
	assert.Empty(t, state.Stories)
	assert.Equal(t, uint32(2), state.LastItemID)
	assert.Empty(t, runner.lines)

	require.Len(t, runner.views, 8)
	assert.Contains(t, runner.views[2], "Alpha", "epic detail after creation")
	assert.Contains(t, runner.views[4], "Beta", "story detail")
	assert.Contains(t, runner.views[5], "RESOLVED", "story detail after update")
}

func TestApp_FailedActionShownOnNextScreen(t *testing.T) {
	prompts := &fakePrompts{err: errors.New("boom")}
	runner := &scriptedRunner{lines: []string{"c", "q"}}
	a, _ := setupApp(t, prompts, runner)

	require.NoError(t, a.Run())

	require.Len(t, runner.views, 2)
	assert.NotContains(t, runner.views[0], "boom")
	assert.Contains(t, runner.views[1], "failed to create epic: boom")
	assert.Empty(t, a.Pending())
}

func TestApp_CtrlCExits(t *testing.T) {
	runner := &scriptedRunner{}
	a, _ := setupApp(t, &fakePrompts{}, runner)

	require.NoError(t, a.Run())
	assert.Len(t, runner.views, 1)
}

func TestApp_RunnerFailureStops(t *testing.T) {
	runner := &scriptedRunner{err: errors.New("no tty")}
	a, _ := setupApp(t, &fakePrompts{}, runner)

	err := a.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no tty")
}

func TestApp_StoreFailureKeepsRunning(t *testing.T) {
	mem := store.NewMemoryStore(nil) // never written: every read fails
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db := database.NewService(mem, logger)
	nav := navigator.New(pages.Deps{DB: db}, &fakePrompts{epic: domain.NewEpic("x", "")}, logger)
	runner := &scriptedRunner{lines: []string{"c", "q"}}

	require.NoError(t, New(nav, runner, nil, logger).Run())

	require.Len(t, runner.views, 2)
	assert.Contains(t, runner.views[0], "i/o failure", "render error shown in place")
	assert.Contains(t, runner.views[1], "failed to create epic")
}
