// Package app runs the interactive loop: show the current page, pass the
// chosen action to the navigator, and repeat until the page stack is empty.
package app

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/storyboard/internal/navigator"
	"github.com/riordanpawley/storyboard/internal/ui/styles"
	"github.com/riordanpawley/storyboard/internal/ui/toast"
)

// Runner runs a Bubble Tea model until it quits and returns its final state
type Runner interface {
	Run(model tea.Model) (tea.Model, error)
}

// App drives the navigator from user input
type App struct {
	nav     *navigator.Navigator
	runner  Runner
	styles  *styles.Styles
	logger  *slog.Logger
	pending []toast.Toast
}

// New creates the host loop
func New(nav *navigator.Navigator, runner Runner, s *styles.Styles, logger *slog.Logger) *App {
	if s == nil {
		s = styles.New()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		nav:    nav,
		runner: runner,
		styles: s,
		logger: logger,
	}
}

// Run shows pages until the stack is empty. Failed actions are reported on
// the next screen; only a terminal failure ends the loop early.
func (a *App) Run() error {
	for !a.nav.Done() {
		page := a.nav.CurrentPage()
		screen := NewScreen(page, a.pending, a.styles)
		a.pending = nil
		if err := screen.RenderErr(); err != nil {
			a.logger.Warn("page render failed", "page", page.Title(), "error", err)
		}

		final, err := a.runner.Run(screen)
		if err != nil {
			return fmt.Errorf("failed to run screen: %w", err)
		}

		action := final.(*Screen).Action()
		if action == nil {
			continue
		}
		a.logger.Debug("action", "page", page.Title(), "action", fmt.Sprintf("%T", action))

		if err := a.nav.HandleAction(action); err != nil {
			a.logger.Error("action failed", "action", fmt.Sprintf("%T", action), "error", err)
			a.pending = append(a.pending, toast.FromError(err))
		}
	}
	return nil
}

// Pending returns notifications waiting for the next screen
func (a *App) Pending() []toast.Toast {
	return a.pending
}
