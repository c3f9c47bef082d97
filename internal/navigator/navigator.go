// Package navigator owns the page stack and applies user actions to it.
//
// The stack starts with the home page. Each action either moves between
// pages or runs a database operation after asking the user for input through
// Prompts. The stack becomes empty only on Exit, which tells the host loop
// to stop.
package navigator

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/riordanpawley/storyboard/internal/domain"
	"github.com/riordanpawley/storyboard/internal/ui/pages"
)

// Prompts collects input from the user. Every method blocks until the user
// answers. Returning domain.ErrUserCanceled aborts the action without error.
type Prompts interface {
	CollectEpic() (domain.Epic, error)
	CollectStory() (domain.Story, error)
	// SelectStatus returns nil when the user made no selection
	SelectStatus() (*domain.Status, error)
	ConfirmDeletion(kind domain.EntityKind) (bool, error)
}

// Navigator applies actions to the page stack
type Navigator struct {
	deps    pages.Deps
	prompts Prompts
	stack   *Stack
	logger  *slog.Logger
}

// New creates a navigator showing the home page
func New(deps pages.Deps, prompts Prompts, logger *slog.Logger) *Navigator {
	if logger == nil {
		logger = slog.Default()
	}
	n := &Navigator{
		deps:    deps,
		prompts: prompts,
		stack:   NewStack(),
		logger:  logger,
	}
	n.stack.Push(pages.NewHome(deps))
	return n
}

// CurrentPage returns the page on top of the stack, or nil once exited
func (n *Navigator) CurrentPage() pages.Page {
	return n.stack.Current()
}

// Depth returns the number of pages on the stack
func (n *Navigator) Depth() int {
	return n.stack.Len()
}

// Done reports whether the stack has been emptied
func (n *Navigator) Done() bool {
	return n.stack.IsEmpty()
}

// HandleAction applies one action. Errors from prompts or the database are
// wrapped with the failed operation; the stack is left as it was.
func (n *Navigator) HandleAction(action domain.Action) error {
	switch a := action.(type) {
	case domain.NavigateToEpicDetail:
		n.stack.Push(pages.NewEpicDetail(n.deps, a.EpicID))
		n.logger.Debug("navigated", "page", "epic", "epic_id", a.EpicID, "depth", n.Depth())

	case domain.NavigateToStoryDetail:
		n.stack.Push(pages.NewStoryDetail(n.deps, a.EpicID, a.StoryID))
		n.logger.Debug("navigated", "page", "story", "epic_id", a.EpicID, "story_id", a.StoryID, "depth", n.Depth())

	case domain.NavigateToPreviousPage:
		n.stack.Pop()
		n.logger.Debug("navigated back", "depth", n.Depth())

	case domain.CreateEpic:
		epic, err := n.prompts.CollectEpic()
		if err != nil {
			return n.promptFailed("create epic", err)
		}
		id, err := n.deps.DB.CreateEpic(epic)
		if err != nil {
			return fmt.Errorf("failed to create epic: %w", err)
		}
		n.logger.Info("epic created", "epic_id", id)

	case domain.CreateStory:
		story, err := n.prompts.CollectStory()
		if err != nil {
			return n.promptFailed("create story", err)
		}
		id, err := n.deps.DB.CreateStory(story, a.EpicID)
		if err != nil {
			return fmt.Errorf("failed to create story: %w", err)
		}
		n.logger.Info("story created", "epic_id", a.EpicID, "story_id", id)

	case domain.UpdateEpicStatus:
		status, err := n.prompts.SelectStatus()
		if err != nil {
			return n.promptFailed("update epic", err)
		}
		if status == nil {
			return nil
		}
		if err := n.deps.DB.UpdateEpicStatus(a.EpicID, *status); err != nil {
			return fmt.Errorf("failed to update epic: %w", err)
		}
		n.logger.Info("epic status updated", "epic_id", a.EpicID, "status", *status)

	case domain.UpdateStoryStatus:
		status, err := n.prompts.SelectStatus()
		if err != nil {
			return n.promptFailed("update story", err)
		}
		if status == nil {
			return nil
		}
		if err := n.deps.DB.UpdateStoryStatus(a.StoryID, *status); err != nil {
			return fmt.Errorf("failed to update story: %w", err)
		}
		n.logger.Info("story status updated", "story_id", a.StoryID, "status", *status)

	case domain.DeleteEpic:
		confirmed, err := n.prompts.ConfirmDeletion(domain.KindEpic)
		if err != nil {
			return n.promptFailed("delete epic", err)
		}
		if !confirmed {
			return nil
		}
		if err := n.deps.DB.DeleteEpic(a.EpicID); err != nil {
			return fmt.Errorf("failed to delete epic: %w", err)
		}
		n.stack.Pop()
		n.logger.Info("epic deleted", "epic_id", a.EpicID, "depth", n.Depth())

	case domain.DeleteStory:
		confirmed, err := n.prompts.ConfirmDeletion(domain.KindStory)
		if err != nil {
			return n.promptFailed("delete story", err)
		}
		if !confirmed {
			return nil
		}
		if err := n.deps.DB.DeleteStory(a.EpicID, a.StoryID); err != nil {
			return fmt.Errorf("failed to delete story: %w", err)
		}
		n.stack.Pop()
		n.logger.Info("story deleted", "epic_id", a.EpicID, "story_id", a.StoryID, "depth", n.Depth())

	case domain.Exit:
		n.stack.Clear()
		n.logger.Debug("exit requested")

	default:
		return fmt.Errorf("unknown action %T", action)
	}
	return nil
}

// promptFailed treats a canceled prompt as no operation
func (n *Navigator) promptFailed(op string, err error) error {
	if errors.Is(err, domain.ErrUserCanceled) {
		n.logger.Debug("prompt canceled", "op", op)
		return nil
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}
