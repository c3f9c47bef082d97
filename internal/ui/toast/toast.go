// Package toast renders short notification banners below a page.
package toast

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/storyboard/internal/ui/styles"
)

// Level indicates the severity of a toast
type Level int

const (
	Info Level = iota
	Success
	Warning
	Error
)

// Toast is a notification message
type Toast struct {
	Level   Level
	Message string
}

// FromError is shorthand for an error toast built from err
func FromError(err error) Toast {
	return Toast{Level: Error, Message: err.Error()}
}

const maxWidth = 72

// Renderer handles rendering of toast notifications
type Renderer struct {
	styles *styles.Styles
}

// New creates a new Renderer with the given styles
func New(s *styles.Styles) *Renderer {
	if s == nil {
		s = styles.New()
	}
	return &Renderer{styles: s}
}

// Render stacks toasts vertically. Width zero leaves them unwrapped.
// Returns empty string if no toasts to display.
func (r *Renderer) Render(toasts []Toast, width int) string {
	if len(toasts) == 0 {
		return ""
	}

	toastWidth := width
	if toastWidth > maxWidth {
		toastWidth = maxWidth
	}

	rendered := make([]string, 0, len(toasts))
	for _, t := range toasts {
		style := r.styleForLevel(t.Level)
		if toastWidth > 0 {
			style = style.Width(toastWidth)
		}
		rendered = append(rendered, style.Render(t.Message))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}

// styleForLevel returns the appropriate style for a toast level
func (r *Renderer) styleForLevel(level Level) lipgloss.Style {
	switch level {
	case Success:
		return r.styles.ToastSuccess
	case Warning:
		return r.styles.ToastWarning
	case Error:
		return r.styles.ToastError
	default:
		return r.styles.ToastInfo
	}
}
