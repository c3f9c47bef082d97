package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/storyboard/internal/domain"
)

// Styles holds all the UI styles
type Styles struct {
	// Pages
	PageTitle    lipgloss.Style
	SectionRule  lipgloss.Style
	TableHeader  lipgloss.Style
	TableRow     lipgloss.Style
	TableDivider lipgloss.Style
	EntityID     lipgloss.Style
	Description  lipgloss.Style
	Empty        lipgloss.Style

	// Input line
	Prompt lipgloss.Style
	Input  lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusMode lipgloss.Style
	StatusHint lipgloss.Style

	// Forms and dialogs
	Overlay          lipgloss.Style
	OverlayTitle     lipgloss.Style
	MenuItem         lipgloss.Style
	MenuItemActive   lipgloss.Style
	MenuKey          lipgloss.Style
	Separator        lipgloss.Style
	Footer           lipgloss.Style
	FieldLabel       lipgloss.Style
	FieldLabelActive lipgloss.Style

	// Toasts
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style
}

// New creates a new Styles instance with Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		PageTitle: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true).
			MarginBottom(1),

		SectionRule: lipgloss.NewStyle().
			Foreground(Mauve).
			Bold(true),

		TableHeader: lipgloss.NewStyle().
			Foreground(Subtext0).
			Bold(true),

		TableRow: lipgloss.NewStyle().
			Foreground(Text),

		TableDivider: lipgloss.NewStyle().
			Foreground(Surface2),

		EntityID: lipgloss.NewStyle().
			Foreground(Overlay1).
			Bold(true),

		Description: lipgloss.NewStyle().
			Foreground(Subtext1),

		Empty: lipgloss.NewStyle().
			Foreground(Overlay0).
			Italic(true),

		Prompt: lipgloss.NewStyle().
			Foreground(Yellow).
			Bold(true),

		Input: lipgloss.NewStyle().
			Foreground(Text),

		StatusBar: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Subtext0).
			Padding(0, 1),

		StatusMode: lipgloss.NewStyle().
			Background(Blue).
			Foreground(Base).
			Bold(true).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(Overlay1),

		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface2).
			Padding(1, 2),

		OverlayTitle: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true).
			MarginBottom(1),

		MenuItem: lipgloss.NewStyle().
			Foreground(Text),

		MenuItemActive: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true),

		MenuKey: lipgloss.NewStyle().
			Foreground(Yellow).
			Bold(true),

		Separator: lipgloss.NewStyle().
			Foreground(Surface1),

		Footer: lipgloss.NewStyle().
			Foreground(Subtext0).
			MarginTop(1),

		FieldLabel: lipgloss.NewStyle().
			Foreground(Teal).
			Width(13).
			Align(lipgloss.Right),

		FieldLabelActive: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true).
			Width(13).
			Align(lipgloss.Right),

		ToastInfo: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Blue).
			Foreground(Blue).
			Padding(0, 1),

		ToastSuccess: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Green).
			Foreground(Green).
			Padding(0, 1),

		ToastWarning: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Yellow).
			Foreground(Yellow).
			Padding(0, 1),

		ToastError: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Red).
			Foreground(Red).
			Padding(0, 1),
	}
}

// Status returns the foreground style for a status label
func (s *Styles) Status(status domain.Status) lipgloss.Style {
	color, ok := StatusColors[status]
	if !ok {
		color = Red
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true)
}
