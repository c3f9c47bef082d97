package pages

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/storyboard/internal/domain"
	"github.com/riordanpawley/storyboard/internal/ui/styles"
)

const cellSeparator = " | "

type column struct {
	title string
	width int
}

// table renders fixed-width rows separated by pipes
type table struct {
	styles  *styles.Styles
	columns []column
	rows    []string
}

func newTable(s *styles.Styles, columns ...column) *table {
	return &table{styles: s, columns: columns}
}

// addRow appends a row. The last cell is treated as a status and colored.
func (t *table) addRow(cells ...string) {
	parts := make([]string, len(t.columns))
	for i, col := range t.columns {
		var text string
		if i < len(cells) {
			text = cells[i]
		}
		parts[i] = Column(text, col.width)
	}
	t.rows = append(t.rows, strings.Join(parts, cellSeparator))
}

func (t *table) addStatusRow(status domain.Status, cells ...string) {
	t.addRow(append(cells, status.Label())...)
	last := len(t.rows) - 1
	idx := strings.LastIndex(t.rows[last], cellSeparator)
	if idx < 0 {
		return
	}
	head, tail := t.rows[last][:idx+len(cellSeparator)], t.rows[last][idx+len(cellSeparator):]
	t.rows[last] = head + t.styles.Status(status).Render(tail)
}

func (t *table) render() string {
	headers := make([]string, len(t.columns))
	for i, col := range t.columns {
		headers[i] = Column(col.title, col.width)
	}

	lines := []string{
		t.styles.TableHeader.Render(strings.Join(headers, cellSeparator)),
		t.styles.TableDivider.Render(strings.Repeat("-", t.width())),
	}
	lines = append(lines, t.rows...)
	return strings.Join(lines, "\n")
}

// banner renders a section title centered in a rule of the table's width
func banner(s *styles.Styles, title string, width int) string {
	label := " " + title + " "
	if width <= lipgloss.Width(label) {
		return s.SectionRule.Render(label)
	}
	pad := width - lipgloss.Width(label)
	left := pad / 2
	return s.SectionRule.Render(strings.Repeat("-", left) + label + strings.Repeat("-", pad-left))
}

func (t *table) width() int {
	total := 0
	for _, col := range t.columns {
		total += col.width
	}
	return total + len(cellSeparator)*(len(t.columns)-1)
}
