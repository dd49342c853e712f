package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TableColumn defines a single column for Grid.
//
// Width is the visual width of the column content (excluding separators).
// The last column absorbs any slack so rows fill tableWidth exactly.
type TableColumn struct {
	Header string
	Width  int
	Align  lipgloss.Position
}

const gridLeftOffset = 2

// Grid renders rows under a header rule, highlighting activeRow. Pass -1 to
// disable highlighting. Every returned line has visual width tableWidth.
func (f Frame) Grid(columns []TableColumn, rows [][]string, tableWidth, activeRow int) string {
	if tableWidth <= 0 {
		return ""
	}
	if len(columns) == 0 {
		return padRight("", tableWidth)
	}

	border := lipgloss.RoundedBorder()
	cols := fitGridColumns(columns, border.Left, tableWidth)

	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.Header
	}
	out := []string{
		f.gridRow(cols, headers, border.Left, tableWidth, true, false),
		f.gridRule(cols, border.Middle, border.Top, tableWidth),
	}
	for i, row := range rows {
		out = append(out, f.gridRow(cols, row, border.Left, tableWidth, false, i == activeRow))
	}
	return strings.Join(out, "\n")
}

func fitGridColumns(columns []TableColumn, sep string, tableWidth int) []TableColumn {
	fitted := make([]TableColumn, len(columns))
	copy(fitted, columns)

	sepW := max(lipgloss.Width(sep), 1)
	contentWidth := max(tableWidth-gridLeftOffset, len(fitted))

	sum := 0
	for i := range fitted {
		fitted[i].Width = max(fitted[i].Width, 1)
		sum += fitted[i].Width
	}
	// n columns => n-1 separators, no outer border.
	expected := sum + (len(fitted)-1)*sepW
	last := len(fitted) - 1
	fitted[last].Width = max(fitted[last].Width+contentWidth-expected, 1)
	return fitted
}

func (f Frame) gridRow(columns []TableColumn, cells []string, sep string, tableWidth int, header, active bool) string {
	sepStyle := f.gridLine
	if active {
		sepStyle = f.gridActiveSep
	}
	sepStyled := sepStyle.Inline(true).Render(sep)

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", gridLeftOffset))
	for i, col := range columns {
		if i > 0 {
			b.WriteString(sepStyled)
		}
		text := ""
		if i < len(cells) {
			text = cells[i]
		}
		cell := gridCell(text, col.Width, col.Align)
		switch {
		case header:
			cell = f.label.Inline(true).Render(cell)
		case active:
			cell = f.gridActive.Inline(true).Render(cell)
		default:
			cell = f.value.Inline(true).Render(cell)
		}
		b.WriteString(cell)
	}
	return padRight(b.String(), tableWidth)
}

func (f Frame) gridRule(columns []TableColumn, cross, horiz string, tableWidth int) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", gridLeftOffset))
	for i, col := range columns {
		b.WriteString(strings.Repeat(horiz, col.Width))
		if i < len(columns)-1 {
			b.WriteString(cross)
		}
	}
	return f.gridLine.Inline(true).Render(padRight(b.String(), tableWidth))
}

func gridCell(text string, width int, align lipgloss.Position) string {
	clamped := ClampTextWidth(text, width)
	pad := width - lipgloss.Width(clamped)
	if pad <= 0 {
		return clamped
	}
	switch align {
	case lipgloss.Right:
		return strings.Repeat(" ", pad) + clamped
	case lipgloss.Center:
		left := pad / 2
		return strings.Repeat(" ", left) + clamped + strings.Repeat(" ", pad-left)
	default:
		return clamped + strings.Repeat(" ", pad)
	}
}
