package components

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

func boxWidth(width int) int {
	// Use ~70% of terminal width, capped at 80
	if width <= 0 {
		return 0
	}
	w := width * 70 / 100
	if w < 40 {
		w = 40
	}
	if w > 80 {
		w = 80
	}
	return w
}

func safeBoxWidth(width int) int {
	if width <= 0 {
		return boxWidth(width)
	}
	w := boxWidth(width)
	if w > width {
		return width
	}
	return w
}

// BoxContentWidth returns the inner content width excluding border and padding.
func BoxContentWidth(width int) int {
	w := safeBoxWidth(width)
	if w <= 0 {
		return 0
	}
	// Border adds 2, padding adds 4 (left+right).
	inner := w - 6
	if inner < 0 {
		return 0
	}
	return inner
}

// ClampTextWidth truncates text to the given visual width (ANSI-aware).
func ClampTextWidth(text string, width int) string {
	if width <= 0 {
		return text
	}
	cleaned := SanitizeOneLine(text)
	if lipgloss.Width(cleaned) <= width {
		return cleaned
	}
	if width == 1 {
		return "…"
	}
	return truncateRunes(cleaned, width-1) + "…"
}

// Box renders content inside a bordered box.
func (f Frame) Box(content string, width int) string {
	return f.box.Width(safeBoxWidth(width)).Render(content)
}

// ErrorBox renders a bordered box for errors.
func (f Frame) ErrorBox(title, message string, width int) string {
	header := ""
	if title != "" {
		header = f.errHeader.Render(title) + "\n\n"
	}
	body := f.errBody.Render(SanitizeText(message))
	return f.errBorder.Width(safeBoxWidth(width)).Render(header + body)
}

// TitledBox renders a box with the title set into its top border.
func (f Frame) TitledBox(title, content string, width int) string {
	return f.titled(title, content, width, f.box, f.header, f.Palette.Border)
}

// ActiveTitledBox is TitledBox drawn with the highlight border.
func (f Frame) ActiveTitledBox(title, content string, width int) string {
	return f.titled(title, content, width, f.boxActive, f.header, f.Palette.Primary)
}

func (f Frame) titled(title, content string, width int, boxStyle, headerStyle lipgloss.Style, borderColor lipgloss.Color) string {
	boxed := boxStyle.Width(safeBoxWidth(width)).Render(content)
	if title == "" {
		return boxed
	}
	lines := strings.Split(boxed, "\n")
	lineWidth := lipgloss.Width(lines[0])
	if lineWidth < 4 {
		return boxed
	}

	border := lipgloss.RoundedBorder()
	middleLen := lineWidth - 2
	titleText := fmt.Sprintf(" [ %s ] ", SanitizeOneLine(title))
	if lipgloss.Width(titleText) > middleLen {
		titleText = truncateRunes(titleText, middleLen)
	}

	titleWidth := lipgloss.Width(titleText)
	left := max((middleLen-titleWidth)/2, 0)
	right := max(middleLen-titleWidth-left, 0)

	borderStyle := lipgloss.NewStyle().Foreground(borderColor)
	leftSeg := borderStyle.Render(border.TopLeft + strings.Repeat(border.Top, left))
	rightSeg := borderStyle.Render(strings.Repeat(border.Top, right) + border.TopRight)
	lines[0] = leftSeg + headerStyle.Render(titleText) + rightSeg
	return strings.Join(lines, "\n")
}

func truncateRunes(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	var b strings.Builder
	b.Grow(max)
	n := 0
	for _, r := range s {
		if n >= max {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String()
}

func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// TableRow is a single row in a key-value table.
type TableRow struct {
	Label string
	Value string
}

// Table renders label/value rows with aligned columns inside a titled box.
func (f Frame) Table(title string, rows []TableRow, width int) string {
	if len(rows) == 0 {
		return ""
	}

	maxLabel := 0
	for _, r := range rows {
		maxLabel = max(maxLabel, lipgloss.Width(SanitizeOneLine(r.Label)))
	}

	contentWidth := BoxContentWidth(width)
	if contentWidth <= 0 {
		contentWidth = maxLabel + 24
	}
	labelWidth := min(maxLabel, 24, max(contentWidth/2, 4))
	valueWidth := max(contentWidth-labelWidth-2, 4)

	var b strings.Builder
	for i, r := range rows {
		label := f.label.Render(padRight(ClampTextWidth(r.Label, labelWidth), labelWidth))
		b.WriteString(label + "  " + f.value.Render(ClampTextWidth(r.Value, valueWidth)))
		if i < len(rows)-1 {
			b.WriteString("\n")
		}
	}
	return f.TitledBox(title, b.String(), width)
}

// DiffRow represents a single change with from/to values.
type DiffRow struct {
	Label string
	From  string
	To    string
}

// DiffTable renders from/to pairs as - and + lines.
func (f Frame) DiffTable(title string, rows []DiffRow, width int) string {
	if len(rows) == 0 {
		return ""
	}

	renderValue := func(style lipgloss.Style, prefix string, value string) string {
		value = SanitizeText(value)
		if value == "" {
			value = "-"
		}
		lines := strings.Split(value, "\n")
		for i, line := range lines {
			if i == 0 {
				lines[i] = style.Render(prefix + line)
			} else {
				lines[i] = style.Render(strings.Repeat(" ", len(prefix)) + line)
			}
		}
		return strings.Join(lines, "\n")
	}

	var b strings.Builder
	for i, r := range rows {
		b.WriteString(f.label.Render(SanitizeOneLine(r.Label)))
		b.WriteString("\n")
		b.WriteString(renderValue(f.removed, "  - ", r.From))
		b.WriteString("\n")
		b.WriteString(renderValue(f.added, "  + ", r.To))
		if i < len(rows)-1 {
			b.WriteString("\n\n")
		}
	}
	return f.TitledBox(title, b.String(), width)
}
