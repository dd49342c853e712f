package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

var testFrame = NewFrame(DefaultPalette())

func maxLineWidth(s string) int {
	w := 0
	for _, line := range strings.Split(s, "\n") {
		w = max(w, lipgloss.Width(line))
	}
	return w
}

func TestBoxWidthBounds(t *testing.T) {
	assert.Equal(t, 40, boxWidth(10))
	assert.Equal(t, 80, boxWidth(200))
	assert.Equal(t, 70, boxWidth(100))
	assert.Equal(t, 0, boxWidth(0))
}

func TestBoxNarrowTerminalClampsWidth(t *testing.T) {
	out := testFrame.TitledBox("Progress Notes", "line", 20)
	assert.LessOrEqual(t, maxLineWidth(out), 20)
}

func TestTitledBoxIncludesTitle(t *testing.T) {
	out := testFrame.TitledBox("My Title", "Content", 80)
	assert.Contains(t, out, "My Title")
	assert.Contains(t, out, "Content")
}

func TestTitledBoxEmptyTitleFallsBack(t *testing.T) {
	out := testFrame.TitledBox("", "Content", 80)
	assert.Contains(t, out, "Content")
	assert.NotContains(t, out, "[")
}

func TestErrorBoxIncludesMessageAndSanitizes(t *testing.T) {
	out := testFrame.ErrorBox("Download Failed", "printer\x1b[2J on fire", 80)
	clean := SanitizeText(out)
	assert.Contains(t, clean, "Download Failed")
	assert.Contains(t, clean, "printer on fire")
	assert.NotContains(t, out, "\x1b[2J")
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "", truncateRunes("hello", 0))
	assert.Equal(t, "he", truncateRunes("hello", 2))
	assert.Equal(t, "你", truncateRunes("你好", 1))
}

func TestClampTextWidthAddsEllipsis(t *testing.T) {
	assert.Equal(t, "short", ClampTextWidth("short", 10))
	assert.Equal(t, "abcd…", ClampTextWidth("abcdefgh", 5))
	assert.Equal(t, "a b", ClampTextWidth("a\nb", 5))
}

// TestTableClampsLongValues ensures table rows stay within the box width.
func TestTableClampsLongValues(t *testing.T) {
	rows := []TableRow{{
		Label: strings.Repeat("Label", 8),
		Value: strings.Repeat("value", 40),
	}}
	out := testFrame.Table("Table", rows, 60)
	assert.LessOrEqual(t, maxLineWidth(out), maxLineWidth(testFrame.Box("x", 60)))
}

func TestDiffTableRendersMultilineValuesAndSanitizes(t *testing.T) {
	out := testFrame.DiffTable("Changes", []DiffRow{{
		Label: "Field\u202e\x1b]0;bad\x07",
		From:  "from1\n\x1b[2Jfrom2",
		To:    "to1\n\u202eto2",
	}}, 60)

	assert.NotContains(t, out, "\x1b]")
	assert.NotContains(t, out, "\u202e")
	assert.NotContains(t, out, "\x1b[2J")

	clean := SanitizeText(out)
	assert.Contains(t, clean, "Changes")
	assert.Contains(t, clean, "- from1")
	assert.Contains(t, clean, "from2")
	assert.Contains(t, clean, "+ to1")
	assert.Contains(t, clean, "to2")
}

func TestDiffTableEmptyValueShowsDash(t *testing.T) {
	clean := SanitizeText(testFrame.DiffTable("Changes", []DiffRow{{Label: "Notes", To: "x"}}, 60))
	assert.Contains(t, clean, "- -")
}

func TestPaletteDrivesBorderColour(t *testing.T) {
	p := DefaultPalette()
	p.Border = "#ff0000"
	f := NewFrame(p)
	assert.Equal(t, lipgloss.Color("#ff0000"), f.box.GetBorderTopForeground())
}
