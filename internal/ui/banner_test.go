package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uddict/dictation-app/cli/internal/ui/components"
)

func TestSplitLinesSplitsOnNewlines(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, splitLines("a\nb\nc"))
	assert.Equal(t, []string{"a", "b"}, splitLines("\na\nb"))
}

func TestRenderBannerIncludesSubtitleAndNoOSC(t *testing.T) {
	out := RenderBanner(DefaultStyles())
	assert.NotContains(t, out, "\x1b]")

	clean := components.SanitizeText(out)
	assert.Contains(t, clean, "Dictated Clinical Notes")
	assert.Contains(t, clean, "Command-Line Interface")
	assert.Contains(t, clean, "─")
}
