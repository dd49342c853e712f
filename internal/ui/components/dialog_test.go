package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirmDialogIncludesTitleMessageAndHints(t *testing.T) {
	clean := SanitizeText(testFrame.ConfirmDialog("Discard", "Leave without saving?", 60))

	assert.Contains(t, clean, "Discard")
	assert.Contains(t, clean, "Leave without saving?")
	assert.Contains(t, clean, "y: confirm | n: cancel")
}

func TestConfirmPreviewDialogListsChanges(t *testing.T) {
	clean := SanitizeText(testFrame.ConfirmPreviewDialog("Unsaved Changes", "Discard edits?", []DiffRow{
		{Label: "Vitals.Bp", From: "120/80", To: "130/85"},
	}, 80))

	assert.Contains(t, clean, "Unsaved Changes")
	assert.Contains(t, clean, "Discard edits?")
	assert.Contains(t, clean, "Vitals.Bp")
	assert.Contains(t, clean, "- 120/80")
	assert.Contains(t, clean, "+ 130/85")
	assert.Contains(t, clean, "y: confirm | n: cancel")
}
