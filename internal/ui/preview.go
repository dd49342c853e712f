package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/uddict/dictation-app/cli/internal/form"
	"github.com/uddict/dictation-app/cli/internal/record"
	"github.com/uddict/dictation-app/cli/internal/ui/components"
)

const previewMinWrap = 20

// renderMarkdown renders md for the terminal with the named glamour style.
// "auto" (or empty) follows the terminal background.
func renderMarkdown(md, style string, width int) (string, error) {
	opts := []glamour.TermRendererOption{
		glamour.WithWordWrap(max(width-4, previewMinWrap)),
	}
	if style == "" || style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}

// labelPath formats a full key path for display, like "Vitals › Bp".
func labelPath(path record.Path) string {
	labels := make([]string, len(path))
	for i, key := range path {
		labels[i] = form.FormatLabel(key)
	}
	return strings.Join(labels, " › ")
}

// changedFields lists the rendered fields whose text differs from the saved
// snapshot.
func changedFields(tree form.Tree, saved *record.Branch) []components.DiffRow {
	var rows []components.DiffRow
	for _, f := range tree.Fields() {
		before := ""
		if v, ok := record.Lookup(saved, f.Path); ok {
			before = record.Text(v)
		}
		if before == f.Text {
			continue
		}
		rows = append(rows, components.DiffRow{
			Label: labelPath(f.Path),
			From:  before,
			To:    f.Text,
		})
	}
	return rows
}
