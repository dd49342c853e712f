package components

import "strings"

// ConfirmDialog renders a yes/no confirmation.
func (f Frame) ConfirmDialog(title, message string, width int) string {
	body := f.muted.Render(SanitizeText(message)) + "\n\n" + f.muted.Render("y: confirm | n: cancel")
	return f.ActiveTitledBox(title, body, width)
}

// ConfirmPreviewDialog renders a confirmation listing the changes it would
// discard or apply.
func (f Frame) ConfirmPreviewDialog(title, message string, diffs []DiffRow, width int) string {
	sections := make([]string, 0, 3)
	if message != "" {
		sections = append(sections, f.muted.Render(SanitizeText(message)))
	}
	if len(diffs) > 0 {
		sections = append(sections, f.DiffTable("Changes", diffs, width))
	}
	sections = append(sections, f.muted.Render("y: confirm | n: cancel"))
	return f.TitledBox(title, strings.Join(sections, "\n\n"), width)
}
