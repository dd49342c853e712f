package export

import (
	"fmt"
	"strings"
)

// Markdown renders the document as markdown: sections become headings and
// fields become bold-labelled list items.
func Markdown(doc Document) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", doc.Title)
	listOpen := false
	for _, l := range layout(doc.Record) {
		if l.heading {
			level := min(l.depth+2, 6)
			fmt.Fprintf(&b, "\n%s %s\n", strings.Repeat("#", level), l.label)
			listOpen = false
			continue
		}
		if !listOpen {
			b.WriteString("\n")
			listOpen = true
		}
		text := strings.ReplaceAll(l.text, "\n", "\n  ")
		fmt.Fprintf(&b, "- **%s:** %s\n", l.label, text)
	}
	return b.String()
}
