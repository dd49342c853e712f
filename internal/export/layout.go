package export

import (
	"strings"

	"github.com/uddict/dictation-app/cli/internal/form"
	"github.com/uddict/dictation-app/cli/internal/record"
)

// line is one printable row of a document page.
type line struct {
	depth   int
	heading bool
	label   string
	text    string
}

// layout flattens a record into document rows using the document policy, so
// empty fields and sections never reach a page.
func layout(rec *record.Branch) []line {
	tree := form.NewRenderer(form.DocumentPolicy, nil).Render(rec)
	var out []line
	var walk func(nodes []form.Node)
	walk = func(nodes []form.Node) {
		for _, n := range nodes {
			if n.Kind == form.KindSection {
				out = append(out, line{depth: n.Depth, heading: true, label: n.Label})
				walk(n.Children)
				continue
			}
			out = append(out, line{depth: n.Depth, label: n.Label, text: n.Text})
		}
	}
	walk(tree.Nodes)
	return out
}

// Slug turns a document title into a file name stem.
func Slug(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if b.Len() > 0 && !dash {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	out := strings.TrimSuffix(b.String(), "-")
	if out == "" {
		return "document"
	}
	return out
}

// wrap splits text into rows of at most width runes, breaking on spaces
// where possible.
func wrap(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}
	var rows []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			rows = append(rows, "")
			continue
		}
		cur := ""
		for _, w := range words {
			for len([]rune(w)) > width {
				if cur != "" {
					rows = append(rows, cur)
					cur = ""
				}
				runes := []rune(w)
				rows = append(rows, string(runes[:width]))
				w = string(runes[width:])
			}
			switch {
			case cur == "":
				cur = w
			case len([]rune(cur))+1+len([]rune(w)) <= width:
				cur += " " + w
			default:
				rows = append(rows, cur)
				cur = w
			}
		}
		if cur != "" {
			rows = append(rows, cur)
		}
	}
	return rows
}
