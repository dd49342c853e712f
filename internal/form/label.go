package form

import (
	"strings"
	"unicode"
)

// FormatLabel turns a machine key into a display label: underscores become
// spaces and the first letter of every word is upper-cased. A word is a run
// of letters and digits; everything else is left as is.
func FormatLabel(key string) string {
	spaced := strings.ReplaceAll(key, "_", " ")
	var b strings.Builder
	b.Grow(len(spaced))
	inWord := false
	for _, r := range spaced {
		word := unicode.IsLetter(r) || unicode.IsDigit(r)
		if word && !inWord {
			r = unicode.ToUpper(r)
		}
		inWord = word
		b.WriteRune(r)
	}
	return b.String()
}
