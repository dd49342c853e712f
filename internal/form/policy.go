package form

import "github.com/uddict/dictation-app/cli/internal/record"

// Policy configures how a screen treats the record.
type Policy struct {
	// Editable wires leaf fields to the editor.
	Editable bool
	// SuppressEmptyStrings treats "" like an absent value.
	SuppressEmptyStrings bool
}

var (
	// ProgressNotes renders every non-null value and allows edits.
	ProgressNotes = Policy{Editable: true}
	// SOAPNotes is read-only and hides empty strings and all-empty sections.
	SOAPNotes = Policy{SuppressEmptyStrings: true}
	// DocumentPolicy is used when laying out exported documents.
	DocumentPolicy = Policy{SuppressEmptyStrings: true}
)

// IsVacuous reports whether v has nothing to display under p. A branch is
// vacuous when every entry is. Branches already being checked higher up count
// as vacuous, so cyclic input terminates.
func (p Policy) IsVacuous(v any) bool {
	return p.vacuous(v, map[*record.Branch]struct{}{})
}

func (p Policy) vacuous(v any, visiting map[*record.Branch]struct{}) bool {
	switch record.ShapeOf(v) {
	case record.ShapeAbsent, record.ShapeUnsupported:
		return true
	case record.ShapeList:
		return false
	case record.ShapeScalar:
		if s, ok := v.(string); ok && s == "" {
			return p.SuppressEmptyStrings
		}
		return false
	}

	b := v.(*record.Branch)
	if _, ok := visiting[b]; ok {
		return true
	}
	visiting[b] = struct{}{}
	defer delete(visiting, b)
	for _, child := range b.All() {
		if !p.vacuous(child, visiting) {
			return false
		}
	}
	return true
}
