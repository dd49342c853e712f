package ui

import (
	"context"
	"strings"

	"github.com/uddict/dictation-app/cli/internal/form"
	"github.com/uddict/dictation-app/cli/internal/record"
	"github.com/uddict/dictation-app/cli/internal/store"
)

// Variant is a note screen flavour: its title and how it treats the record.
type Variant struct {
	Name   string
	Title  string
	Policy form.Policy
}

var (
	// ProgressVariant edits every non-null value.
	ProgressVariant = Variant{Name: "progress", Title: "Progress Notes", Policy: form.ProgressNotes}
	// SOAPVariant is read-only and hides empty values.
	SOAPVariant = Variant{Name: "soap", Title: "SOAP Notes", Policy: form.SOAPNotes}
)

// Variants lists the screens in menu order.
var Variants = []Variant{ProgressVariant, SOAPVariant}

// VariantByName finds a variant by its name, ignoring case.
func VariantByName(name string) (Variant, bool) {
	for _, v := range Variants {
		if strings.EqualFold(v.Name, strings.TrimSpace(name)) {
			return v, true
		}
	}
	return Variant{}, false
}

// Saver persists a snapshot. The screens only ever hand it a snapshot and a
// title.
type Saver interface {
	Save(ctx context.Context, title string, snapshot *record.Branch) (store.Note, error)
}

// NoteStore is the saved-notes backend behind the landing list.
type NoteStore interface {
	Saver
	List(ctx context.Context) ([]store.Summary, error)
	Load(ctx context.Context, id string) (store.Note, error)
	Delete(ctx context.Context, id string) error
}
