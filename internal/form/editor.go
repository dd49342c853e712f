package form

import (
	"errors"
	"fmt"

	"github.com/uddict/dictation-app/cli/internal/record"
)

var (
	// ErrEmptyPath is returned for an edit without a target key.
	ErrEmptyPath = errors.New("edit path is empty")
	// ErrNotBranch is returned when an edit path runs through a leaf.
	ErrNotBranch = errors.New("path runs through a non-branch value")
	// ErrNotLeaf is returned when an edit targets a branch.
	ErrNotLeaf = errors.New("edit target is a section, not a field")
	// ErrUnknownKey is returned when an edit names a key that does not exist.
	ErrUnknownKey = record.ErrUnknownKey
)

// Apply returns a new snapshot with the leaf at path set to value. Only the
// branches along path are copied; every other subtree is shared with
// snapshot. The value is stored as given.
func Apply(snapshot *record.Branch, path record.Path, value any) (*record.Branch, error) {
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}
	return apply(snapshot, path, 0, value)
}

func apply(b *record.Branch, path record.Path, i int, value any) (*record.Branch, error) {
	key := path[i]
	current, ok := b.Get(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q at %s", ErrUnknownKey, key, path[:i+1])
	}
	if i == len(path)-1 {
		if record.ShapeOf(current) == record.ShapeBranch {
			return nil, fmt.Errorf("%w: %s", ErrNotLeaf, path)
		}
		return b.With(key, value)
	}
	child, ok := current.(*record.Branch)
	if !ok || child == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotBranch, path[:i+1])
	}
	next, err := apply(child, path, i+1, value)
	if err != nil {
		return nil, err
	}
	return b.With(key, next)
}

// Editor holds the working snapshot of a record for one screen.
type Editor struct {
	initial  *record.Branch
	saved    *record.Branch
	current  *record.Branch
	revision int
}

// NewEditor seeds an editor with the ingested record.
func NewEditor(initial *record.Branch) *Editor {
	if initial == nil {
		initial = record.NewBranch()
	}
	return &Editor{initial: initial, saved: initial, current: initial}
}

// Snapshot returns the current immutable snapshot.
func (e *Editor) Snapshot() *record.Branch {
	return e.current
}

// Apply replaces the leaf at path. On error the snapshot is unchanged.
func (e *Editor) Apply(path record.Path, value any) error {
	next, err := Apply(e.current, path, value)
	if err != nil {
		return err
	}
	e.current = next
	e.revision++
	return nil
}

// Revision counts accepted edits.
func (e *Editor) Revision() int {
	return e.revision
}

// Dirty reports whether the snapshot changed since it was seeded or last
// marked saved.
func (e *Editor) Dirty() bool {
	return e.current != e.saved
}

// MarkSaved records the current snapshot as persisted.
func (e *Editor) MarkSaved(snapshot *record.Branch) {
	e.saved = snapshot
}

// Initial returns the snapshot the editor was seeded with.
func (e *Editor) Initial() *record.Branch {
	return e.initial
}

// Saved returns the snapshot last marked saved.
func (e *Editor) Saved() *record.Branch {
	return e.saved
}
