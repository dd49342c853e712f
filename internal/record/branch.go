package record

import (
	"fmt"
	"iter"
	"sort"
)

// Branch is an ordered mapping from key to value. Keys are unique and
// insertion order is display order.
//
// A *Branch that has been handed to a snapshot must be treated as immutable:
// use With to derive a changed copy. Set exists for building records.
type Branch struct {
	keys   []string
	values map[string]any
}

// NewBranch returns an empty branch.
func NewBranch() *Branch {
	return &Branch{values: map[string]any{}}
}

// FromMap converts a plain map (and nested maps) into branches. Keys are
// sorted since Go maps carry no order.
func FromMap(data map[string]any) *Branch {
	b := NewBranch()
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		switch typed := data[k].(type) {
		case map[string]any:
			b.Set(k, FromMap(typed))
		default:
			b.Set(k, typed)
		}
	}
	return b
}

// Set appends key or replaces its value in place.
func (b *Branch) Set(key string, value any) *Branch {
	if b.values == nil {
		b.values = map[string]any{}
	}
	if _, ok := b.values[key]; !ok {
		b.keys = append(b.keys, key)
	}
	b.values[key] = value
	return b
}

// Len returns the number of entries.
func (b *Branch) Len() int {
	if b == nil {
		return 0
	}
	return len(b.keys)
}

// Has reports whether key is present.
func (b *Branch) Has(key string) bool {
	if b == nil {
		return false
	}
	_, ok := b.values[key]
	return ok
}

// Get returns the value stored under key.
func (b *Branch) Get(key string) (any, bool) {
	if b == nil {
		return nil, false
	}
	v, ok := b.values[key]
	return v, ok
}

// Keys returns a copy of the keys in order.
func (b *Branch) Keys() []string {
	if b == nil {
		return nil
	}
	return append([]string(nil), b.keys...)
}

// All iterates entries in order.
func (b *Branch) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if b == nil {
			return
		}
		for _, k := range b.keys {
			if !yield(k, b.values[k]) {
				return
			}
		}
	}
}

// Clone returns a shallow copy. Child values are shared.
func (b *Branch) Clone() *Branch {
	if b == nil {
		return NewBranch()
	}
	out := &Branch{
		keys:   append([]string(nil), b.keys...),
		values: make(map[string]any, len(b.values)),
	}
	for k, v := range b.values {
		out.values[k] = v
	}
	return out
}

// With returns a shallow copy of b with key replaced by value. The key must
// already exist; With never adds entries.
func (b *Branch) With(key string, value any) (*Branch, error) {
	if !b.Has(key) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	out := b.Clone()
	out.values[key] = value
	return out, nil
}
