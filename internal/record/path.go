package record

import "strings"

// Path is the ordered sequence of keys from the root to a node.
type Path []string

// Child returns a new path with key appended. The receiver's backing array is
// never shared with the result.
func (p Path) Child(key string) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, key)
}

// Equal reports whether both paths name the same node.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

func (p Path) String() string {
	return strings.Join(p, ".")
}

// Lookup follows path from b and returns the value it names. The empty path
// names b itself.
func Lookup(b *Branch, path Path) (any, bool) {
	var cur any = b
	for _, key := range path {
		br, ok := cur.(*Branch)
		if !ok || br == nil {
			return nil, false
		}
		if cur, ok = br.Get(key); !ok {
			return nil, false
		}
	}
	return cur, true
}
