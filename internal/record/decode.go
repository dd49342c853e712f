package record

import (
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// MaxExpandedNodes caps how many nodes a record may expand to once every
// alias is followed. Walks over a record visit shared branches once per
// reference, so a small document that fans out through aliases is rejected.
const MaxExpandedNodes = 100_000

// Decode parses a YAML or JSON document into a branch, keeping key order.
// Aliases resolve to the same *Branch, so an alias back to an enclosing
// anchor produces a self-referential record. Merge keys ("<<") are resolved.
// Empty input yields an empty branch.
func Decode(r io.Reader) (*Branch, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read record: %w", err)
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse record: %w", err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return NewBranch(), nil
		}
		root = root.Content[0]
	}
	if root.Kind == 0 {
		return NewBranch(), nil
	}
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return NewBranch(), nil
	}
	d := decoder{built: map[*yaml.Node]*Branch{}, sizes: map[*Branch]int{}}
	v, _, err := d.value(root)
	if err != nil {
		return nil, err
	}
	b, ok := v.(*Branch)
	if !ok {
		return nil, ErrNotMapping
	}
	return b, nil
}

// DecodeFile reads the record stored at path.
func DecodeFile(path string) (*Branch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open record: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

type decoder struct {
	built map[*yaml.Node]*Branch
	// sizes holds the expanded node count of each finished branch.
	sizes map[*Branch]int
}

func (d *decoder) value(n *yaml.Node) (any, int, error) {
	switch n.Kind {
	case yaml.AliasNode:
		if n.Alias == nil {
			return nil, 0, fmt.Errorf("line %d: dangling alias", n.Line)
		}
		if b, ok := d.built[n.Alias]; ok {
			return b, d.sizeOf(b), nil
		}
		return d.value(n.Alias)
	case yaml.MappingNode:
		b, err := d.mapping(n)
		if err != nil {
			return nil, 0, err
		}
		return b, d.sizeOf(b), nil
	case yaml.SequenceNode:
		items := make([]any, 0, len(n.Content))
		size := 1
		for _, child := range n.Content {
			v, childSize, err := d.value(child)
			if err != nil {
				return nil, 0, err
			}
			items = append(items, v)
			size += childSize
			if size > MaxExpandedNodes {
				return nil, 0, fmt.Errorf("line %d: %w", n.Line, ErrAliasExpansion)
			}
		}
		return items, size, nil
	case yaml.ScalarNode:
		v, err := scalar(n)
		if err != nil {
			return nil, 0, err
		}
		return v, 1, nil
	default:
		return nil, 0, fmt.Errorf("line %d: unsupported node", n.Line)
	}
}

// sizeOf counts a branch still under construction as one node, so an alias
// back to an enclosing anchor stays cheap.
func (d *decoder) sizeOf(b *Branch) int {
	if size, ok := d.sizes[b]; ok {
		return size
	}
	return 1
}

// scalar decodes a plain value. Timestamps, binary blobs and non-finite
// floats keep their source text since nothing downstream can show or encode
// the decoded form.
func scalar(n *yaml.Node) (any, error) {
	switch n.ShortTag() {
	case "!!timestamp", "!!binary":
		return n.Value, nil
	}
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, fmt.Errorf("line %d: %w", n.Line, err)
	}
	if f, ok := v.(float64); ok && (math.IsInf(f, 0) || math.IsNaN(f)) {
		return n.Value, nil
	}
	return v, nil
}

func (d *decoder) mapping(n *yaml.Node) (*Branch, error) {
	if b, ok := d.built[n]; ok {
		return b, nil
	}
	b := NewBranch()
	// registered before the children so aliases to an enclosing anchor
	// resolve to this branch
	d.built[n] = b

	explicit := map[string]bool{}
	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode := n.Content[i]
		if keyNode.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: mapping keys must be scalars", keyNode.Line)
		}
		if isMergeKey(keyNode) {
			continue
		}
		if explicit[keyNode.Value] {
			return nil, fmt.Errorf("line %d: %w: %q", keyNode.Line, ErrDuplicateKey, keyNode.Value)
		}
		explicit[keyNode.Value] = true
	}

	size := 1
	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode, valueNode := n.Content[i], n.Content[i+1]
		if isMergeKey(keyNode) {
			added, err := d.merge(b, valueNode, explicit)
			if err != nil {
				return nil, err
			}
			size += added
		} else {
			v, childSize, err := d.value(valueNode)
			if err != nil {
				return nil, err
			}
			b.Set(keyNode.Value, v)
			size += childSize
		}
		if size > MaxExpandedNodes {
			return nil, fmt.Errorf("line %d: %w", n.Line, ErrAliasExpansion)
		}
	}
	d.sizes[b] = size
	return b, nil
}

func isMergeKey(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!merge"
}

// merge copies the entries of the mapping (or list of mappings) behind a
// "<<" key into b. Keys written out in the mapping win, and among several
// sources the first one listed wins. It returns the expanded size added.
func (d *decoder) merge(b *Branch, n *yaml.Node, explicit map[string]bool) (int, error) {
	sources := []*yaml.Node{n}
	if n.Kind == yaml.SequenceNode {
		sources = n.Content
	}
	added := 0
	for _, src := range sources {
		v, _, err := d.value(src)
		if err != nil {
			return 0, err
		}
		from, ok := v.(*Branch)
		if !ok || from == nil {
			return 0, fmt.Errorf("line %d: %w", src.Line, ErrMergeSource)
		}
		if _, done := d.sizes[from]; !done {
			return 0, fmt.Errorf("line %d: %w: merges an enclosing mapping", src.Line, ErrMergeSource)
		}
		for key, value := range from.All() {
			if explicit[key] || b.Has(key) {
				continue
			}
			b.Set(key, value)
			added += d.entrySize(value)
		}
	}
	return added, nil
}

func (d *decoder) entrySize(v any) int {
	switch typed := v.(type) {
	case *Branch:
		return d.sizeOf(typed)
	case []any:
		size := 1
		for _, item := range typed {
			size += d.entrySize(item)
			if size > MaxExpandedNodes {
				return size
			}
		}
		return size
	default:
		return 1
	}
}
