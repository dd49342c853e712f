package form

import (
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/uddict/dictation-app/cli/internal/record"
)

// MultilineThreshold is the display length above which a field uses a
// multi-line control.
const MultilineThreshold = 100

// NodeKind distinguishes sections from fields.
type NodeKind int

const (
	KindSection NodeKind = iota
	KindField
)

// Node is one element of a rendered tree.
type Node struct {
	Kind  NodeKind
	Key   string
	Label string
	Depth int
	Path  record.Path

	// section
	Children []Node

	// field
	Value     any
	Text      string
	Multiline bool
	Editable  bool
}

// DiagnosticKind classifies non-fatal render findings.
type DiagnosticKind int

const (
	CyclicStructure DiagnosticKind = iota
)

// Diagnostic describes a subtree the renderer skipped.
type Diagnostic struct {
	Kind DiagnosticKind
	Path record.Path
}

func (d Diagnostic) String() string {
	return "skipped self-referential section at " + d.Path.String()
}

// Tree is the result of one render pass over a single snapshot.
type Tree struct {
	Nodes       []Node
	Diagnostics []Diagnostic
}

// Fields returns the leaf fields in display order.
func (t Tree) Fields() []Node {
	var out []Node
	var walk func(nodes []Node)
	walk = func(nodes []Node) {
		for _, n := range nodes {
			if n.Kind == KindField {
				out = append(out, n)
				continue
			}
			walk(n.Children)
		}
	}
	walk(t.Nodes)
	return out
}

// Field finds the field at path.
func (t Tree) Field(path record.Path) (Node, bool) {
	for _, f := range t.Fields() {
		if f.Path.Equal(path) {
			return f, true
		}
	}
	return Node{}, false
}

// Renderer walks a snapshot into a Tree under a policy.
type Renderer struct {
	Policy Policy
	Logger *zap.Logger
}

// NewRenderer builds a renderer. A nil logger discards diagnostics logs.
func NewRenderer(policy Policy, logger *zap.Logger) Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return Renderer{Policy: policy, Logger: logger}
}

func (r Renderer) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}

type cycleEntry struct {
	parent *record.Branch
	key    string
}

type walk struct {
	r      Renderer
	guard  CycleGuard
	seen   map[cycleEntry]struct{}
	report []Diagnostic
}

// Render produces the view tree for snapshot. It never fails: vacuous,
// unsupported and self-referential values are left out.
func (r Renderer) Render(snapshot *record.Branch) Tree {
	if snapshot == nil {
		return Tree{}
	}
	w := &walk{r: r, seen: map[cycleEntry]struct{}{}}
	w.guard.Enter(snapshot)
	nodes := w.entries(snapshot, 0, nil)
	w.guard.Leave()
	return Tree{Nodes: nodes, Diagnostics: w.report}
}

func (w *walk) entries(parent *record.Branch, depth int, path record.Path) []Node {
	var nodes []Node
	for key, value := range parent.All() {
		if n, ok := w.node(parent, key, value, depth, path); ok {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

func (w *walk) node(parent *record.Branch, key string, value any, depth int, path record.Path) (Node, bool) {
	if w.r.Policy.IsVacuous(value) {
		return Node{}, false
	}
	nodePath := path.Child(key)
	label := FormatLabel(key)

	if b, ok := value.(*record.Branch); ok {
		if !w.guard.Admit(b) {
			w.cycle(parent, key, nodePath)
			return Node{}, false
		}
		w.guard.Enter(b)
		children := w.entries(b, depth+1, nodePath)
		w.guard.Leave()
		if len(children) == 0 {
			return Node{}, false
		}
		return Node{
			Kind:     KindSection,
			Key:      key,
			Label:    label,
			Depth:    depth,
			Path:     nodePath,
			Children: children,
		}, true
	}

	text := record.Text(value)
	return Node{
		Kind:      KindField,
		Key:       key,
		Label:     label,
		Depth:     depth,
		Path:      nodePath,
		Value:     value,
		Text:      text,
		Multiline: utf8.RuneCountInString(text) > MultilineThreshold,
		Editable:  w.r.Policy.Editable,
	}, true
}

func (w *walk) cycle(parent *record.Branch, key string, path record.Path) {
	entry := cycleEntry{parent: parent, key: key}
	if _, ok := w.seen[entry]; ok {
		return
	}
	w.seen[entry] = struct{}{}
	w.report = append(w.report, Diagnostic{Kind: CyclicStructure, Path: path})
	w.r.logger().Warn("skipping self-referential section",
		zap.String("path", path.String()),
		zap.String("key", key),
	)
}
