package record

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

var (
	// ErrUnknownKey is returned when an operation names a key the branch lacks.
	ErrUnknownKey = errors.New("unknown key")
	// ErrDuplicateKey is returned when a mapping repeats a key.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrCyclic is returned when encoding meets a branch that contains itself.
	ErrCyclic = errors.New("record is self-referential")
	// ErrNotMapping is returned when a document's root is not a mapping.
	ErrNotMapping = errors.New("record root must be a mapping")
	// ErrAliasExpansion is returned when aliases expand a document past
	// MaxExpandedNodes.
	ErrAliasExpansion = errors.New("record expands too far through aliases")
	// ErrMergeSource is returned when a "<<" key does not name a mapping.
	ErrMergeSource = errors.New("merge key must refer to a mapping")
)

// Shape classifies a record value.
type Shape int

const (
	ShapeAbsent Shape = iota
	ShapeScalar
	ShapeList
	ShapeBranch
	ShapeUnsupported
)

func (s Shape) String() string {
	switch s {
	case ShapeAbsent:
		return "absent"
	case ShapeScalar:
		return "scalar"
	case ShapeList:
		return "list"
	case ShapeBranch:
		return "branch"
	default:
		return "unsupported"
	}
}

// ShapeOf reports the shape of v.
func ShapeOf(v any) Shape {
	switch typed := v.(type) {
	case nil:
		return ShapeAbsent
	case *Branch:
		if typed == nil {
			return ShapeAbsent
		}
		return ShapeBranch
	case []any:
		return ShapeList
	case string, bool, json.Number,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return ShapeScalar
	default:
		return ShapeUnsupported
	}
}

// Text renders a leaf value for display. Lists render as "[a, b]", absent and
// unsupported values as "".
func Text(v any) string {
	switch typed := v.(type) {
	case nil:
		return ""
	case string:
		return typed
	case json.Number:
		return typed.String()
	case bool:
		return strconv.FormatBool(typed)
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(typed), 'f', -1, 32)
	case []any:
		parts := make([]string, 0, len(typed))
		for _, item := range typed {
			parts = append(parts, inlineText(item))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *Branch:
		return ""
	}
	if ShapeOf(v) == ShapeScalar {
		return fmt.Sprintf("%d", v)
	}
	return ""
}

func inlineText(v any) string {
	if b, ok := v.(*Branch); ok {
		data, err := b.MarshalJSON()
		if err != nil {
			return "{...}"
		}
		return string(data)
	}
	return Text(v)
}
