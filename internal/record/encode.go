package record

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
)

// MarshalJSON encodes the branch with its keys in order.
func (b *Branch) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeValue(&buf, b, nil); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalIndent encodes the branch in order with indentation.
func MarshalIndent(b *Branch, indent string) ([]byte, error) {
	raw, err := b.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", indent); err != nil {
		return nil, fmt.Errorf("indent record: %w", err)
	}
	return out.Bytes(), nil
}

func encodeValue(buf *bytes.Buffer, v any, stack []*Branch) error {
	switch typed := v.(type) {
	case *Branch:
		if typed == nil {
			buf.WriteString("null")
			return nil
		}
		for _, ancestor := range stack {
			if ancestor == typed {
				return ErrCyclic
			}
		}
		stack = append(stack, typed)
		buf.WriteByte('{')
		for i, k := range typed.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(k)
			if err != nil {
				return fmt.Errorf("encode key %q: %w", k, err)
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := encodeValue(buf, typed.values[k], stack); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	case []any:
		buf.WriteByte('[')
		for i, item := range typed {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeValue(buf, item, stack); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	}
	if ShapeOf(v) == ShapeUnsupported {
		buf.WriteString("null")
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode value: %w", err)
	}
	buf.Write(data)
	return nil
}
