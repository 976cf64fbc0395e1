package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/goccy/go-yaml"
)

// MarshalJSON encodes the node as plain JSON, keeping object fields in
// order. Unpopulated array slots encode as null.
func (y *Node) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := writeJSON(buf, y); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (y *Node) UnmarshalJSON(d []byte) error {
	n, err := Parse(d)
	if err != nil {
		return err
	}
	n.CloneTo(y)
	return nil
}

func writeJSON(buf *bytes.Buffer, y *Node) error {
	if y == nil {
		buf.WriteString("null")
		return nil
	}
	switch y.Type {
	case NullType:
		buf.WriteString("null")
	case BoolType:
		buf.WriteString(strconv.FormatBool(y.Bool))
	case NumberType:
		switch {
		case y.Int64 != nil:
			buf.WriteString(strconv.FormatInt(*y.Int64, 10))
		case y.Float64 != nil:
			d, err := json.Marshal(*y.Float64)
			if err != nil {
				return err
			}
			buf.Write(d)
		default:
			buf.WriteString(y.Number)
		}
	case StringType:
		d, err := json.Marshal(y.String)
		if err != nil {
			return err
		}
		buf.Write(d)
	case ArrayType:
		buf.WriteByte('[')
		for i, v := range y.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, v); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case ObjectType:
		buf.WriteByte('{')
		for i, f := range y.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			d, err := json.Marshal(f.String)
			if err != nil {
				return err
			}
			buf.Write(d)
			buf.WriteByte(':')
			if err := writeJSON(buf, y.Values[i]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case RecordType:
		if y.Record == nil {
			buf.WriteString("null")
			return nil
		}
		return writeJSON(buf, y.Record.Export())
	default:
		return fmt.Errorf("%w: type %s", ErrUnsupported, y.Type)
	}
	return nil
}

// Parse decodes a YAML or JSON document into a node, keeping the order of
// object fields. An empty document is null.
func Parse(d []byte) (*Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return FromAny(v)
}

// ParseValue decodes a single scalar or flow literal such as a command line
// argument. Text that is not valid YAML is taken as a plain string.
func ParseValue(s string) *Node {
	n, err := Parse([]byte(s))
	if err != nil {
		return FromString(s)
	}
	return n
}

// MarshalYAML implements yaml.BytesMarshaler.
func (y *Node) MarshalYAML() ([]byte, error) {
	return yaml.Marshal(toYAML(y))
}

// EncodeYAML renders y as YAML, or as indented JSON when asJSON is set.
func EncodeYAML(y *Node, asJSON bool) ([]byte, error) {
	if !asJSON {
		return y.MarshalYAML()
	}
	d, err := y.MarshalJSON()
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	if err := json.Indent(buf, d, "", "  "); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
