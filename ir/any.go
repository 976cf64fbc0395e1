package ir

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"

	"github.com/goccy/go-yaml"
)

// FromAny converts a Go value into a node. It accepts nodes (which are
// cloned), embedded records, nil, booleans, strings, all integer and float
// kinds, json.Number, slices of any, maps with string keys (sorted by key)
// and ordered yaml.MapSlice values.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		if x == nil {
			return Null(), nil
		}
		return x.Clone(), nil
	case Embedded:
		return FromRecord(x), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return fromUint(uint64(x)), nil
	case uint8:
		return FromInt(int64(x)), nil
	case uint16:
		return FromInt(int64(x)), nil
	case uint32:
		return FromInt(int64(x)), nil
	case uint64:
		return fromUint(x), nil
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case json.Number:
		return fromNumberString(string(x)), nil
	case []any:
		res := &Node{Type: ArrayType, Values: make([]*Node, len(x))}
		for i := range x {
			n, err := FromAny(x[i])
			if err != nil {
				return nil, err
			}
			res.Values[i] = n
		}
		return res, nil
	case []*Node:
		res := &Node{Type: ArrayType, Values: make([]*Node, len(x))}
		for i := range x {
			res.Values[i] = x[i].Clone()
		}
		return res, nil
	case map[string]any:
		res := NewObject()
		for _, k := range slices.Sorted(maps.Keys(x)) {
			n, err := FromAny(x[k])
			if err != nil {
				return nil, err
			}
			res.SetField(k, n)
		}
		return res, nil
	case map[string]*Node:
		res := NewObject()
		for _, k := range slices.Sorted(maps.Keys(x)) {
			res.SetField(k, x[k].Clone())
		}
		return res, nil
	case yaml.MapSlice:
		res := NewObject()
		for _, item := range x {
			k, err := keyString(item.Key)
			if err != nil {
				return nil, err
			}
			n, err := FromAny(item.Value)
			if err != nil {
				return nil, err
			}
			res.SetField(k, n)
		}
		return res, nil
	case map[any]any:
		res := NewObject()
		keys := make([]string, 0, len(x))
		vals := make(map[string]any, len(x))
		for k, v := range x {
			ks, err := keyString(k)
			if err != nil {
				return nil, err
			}
			keys = append(keys, ks)
			vals[ks] = v
		}
		slices.Sort(keys)
		for _, k := range keys {
			n, err := FromAny(vals[k])
			if err != nil {
				return nil, err
			}
			res.SetField(k, n)
		}
		return res, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupported, v)
}

// MustFromAny is FromAny that panics on unsupported values; meant for
// literals in tests and examples.
func MustFromAny(v any) *Node {
	n, err := FromAny(v)
	if err != nil {
		panic(err)
	}
	return n
}

func fromUint(u uint64) *Node {
	if u > math.MaxInt64 {
		return &Node{Type: NumberType, Number: strconv.FormatUint(u, 10)}
	}
	return FromInt(int64(u))
}

func fromNumberString(s string) *Node {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return FromInt(i)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return FromFloat(f)
	}
	return &Node{Type: NumberType, Number: s}
}

func keyString(k any) (string, error) {
	switch x := k.(type) {
	case string:
		return x, nil
	case int, int64, uint64, uint, int32, uint32, bool, float64:
		return fmt.Sprint(x), nil
	case nil:
		return "null", nil
	}
	return "", fmt.Errorf("%w: key of type %T", ErrUnsupported, k)
}

// ToAny converts a node into plain Go values: nil, bool, string, int64,
// float64, json.Number, []any and map[string]any. Unpopulated array slots
// become nil and embedded records are exported.
func ToAny(node *Node) any {
	if node == nil {
		return nil
	}
	switch node.Type {
	case NullType:
		return nil
	case BoolType:
		return node.Bool
	case StringType:
		return node.String
	case NumberType:
		if node.Int64 != nil {
			return *node.Int64
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		return json.Number(node.Number)
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			res[i] = ToAny(v)
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(node.Fields))
		for i, f := range node.Fields {
			res[f.String] = ToAny(node.Values[i])
		}
		return res
	case RecordType:
		if node.Record == nil {
			return nil
		}
		return ToAny(node.Record.Export())
	}
	return nil
}

// toYAML is ToAny with objects as ordered yaml.MapSlice values.
func toYAML(node *Node) any {
	if node == nil {
		return nil
	}
	switch node.Type {
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			res[i] = toYAML(v)
		}
		return res
	case ObjectType:
		res := make(yaml.MapSlice, len(node.Fields))
		for i, f := range node.Fields {
			res[i] = yaml.MapItem{Key: f.String, Value: toYAML(node.Values[i])}
		}
		return res
	case RecordType:
		if node.Record == nil {
			return nil
		}
		return toYAML(node.Record.Export())
	}
	return ToAny(node)
}
