package ir

import (
	"fmt"
	"slices"
)

// Embedded is the handle held by a RecordType node: a value with its own
// attributes and event surface living inside an attribute tree.
type Embedded interface {
	// Export returns a deep copy of the embedded record's attributes.
	Export() *Node
}

type Node struct {
	Type   Type
	Fields []*Node
	Values []*Node

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64

	Record Embedded
}

// Clone returns a deep copy of y. Embedded record handles are shared with
// the copy, everything else is copied.
func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.Values = nil
	dst.Fields = nil
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
	}
	if y.Fields != nil {
		dst.Fields = make([]*Node, len(y.Fields))
	}
	for i, yv := range y.Values {
		if yv == nil {
			continue
		}
		dst.Values[i] = yv.Clone()
	}
	for i, yf := range y.Fields {
		dst.Fields[i] = yf.Clone()
	}

	dst.String = y.String
	dst.Number = y.Number
	dst.Float64 = nil
	dst.Int64 = nil
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	dst.Bool = y.Bool
	dst.Record = y.Record
	return dst
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func FromRecord(r Embedded) *Node {
	return &Node{
		Type:   RecordType,
		Record: r,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

func NewObject() *Node {
	return &Node{Type: ObjectType, Fields: []*Node{}, Values: []*Node{}}
}

func NewArray() *Node {
	return &Node{Type: ArrayType, Values: []*Node{}}
}

// Get returns the value of field in the object y, or nil.
func Get(y *Node, field string) *Node {
	if y == nil || y.Type != ObjectType {
		return nil
	}
	n := len(y.Fields)
	for i := range n {
		if y.Fields[i].String == field {
			return y.Values[i]
		}
	}
	return nil
}

// FieldIndex returns the position of field in the object y, or -1.
func (y *Node) FieldIndex(field string) int {
	for i := range y.Fields {
		if y.Fields[i].String == field {
			return i
		}
	}
	return -1
}

// HasField reports whether the object y has field, whatever its value.
func (y *Node) HasField(field string) bool {
	return y.FieldIndex(field) != -1
}

// Keys returns the field names of an object in order.
func (y *Node) Keys() []string {
	res := make([]string, len(y.Fields))
	for i, f := range y.Fields {
		res[i] = f.String
	}
	return res
}

// SetField assigns v to field, replacing an existing value in place or
// appending a new field.
func (y *Node) SetField(field string, v *Node) {
	if i := y.FieldIndex(field); i != -1 {
		y.Values[i] = v
		return
	}
	y.Fields = append(y.Fields, FromString(field))
	y.Values = append(y.Values, v)
}

// DeleteField removes field from the object y, returning the removed value.
func (y *Node) DeleteField(field string) (*Node, bool) {
	i := y.FieldIndex(field)
	if i == -1 {
		return nil, false
	}
	v := y.Values[i]
	y.Fields = slices.Delete(y.Fields, i, i+1)
	y.Values = slices.Delete(y.Values, i, i+1)
	return v, true
}

// Index returns the element at i of the array y, or nil when i is out of
// range or the slot is unpopulated.
func (y *Node) Index(i int) *Node {
	if y == nil || y.Type != ArrayType || i < 0 || i >= len(y.Values) {
		return nil
	}
	return y.Values[i]
}

// SetIndex assigns v at i, growing the array with unpopulated slots as
// needed.
func (y *Node) SetIndex(i int, v *Node) {
	if i < 0 {
		panic(fmt.Sprintf("negative index %d", i))
	}
	for len(y.Values) <= i {
		y.Values = append(y.Values, nil)
	}
	y.Values[i] = v
}

// Splice removes the element at i from the array y, returning it. An out of
// range index leaves y unchanged.
func (y *Node) Splice(i int) (*Node, bool) {
	if i < 0 || i >= len(y.Values) {
		return nil, false
	}
	v := y.Values[i]
	y.Values = slices.Delete(y.Values, i, i+1)
	return v, true
}

// Len returns the number of fields of an object or slots of an array.
func (y *Node) Len() int {
	if y == nil {
		return 0
	}
	switch y.Type {
	case ObjectType:
		return len(y.Fields)
	case ArrayType:
		return len(y.Values)
	}
	return 0
}
