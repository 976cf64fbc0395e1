package ir

import (
	"testing"
)

type fakeRecord struct{ attrs *Node }

func (f *fakeRecord) Export() *Node { return f.attrs.Clone() }

func arr(vs ...*Node) *Node {
	res := NewArray()
	res.Values = append(res.Values, vs...)
	return res
}

// obj builds an object from alternating keys and values.
func obj(kvs ...any) *Node {
	res := NewObject()
	for i := 0; i+1 < len(kvs); i += 2 {
		res.SetField(kvs[i].(string), kvs[i+1].(*Node))
	}
	return res
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Node
		expected int
	}{
		// Type Ranking: Null < Bool < Number < String < Array < Object
		{"Null < Bool", &Node{Type: NullType}, FromBool(false), -1},
		{"Bool < Number", FromBool(true), FromInt(1), -1},
		{"Number < String", FromInt(1), FromString("a"), -1},
		{"String < Array", FromString("a"), arr(), -1},
		{"Array < Object", arr(), obj(), -1},

		// Bool Comparison
		{"false < true", FromBool(false), FromBool(true), -1},
		{"true > false", FromBool(true), FromBool(false), 1},
		{"true == true", FromBool(true), FromBool(true), 0},

		// Number Comparison: Int < Float < String
		{"Int < Float", FromInt(1), FromFloat(1.0), -1},
		{"Float < StringNum", FromFloat(1.0), &Node{Type: NumberType, Number: "1"}, -1},
		{"Int < Int", FromInt(1), FromInt(2), -1},
		{"Float < Float", FromFloat(1.0), FromFloat(2.0), -1},

		{"String < String", FromString("a"), FromString("b"), -1},

		// Array Comparison
		{"Empty Array == Empty Array", arr(), arr(), 0},
		{"Short Array < Long Array", arr(FromInt(1)), arr(FromInt(1), FromInt(2)), -1},
		{"Array Element Comparison", arr(FromInt(1)), arr(FromInt(2)), -1},
		{"Unpopulated Slot < Value", arr(nil), arr(Null()), -1},

		// Object Comparison
		{"Empty Object == Empty Object", obj(), obj(), 0},
		{"Short Object < Long Object",
			obj("a", FromInt(1)),
			obj("a", FromInt(1), "b", FromInt(2)),
			-1},
		{"Object Key Comparison",
			obj("a", FromInt(1)),
			obj("b", FromInt(1)),
			-1},
		{"Object Value Comparison",
			obj("a", FromInt(1)),
			obj("a", FromInt(2)),
			-1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare() = %v, want %v", got, tt.expected)
			}
			// Test symmetry
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("Compare(b, a) = %v, want %v", got, -tt.expected)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	r := &fakeRecord{attrs: MustFromAny(map[string]any{"x": 1})}
	other := &fakeRecord{attrs: MustFromAny(map[string]any{"x": 1})}
	if !Equal(nil, nil) {
		t.Error("nil should equal nil")
	}
	if Equal(nil, Null()) {
		t.Error("absent should not equal null")
	}
	if !Equal(FromRecord(r), FromRecord(r)) {
		t.Error("same record should be equal")
	}
	if Equal(FromRecord(r), FromRecord(other)) {
		t.Error("distinct records should not be equal")
	}
	a := MustFromAny(map[string]any{"a": []any{1, "x", map[string]any{"b": true}}})
	if !Equal(a, a.Clone()) {
		t.Error("clone should be equal")
	}
}
