package ir

import (
	"testing"
)

func TestCloneIsolation(t *testing.T) {
	rec := &fakeRecord{attrs: NewObject()}
	orig := MustFromAny(map[string]any{
		"a": map[string]any{"b": []any{1, 2}},
	})
	orig.SetField("r", FromRecord(rec))
	c := orig.Clone()
	Get(Get(c, "a"), "b").SetIndex(0, FromString("changed"))
	if got := Get(Get(orig, "a"), "b").Index(0); !Equal(got, FromInt(1)) {
		t.Errorf("original mutated through clone: %v", ToAny(got))
	}
	if Get(c, "r").Record != rec {
		t.Error("record handle should be shared by clones")
	}
}

func TestObjectFields(t *testing.T) {
	obj := NewObject()
	obj.SetField("b", FromInt(1))
	obj.SetField("a", FromInt(2))
	obj.SetField("b", FromInt(3))
	if got, want := obj.Keys(), []string{"b", "a"}; len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("keys %v, want %v", got, want)
	}
	if !Equal(Get(obj, "b"), FromInt(3)) {
		t.Errorf("b = %v", ToAny(Get(obj, "b")))
	}
	v, ok := obj.DeleteField("b")
	if !ok || !Equal(v, FromInt(3)) {
		t.Errorf("delete b = %v %v", ToAny(v), ok)
	}
	if obj.HasField("b") || obj.Len() != 1 {
		t.Errorf("b still present: %v", obj.Keys())
	}
}

func TestArraySlots(t *testing.T) {
	arr := NewArray()
	arr.SetIndex(2, FromString("c"))
	if arr.Len() != 3 {
		t.Fatalf("len %d, want 3", arr.Len())
	}
	if arr.Index(0) != nil || arr.Index(1) != nil {
		t.Error("leading slots should be unpopulated")
	}
	if arr.Index(7) != nil || arr.Index(-1) != nil {
		t.Error("out of range index should be nil")
	}
	v, ok := arr.Splice(2)
	if !ok || v.String != "c" || arr.Len() != 2 {
		t.Errorf("splice = %v %v len %d", ToAny(v), ok, arr.Len())
	}
	if _, ok := arr.Splice(5); ok {
		t.Error("out of range splice should report false")
	}
}

func TestTruth(t *testing.T) {
	tests := []struct {
		node *Node
		want bool
	}{
		{nil, false},
		{Null(), false},
		{FromInt(0), false},
		{FromInt(3), true},
		{FromFloat(0), false},
		{FromString(""), false},
		{FromString("x"), true},
		{FromBool(false), false},
		{NewArray(), false},
		{FromRecord(&fakeRecord{}), true},
	}
	for i, tt := range tests {
		if got := Truth(tt.node); got != tt.want {
			t.Errorf("%d: Truth(%v) = %v, want %v", i, ToAny(tt.node), got, tt.want)
		}
	}
}
