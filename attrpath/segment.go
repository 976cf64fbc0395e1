package attrpath

import (
	"fmt"
	"strconv"
)

type EntryKind int

const (
	FieldEntry EntryKind = iota
	ArrayEntry
)

func (k EntryKind) String() string {
	switch k {
	case FieldEntry:
		return "field"
	case ArrayEntry:
		return "index"
	default:
		return "unknown"
	}
}

// Segment is one step of a Path: a field name or an array index.
type Segment struct {
	Kind  EntryKind
	Name  string
	Index int
}

// Field returns a name segment.
func Field(name string) Segment {
	return Segment{Kind: FieldEntry, Name: name}
}

// Index returns an index segment. It panics on negative indices.
func Index(i int) Segment {
	if i < 0 {
		panic(fmt.Sprintf("attrpath: negative index %d", i))
	}
	return Segment{Kind: ArrayEntry, Index: i}
}

func (s Segment) IsIndex() bool {
	return s.Kind == ArrayEntry
}

// Key returns the segment as an object key: the name, or the decimal index.
// Indices address object fields when the container is an object, as top
// level attributes always are.
func (s Segment) Key() string {
	if s.Kind == ArrayEntry {
		return strconv.Itoa(s.Index)
	}
	return s.Name
}

// String renders the segment as it appears after the first position of a
// path: "[n]" for indices and ".name" for names.
func (s Segment) String() string {
	if s.Kind == ArrayEntry {
		return "[" + strconv.Itoa(s.Index) + "]"
	}
	return "." + s.Name
}
