package libdiff

import (
	"github.com/signadot/go-nested/attrpath"
	"github.com/signadot/go-nested/ir"
)

type OpKind int

const (
	// OpSet assigns Value at Path.
	OpSet OpKind = iota
	// OpUnset deletes the attribute at Path.
	OpUnset
	// OpRemove removes the array element at Path, shifting later elements.
	OpRemove
)

func (k OpKind) String() string {
	switch k {
	case OpSet:
		return "set"
	case OpUnset:
		return "unset"
	case OpRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// Op is one step of a diff.
type Op struct {
	Kind  OpKind
	Path  attrpath.Path
	Value *ir.Node
}

func (o Op) String() string {
	if o.Kind != OpSet {
		return o.Kind.String() + " " + o.Path.String()
	}
	d, err := o.Value.MarshalJSON()
	if err != nil {
		d = []byte("?")
	}
	return o.Kind.String() + " " + o.Path.String() + " " + string(d)
}
