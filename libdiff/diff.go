package libdiff

import (
	"github.com/signadot/go-nested/attrpath"
	"github.com/signadot/go-nested/ir"
)

// Diff returns the operations which, applied in order to from, yield to.
// Objects are compared field by field, arrays element by element, and
// anything else that differs is replaced whole. Diff returns nil when from
// and to are equal.
//
// Embedded records compare by their exported attributes.
func Diff(from, to *ir.Node) []Op {
	var ops []Op
	diffNode(nil, from, to, &ops)
	return ops
}

func diffNode(p attrpath.Path, from, to *ir.Node, ops *[]Op) {
	switch {
	case from == nil && to == nil:
		return
	case to == nil:
		*ops = append(*ops, Op{Kind: OpUnset, Path: p})
		return
	case from == nil || from.Type != to.Type:
		*ops = append(*ops, Op{Kind: OpSet, Path: p, Value: to.Clone()})
		return
	}
	switch from.Type {
	case ir.ObjectType:
		diffObject(p, from, to, ops)
	case ir.ArrayType:
		diffArray(p, from, to, ops)
	case ir.RecordType:
		diffNode(p, export(from), export(to), ops)
	default:
		if !ir.Equal(from, to) {
			*ops = append(*ops, Op{Kind: OpSet, Path: p, Value: to.Clone()})
		}
	}
}

func export(n *ir.Node) *ir.Node {
	if n.Record == nil {
		return ir.Null()
	}
	return n.Record.Export()
}
