package nested

import (
	"fmt"

	"github.com/signadot/go-nested/attrpath"
	"github.com/signadot/go-nested/ir"
)

// MaxIndex is the largest index a path set on a model may hold. Arrays are
// dense, so an index allocates a slot for each position before it.
const MaxIndex = 1 << 20

// checkIndices rejects paths with an index above MaxIndex.
func checkIndices(p attrpath.Path) error {
	for _, seg := range p {
		if seg.IsIndex() && seg.Index > MaxIndex {
			return fmt.Errorf("%w: index %d of %s exceeds %d", attrpath.ErrInvalidPath, seg.Index, p, MaxIndex)
		}
	}
	return nil
}

// BuildAttr returns the smallest tree holding v at p: an array for each
// index segment, with unpopulated slots before the index, and an object for
// each name segment.
//
//	BuildAttr(a.b[1], x) → {"a": {"b": [<unpopulated>, x]}}
//
// A nil v is taken as null. Indices above MaxIndex are rejected with
// attrpath.ErrInvalidPath.
func BuildAttr(p attrpath.Path, v *ir.Node) (*ir.Node, error) {
	if len(p) == 0 {
		return nil, attrpath.ErrEmptyPath
	}
	if err := checkIndices(p); err != nil {
		return nil, err
	}
	if v == nil {
		v = ir.Null()
	}
	val := v
	if len(p) > 1 {
		var err error
		val, err = BuildAttr(p[1:], v)
		if err != nil {
			return nil, err
		}
	}
	seg := p[0]
	if seg.IsIndex() {
		res := ir.NewArray()
		res.SetIndex(seg.Index, val)
		return res, nil
	}
	res := ir.NewObject()
	res.SetField(seg.Name, val)
	return res, nil
}
