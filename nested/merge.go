package nested

import (
	"github.com/signadot/go-nested/attrpath"
	"github.com/signadot/go-nested/debug"
	"github.com/signadot/go-nested/event"
	"github.com/signadot/go-nested/ir"
)

// merger folds a tree built by BuildAttr into a copy of the attributes.
type merger struct {
	model   *Model
	opts    *setOpts
	delayed *delayedTriggers
	// leafDepth is the length of the path being set. Containers shallower
	// than it were made by BuildAttr, deeper ones are part of the value.
	leafDepth int
}

// merge merges src into dst, which must have the same type, and returns dst.
// stack is the path of dst.
//
// For each populated entry of src:
//
//   - an array merged into a non array starts from a new empty array
//   - composites of the same type are merged recursively; arrays which are
//     part of the value set are then truncated to the length of the source
//   - anything else is assigned. When dst is an array, an element becoming
//     present queues "add:<stack>" and one becoming absent raises
//     "remove:<stack>".
//
// Below the top level every entry then raises "change:<path>".
func (mg *merger) merge(dst, src *ir.Node, stack attrpath.Path) *ir.Node {
	eachEntry(src, func(seg attrpath.Segment, srcVal *ir.Node) {
		newStack := stack.Append(seg)
		destVal := entry(dst, seg)

		if srcVal.Type == ir.ArrayType && (destVal == nil || destVal.Type != ir.ArrayType) {
			destVal = ir.NewArray()
			putEntry(dst, seg, destVal)
		}

		if destVal != nil && srcVal.Type.IsComposite() && destVal.Type == srcVal.Type {
			destVal = mg.merge(destVal, srcVal, newStack)
			if srcVal.Type == ir.ArrayType && len(newStack) >= mg.leafDepth {
				mg.truncate(destVal, len(srcVal.Values), newStack)
			}
		} else {
			oldVal := destVal
			destVal = srcVal
			putEntry(dst, seg, destVal)
			if debug.Merge() {
				debug.Logf("merge %s: %s -> %s\n", newStack, debug.Node{Node: oldVal}, debug.Node{Node: destVal})
			}
			if dst.Type == ir.ArrayType && !mg.opts.silent {
				was, is := mg.model.present(oldVal), mg.model.present(destVal)
				switch {
				case !was && is:
					mg.delayed.push(event.New(event.Add, stack, mg.model, destVal))
				case was && !is:
					mg.model.rec.Trigger(event.New(event.Remove, stack, mg.model, oldVal))
				}
			}
		}

		if !mg.opts.silent && len(newStack) > 1 {
			mg.model.rec.Trigger(event.New(event.Change, newStack, mg.model, destVal))
			mg.model.rec.MarkChanged(newStack.String(), destVal)
		}
	})
	return dst
}

// truncate drops the elements of arr from n on, raising "remove:<p>" for
// each present one.
func (mg *merger) truncate(arr *ir.Node, n int, p attrpath.Path) {
	if len(arr.Values) <= n {
		return
	}
	if debug.Merge() {
		debug.Logf("merge %s: truncate %d -> %d\n", p, len(arr.Values), n)
	}
	dropped := arr.Values[n:]
	arr.Values = arr.Values[:n:n]
	if mg.opts.silent {
		return
	}
	for _, v := range dropped {
		if mg.model.present(v) {
			mg.model.rec.Trigger(event.New(event.Remove, p, mg.model, v))
		}
	}
}

// eachEntry calls f for the fields of an object in order, or for the
// populated slots of an array.
func eachEntry(n *ir.Node, f func(attrpath.Segment, *ir.Node)) {
	switch n.Type {
	case ir.ObjectType:
		for i, field := range n.Fields {
			f(attrpath.Field(field.String), n.Values[i])
		}
	case ir.ArrayType:
		for i, v := range n.Values {
			if v == nil {
				continue
			}
			f(attrpath.Index(i), v)
		}
	}
}

// entry returns the value of n at seg, or nil. Index segments address the
// fields of objects by their decimal form.
func entry(n *ir.Node, seg attrpath.Segment) *ir.Node {
	if n == nil {
		return nil
	}
	switch n.Type {
	case ir.ObjectType:
		return ir.Get(n, seg.Key())
	case ir.ArrayType:
		if seg.IsIndex() {
			return n.Index(seg.Index)
		}
	}
	return nil
}

func putEntry(n *ir.Node, seg attrpath.Segment, v *ir.Node) {
	switch n.Type {
	case ir.ObjectType:
		n.SetField(seg.Key(), v)
	case ir.ArrayType:
		n.SetIndex(seg.Index, v)
	}
}

// lookup walks p from n without crossing embedded models.
func lookup(n *ir.Node, p attrpath.Path) *ir.Node {
	for _, seg := range p {
		n = entry(n, seg)
		if n == nil {
			return nil
		}
	}
	return n
}
