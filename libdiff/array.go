package libdiff

import (
	"strconv"
	"strings"

	"github.com/signadot/go-nested/attrpath"
	"github.com/signadot/go-nested/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// diffArray diffs arrays by index.
//
//  1. arrays of equal length are diffed element by element
//  2. otherwise the sequences of element summaries are diffed. When the
//     result only deletes elements, or only appends them, the deletions
//     become removes (last first) and the appends become sets past the
//     end; the remaining elements are diffed pairwise.
//  3. any other change replaces the whole array
func diffArray(p attrpath.Path, from, to *ir.Node, ops *[]Op) {
	if len(from.Values) == len(to.Values) {
		for i := range from.Values {
			diffNode(p.Append(attrpath.Index(i)), from.Values[i], to.Values[i], ops)
		}
		return
	}
	m := map[string]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	var removed, appended []int
	var pairs [][2]int
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		n := len([]rune(diff.Text))
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range n {
				removed = append(removed, fi)
				fi++
			}
		case diffpatch.DiffEqual:
			for range n {
				pairs = append(pairs, [2]int{fi, ti})
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			if fi != len(from.Values) {
				replaceArray(p, to, ops)
				return
			}
			for range n {
				appended = append(appended, ti)
				ti++
			}
		}
	}
	if len(removed) != 0 && len(appended) != 0 {
		replaceArray(p, to, ops)
		return
	}
	for i := len(removed) - 1; i >= 0; i-- {
		*ops = append(*ops, Op{Kind: OpRemove, Path: p.Append(attrpath.Index(removed[i]))})
	}
	for _, pr := range pairs {
		diffNode(p.Append(attrpath.Index(pr[1])), from.Values[pr[0]], to.Values[pr[1]], ops)
	}
	for _, t := range appended {
		*ops = append(*ops, Op{Kind: OpSet, Path: p.Append(attrpath.Index(t)), Value: to.Values[t].Clone()})
	}
}

func replaceArray(p attrpath.Path, to *ir.Node, ops *[]Op) {
	*ops = append(*ops, Op{Kind: OpSet, Path: p, Value: to.Clone()})
}

func mapValues(m map[string]rune, node *ir.Node) []rune {
	rs := make([]rune, len(node.Values))
	for i, v := range node.Values {
		sum := summaryStr(v)
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

// summaryStr identifies scalars by value and composites by type only, so
// that composites at matching positions are diffed rather than replaced.
func summaryStr(node *ir.Node) string {
	if node == nil {
		return "absent"
	}
	switch node.Type {
	case ir.ObjectType, ir.ArrayType, ir.NullType, ir.RecordType:
		return node.Type.String()
	case ir.BoolType:
		return node.Type.String() + "-" + strconv.FormatBool(node.Bool)
	case ir.StringType:
		if strings.Contains(node.String, "\n") {
			return node.Type.String() + "/m-" + node.String
		}
		return node.Type.String() + "-" + node.String
	case ir.NumberType:
		if node.Int64 != nil {
			return node.Type.String() + "-i-" + strconv.FormatInt(*node.Int64, 10)
		}
		if node.Float64 != nil {
			return node.Type.String() + "-f-" + strconv.FormatFloat(*node.Float64, 'f', -1, 64)
		}
		return node.Type.String() + "-" + node.Number
	default:
		return "?"
	}
}
