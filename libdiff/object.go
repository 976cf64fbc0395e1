package libdiff

import (
	"github.com/signadot/go-nested/attrpath"
	"github.com/signadot/go-nested/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// diffObject diffs the field name sequences of from and to. Deleted names
// are unset, inserted ones set, and the values of common names are diffed
// recursively.
func diffObject(p attrpath.Path, from, to *ir.Node, ops *[]Op) {
	fieldMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapFieldsTo(fieldMap, runeMap, from)
	toRunes := mapFieldsTo(fieldMap, runeMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	var sets []Op
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for _, r := range diff.Text {
				name := runeMap[r]
				// a field moved later in the object is not deleted
				if !to.HasField(name) {
					*ops = append(*ops, Op{Kind: OpUnset, Path: p.Append(attrpath.Field(name))})
				}
				fi++
			}
		case diffpatch.DiffEqual:
			for _, r := range diff.Text {
				diffNode(p.Append(attrpath.Field(runeMap[r])), from.Values[fi], to.Values[ti], ops)
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for _, r := range diff.Text {
				name := runeMap[r]
				fp := p.Append(attrpath.Field(name))
				if fv := ir.Get(from, name); fv != nil {
					diffNode(fp, fv, to.Values[ti], &sets)
				} else {
					sets = append(sets, Op{Kind: OpSet, Path: fp, Value: to.Values[ti].Clone()})
				}
				ti++
			}
		}
	}
	*ops = append(*ops, sets...)
}

func mapFieldsTo(m map[string]rune, im map[rune]string, node *ir.Node) []rune {
	rs := make([]rune, len(node.Fields))
	for i := range node.Fields {
		f := node.Fields[i].String
		r, ok := m[f]
		if !ok {
			r = rune(len(m))
			m[f] = r
			im[r] = f
		}
		rs[i] = r
	}
	return rs
}
