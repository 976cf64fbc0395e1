package nested

import (
	"fmt"

	"github.com/signadot/go-nested/attrpath"
	"github.com/signadot/go-nested/debug"
	"github.com/signadot/go-nested/ir"
	"github.com/signadot/go-nested/libdiff"
	"github.com/signadot/go-nested/record"

	jsonpatch "github.com/evanphx/json-patch"
)

// ApplyPatch applies an RFC 6902 JSON patch to the exported attributes and
// replays the difference on the model with Set, Unset and Remove, so that
// the events raised are those of the equivalent direct mutations. Changes
// under embedded models are set on those models.
//
// The replay is first run silently on a copy of the exported attributes. A
// patch which does not apply, or whose replay fails on the copy, leaves the
// model unchanged.
func (m *Model) ApplyPatch(patch []byte, opts ...SetOption) error {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPatch, err)
	}
	from := m.Export()
	d, err := from.MarshalJSON()
	if err != nil {
		return err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPatch, err)
	}
	to, err := ir.Parse(out)
	if err != nil {
		return err
	}
	if to.Type != ir.ObjectType {
		return fmt.Errorf("%w: patch result: %w, got %s", ErrPatch, record.ErrNotObj, to.Type)
	}
	diff := libdiff.Diff(from, to)
	scratch := New()
	for i, f := range from.Fields {
		if err := scratch.Set(attrpath.New(attrpath.Field(f.String)), from.Values[i], Silent()); err != nil {
			return err
		}
	}
	if err := scratch.replay(diff, []SetOption{Silent()}); err != nil {
		return err
	}
	return m.replay(diff, opts)
}

func (m *Model) replay(diff []libdiff.Op, opts []SetOption) error {
	for _, op := range diff {
		if debug.Merge() {
			debug.Logf("patch %s\n", op)
		}
		var err error
		switch op.Kind {
		case libdiff.OpSet:
			err = m.Set(op.Path, op.Value, opts...)
		case libdiff.OpUnset:
			err = m.Unset(op.Path, opts...)
		case libdiff.OpRemove:
			err = m.Remove(op.Path, opts...)
		}
		if err != nil {
			return fmt.Errorf("could not apply %s: %w", op, err)
		}
	}
	return nil
}
