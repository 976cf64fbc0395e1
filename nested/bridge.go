package nested

import (
	"maps"
	"slices"

	"github.com/signadot/go-nested/attrpath"
	"github.com/signadot/go-nested/debug"
	"github.com/signadot/go-nested/event"
	"github.com/signadot/go-nested/ir"
)

// bridge re-raises the events of the model stored under a top level key on
// its parent.
type bridge struct {
	child *Model
	sub   *event.Subscription
}

// updateBridges detaches the bridges of keys which no longer hold their
// model and attaches one for each model stored at a key without one.
func (m *Model) updateBridges() {
	attrs := m.rec.Attributes()
	for key, b := range m.bridges {
		if asModel(ir.Get(attrs, key)) == b.child {
			continue
		}
		if debug.Bridge() {
			debug.Logf("bridge %q detached\n", key)
		}
		b.sub.Off()
		delete(m.bridges, key)
	}
	for i, f := range attrs.Fields {
		child := asModel(attrs.Values[i])
		if child == nil || m.bridges[f.String] != nil {
			continue
		}
		m.bridges[f.String] = m.attach(f.String, child)
	}
}

func (m *Model) attach(key string, child *Model) *bridge {
	if debug.Bridge() {
		debug.Logf("bridge %q attached\n", key)
	}
	seg := attrpath.Field(key)
	sub := child.On(event.All, func(e *event.Event) {
		for _, be := range event.Bridge(e, seg) {
			m.rec.Trigger(be)
		}
	})
	return &bridge{child: child, sub: sub}
}

// children returns the bridged models ordered by key.
func (m *Model) children() ([]string, []*Model) {
	keys := slices.Sorted(maps.Keys(m.bridges))
	res := make([]*Model, len(keys))
	for i, k := range keys {
		res[i] = m.bridges[k].child
	}
	return keys, res
}
