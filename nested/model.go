package nested

import (
	"fmt"

	"github.com/signadot/go-nested/attrpath"
	"github.com/signadot/go-nested/event"
	"github.com/signadot/go-nested/ir"
	"github.com/signadot/go-nested/record"
)

// Model is an observable record with nested attributes. Its zero value is
// not usable, use New.
type Model struct {
	rec     *record.Record
	loose   bool
	bridges map[string]*bridge
}

// assignment is one path and value of a Set.
type assignment struct {
	path  attrpath.Path
	value *ir.Node
}

func New(opts ...ModelOption) *Model {
	o := &modelOpts{}
	for _, f := range opts {
		f(o)
	}
	m := &Model{loose: o.loose, bridges: map[string]*bridge{}}
	m.rec = record.New(append(o.record, record.WithOwner(m))...)
	return m
}

// NewFrom returns a model whose attributes are set from attrs, as with
// SetAttrs, without raising events.
func NewFrom(attrs any, opts ...ModelOption) (*Model, error) {
	m := New(opts...)
	if err := m.SetAttrs(attrs, Silent()); err != nil {
		return nil, err
	}
	return m, nil
}

// resolve parses p, which must not be empty. A leading index addresses the
// top level attribute named by its decimal form.
func resolve(p any) (attrpath.Path, error) {
	path, err := attrpath.ResolveNonEmpty(p)
	if err != nil {
		return nil, err
	}
	if path[0].IsIndex() {
		path = attrpath.New(attrpath.Field(path[0].Key())).Concat(path.Rest())
	}
	return path, nil
}

// Export returns a deep copy of the attributes in which embedded models are
// replaced by their own exports.
func (m *Model) Export() *ir.Node {
	return export(m.rec.Attributes())
}

func export(n *ir.Node) *ir.Node {
	if n == nil {
		return nil
	}
	switch n.Type {
	case ir.RecordType:
		if n.Record == nil {
			return ir.Null()
		}
		return n.Record.Export()
	case ir.ObjectType:
		res := ir.NewObject()
		for i, f := range n.Fields {
			res.SetField(f.String, export(n.Values[i]))
		}
		return res
	case ir.ArrayType:
		res := &ir.Node{Type: ir.ArrayType, Values: make([]*ir.Node, len(n.Values))}
		for i, v := range n.Values {
			res.Values[i] = export(v)
		}
		return res
	}
	return n.Clone()
}

// ToJSON returns a deep copy of the attributes. Embedded models are kept as
// such.
func (m *Model) ToJSON() *ir.Node {
	return m.rec.Attributes().Clone()
}

func (m *Model) MarshalJSON() ([]byte, error) {
	return m.Export().MarshalJSON()
}

func (m *Model) MarshalYAML() ([]byte, error) {
	return m.Export().MarshalYAML()
}

// Get returns a copy of the value at p, or nil when there is none. Paths
// which cross an embedded model continue in that model.
func (m *Model) Get(p any) *ir.Node {
	path, err := resolve(p)
	if err != nil {
		return nil
	}
	return m.get(path).Clone()
}

func (m *Model) get(path attrpath.Path) *ir.Node {
	cur := m.rec.Get(path[0].Key())
	for i := 1; i < len(path); i++ {
		if child := asModel(cur); child != nil {
			return child.get(path[i:])
		}
		cur = entry(cur, path[i])
		if cur == nil {
			return nil
		}
	}
	return cur
}

// Child returns the embedded model at p, or nil.
func (m *Model) Child(p any) *Model {
	path, err := resolve(p)
	if err != nil {
		return nil
	}
	return asModel(m.get(path))
}

// Has reports whether the value at p is present and not null.
func (m *Model) Has(p any) bool {
	path, err := resolve(p)
	if err != nil {
		return false
	}
	return ir.Present(m.get(path))
}

// Set sets the value at p, a path string or an attrpath.Path, to v. v is
// anything ir.FromAny accepts, and is copied.
//
// When an embedded model lies on p before its last segment, the rest of p is
// set on that model instead.
func (m *Model) Set(p any, v any, opts ...SetOption) error {
	path, err := resolve(p)
	if err != nil {
		return err
	}
	val, err := ir.FromAny(v)
	if err != nil {
		return err
	}
	return m.apply([]assignment{{path: path, value: val}}, newSetOpts(opts))
}

// SetAttrs sets each field of the object attrs, keyed by path strings, as a
// single mutation. attrs is an object *ir.Node, a map[string]any or an
// ordered yaml.MapSlice.
func (m *Model) SetAttrs(attrs any, opts ...SetOption) error {
	obj, err := ir.FromAny(attrs)
	if err != nil {
		return err
	}
	if obj.Type != ir.ObjectType {
		return fmt.Errorf("%w: got %s", record.ErrNotObj, obj.Type)
	}
	items := make([]assignment, 0, len(obj.Fields))
	for i, f := range obj.Fields {
		path, err := resolve(f.String)
		if err != nil {
			return err
		}
		items = append(items, assignment{path: path, value: obj.Values[i]})
	}
	return m.apply(items, newSetOpts(opts))
}

// Unset deletes the value at p: a top level attribute is removed, a nested
// one is set to null.
func (m *Model) Unset(p any, opts ...SetOption) error {
	return m.Set(p, nil, append(opts, Unset())...)
}

// Add appends v to the array at p.
func (m *Model) Add(p any, v any, opts ...SetOption) error {
	path, err := resolve(p)
	if err != nil {
		return err
	}
	cur := m.get(path)
	if cur == nil || cur.Type != ir.ArrayType {
		return fmt.Errorf("%w: %s", ErrNotAnArray, path)
	}
	return m.Set(path.Append(attrpath.Index(len(cur.Values))), v, opts...)
}

// Remove removes the array element at p, shifting the later elements down,
// then raises "remove:<array path>" with the removed element. Nothing is
// raised when the index is out of range.
func (m *Model) Remove(p any, opts ...SetOption) error {
	path, err := resolve(p)
	if err != nil {
		return err
	}
	attrs := m.rec.Attributes().Clone()
	if child, rest := findChild(attrs, path); child != nil {
		return child.Remove(rest, opts...)
	}
	parent := path.Parent()
	arr := lookup(attrs, parent)
	if len(parent) == 0 || arr == nil || arr.Type != ir.ArrayType {
		return fmt.Errorf("%w: parent of %s", ErrNotAnArray, path)
	}
	last := path.Last()
	if !last.IsIndex() {
		return fmt.Errorf("%w: %s does not end with an index", attrpath.ErrInvalidPath, path)
	}
	o := newSetOpts(opts)
	trigger := !o.silent && last.Index < len(arr.Values)
	old, _ := arr.Splice(last.Index)
	if err := m.applyTo(attrs, []assignment{{path: parent, value: arr.Clone()}}, o); err != nil {
		return err
	}
	if trigger {
		m.rec.Trigger(event.New(event.Remove, parent, m, old))
	}
	return nil
}

func (m *Model) apply(items []assignment, o *setOpts) error {
	return m.applyTo(m.rec.Attributes().Clone(), items, o)
}

// applyTo merges items into attrs, a copy of the attributes, and installs
// the result.
func (m *Model) applyTo(attrs *ir.Node, items []assignment, o *setOpts) error {
	for _, it := range items {
		if err := checkIndices(it.path); err != nil {
			return err
		}
	}
	m.rec.ClearChanged()
	buf := &delayedTriggers{}
	unset := ir.NewObject()
	// only the top level attributes written are installed, so that writes
	// made by handlers during the merge to other attributes are kept.
	install := ir.NewObject()
	for _, it := range items {
		if child, rest := findChild(attrs, it.path); child != nil {
			if err := child.apply([]assignment{{path: rootKey(rest), value: it.value}}, o); err != nil {
				return err
			}
			continue
		}
		if o.unset && len(it.path) == 1 {
			unset.SetField(it.path[0].Key(), ir.Null())
			continue
		}
		src, err := BuildAttr(it.path, it.value)
		if err != nil {
			return err
		}
		mg := &merger{model: m, opts: o, delayed: buf, leafDepth: len(it.path)}
		mg.merge(attrs, src, nil)
		key := it.path[0].Key()
		install.SetField(key, ir.Get(attrs, key))
	}
	if err := m.rec.Set(install, o.recordOpts()...); err != nil {
		return err
	}
	if len(unset.Fields) != 0 {
		if err := m.rec.Set(unset, append(o.recordOpts(), record.Unset())...); err != nil {
			return err
		}
	}
	buf.flush(m)
	m.updateBridges()
	return nil
}

func rootKey(p attrpath.Path) attrpath.Path {
	if len(p) == 0 || !p[0].IsIndex() {
		return p
	}
	return attrpath.New(attrpath.Field(p[0].Key())).Concat(p.Rest())
}

// findChild returns the first embedded model met on p before its last
// segment, with the part of p below it.
func findChild(attrs *ir.Node, p attrpath.Path) (*Model, attrpath.Path) {
	cur := attrs
	for i := 0; i < len(p)-1; i++ {
		cur = entry(cur, p[i])
		if cur == nil {
			return nil, nil
		}
		if child := asModel(cur); child != nil {
			return child, p[i+1:]
		}
	}
	return nil, nil
}

func asModel(n *ir.Node) *Model {
	if n == nil || n.Type != ir.RecordType {
		return nil
	}
	m, _ := n.Record.(*Model)
	return m
}

// present reports whether an array element counts as present for add and
// remove events.
func (m *Model) present(n *ir.Node) bool {
	if m.loose {
		return ir.Truth(n) || (n != nil && n.Type.IsComposite())
	}
	return ir.Present(n)
}

func (m *Model) ID() string {
	return m.rec.ID()
}

func (m *Model) On(name string, h event.Handler) *event.Subscription {
	return m.rec.On(name, h)
}

func (m *Model) Off(sub *event.Subscription) {
	m.rec.Off(sub)
}

// Trigger raises e on the model. A nil Source is set to the model.
func (m *Model) Trigger(e *event.Event) {
	m.rec.Trigger(e)
}

// Changed returns the values written by the last mutation, keyed by path
// string. Top level keys are recorded by the underlying record, nested
// paths by the merge.
func (m *Model) Changed() *ir.Node {
	return m.rec.Changed().Clone()
}

// HasChanged reports whether the last mutation wrote the value at p.
func (m *Model) HasChanged(p any) bool {
	path, err := resolve(p)
	if err != nil {
		return false
	}
	return m.rec.HasChanged(path.String())
}
