package record

import (
	"context"
	"errors"
	"fmt"

	"github.com/signadot/go-nested/attrpath"
	"github.com/signadot/go-nested/event"
	"github.com/signadot/go-nested/ir"
	"github.com/signadot/go-nested/store"
)

const IDAttribute = "id"

var (
	ErrNoStore = errors.New("record has no store")
	ErrNoID    = errors.New("record has no id")
	ErrNotObj  = errors.New("attributes must be an object")
)

// Record is a flat observable record. It is not safe for concurrent use.
type Record struct {
	id    string
	owner any

	attrs   *ir.Node
	changed *ir.Node
	hub     *event.Hub
	store   store.Store
}

func New(opts ...Option) *Record {
	r := &Record{
		attrs:   ir.NewObject(),
		changed: ir.NewObject(),
		hub:     event.NewHub(),
	}
	for _, f := range opts {
		f(r)
	}
	return r
}

func (r *Record) source() any {
	if r.owner != nil {
		return r.owner
	}
	return r
}

// ID returns the configured id, or the string form of the "id" attribute.
func (r *Record) ID() string {
	if r.id != "" {
		return r.id
	}
	v := ir.Get(r.attrs, IDAttribute)
	if v == nil {
		return ""
	}
	switch v.Type {
	case ir.StringType:
		return v.String
	case ir.NumberType:
		d, _ := v.MarshalJSON()
		return string(d)
	}
	return ""
}

// Get returns the value of a top-level attribute, or nil. The result is
// live: callers must not modify it.
func (r *Record) Get(key string) *ir.Node {
	return ir.Get(r.attrs, key)
}

// Has reports whether the attribute is present and not null.
func (r *Record) Has(key string) bool {
	return ir.Present(r.Get(key))
}

// Attributes returns the live attribute object. Callers must not modify it.
func (r *Record) Attributes() *ir.Node {
	return r.attrs
}

// Set assigns each field of the object attrs to the top-level attribute of
// the same name, or deletes it with Unset. Set takes ownership of the values
// in attrs.
//
// After all assignments, unless Silent, "change:<key>" is raised for each
// key whose value changed, in the order of attrs, then "change" once.
func (r *Record) Set(attrs *ir.Node, opts ...SetOption) error {
	if attrs == nil {
		return nil
	}
	if attrs.Type != ir.ObjectType {
		return fmt.Errorf("%w: got %s", ErrNotObj, attrs.Type)
	}
	o := newSetOpts(opts)
	if !o.keepChanged {
		r.changed = ir.NewObject()
	}
	var changes []string
	for i, f := range attrs.Fields {
		key := f.String
		val := attrs.Values[i]
		cur := ir.Get(r.attrs, key)
		if o.unset {
			if _, ok := r.attrs.DeleteField(key); ok {
				changes = append(changes, key)
				r.changed.SetField(key, ir.Null())
			}
			continue
		}
		if cur != nil && ir.Equal(cur, val) {
			continue
		}
		r.attrs.SetField(key, val)
		changes = append(changes, key)
		r.changed.SetField(key, val)
	}
	if o.silent || len(changes) == 0 {
		return nil
	}
	src := r.source()
	for _, key := range changes {
		r.hub.Emit(event.New(event.Change, attrpath.New(attrpath.Field(key)), src, ir.Get(r.attrs, key)))
	}
	r.hub.Emit(event.New(event.Change, nil, src, nil))
	return nil
}

// SetKey is Set of a single attribute.
func (r *Record) SetKey(key string, v *ir.Node, opts ...SetOption) error {
	obj := ir.NewObject()
	obj.SetField(key, v)
	return r.Set(obj, opts...)
}

// Unset deletes the top-level attribute key.
func (r *Record) Unset(key string, opts ...SetOption) error {
	return r.SetKey(key, ir.Null(), append(opts, Unset())...)
}

// Changed returns the attributes changed by the last Set, keyed by path.
func (r *Record) Changed() *ir.Node {
	return r.changed
}

// ClearChanged starts a new change set.
func (r *Record) ClearChanged() {
	r.changed = ir.NewObject()
}

// MarkChanged records v under path in Changed.
func (r *Record) MarkChanged(path string, v *ir.Node) {
	r.changed.SetField(path, v)
}

// HasChanged reports whether path was changed by the last Set.
func (r *Record) HasChanged(path string) bool {
	return r.changed.HasField(path)
}

func (r *Record) On(name string, h event.Handler) *event.Subscription {
	return r.hub.On(name, h)
}

func (r *Record) Off(sub *event.Subscription) {
	r.hub.Off(sub)
}

// Trigger dispatches e to the record's handlers. A nil Source is set to the
// record's owner.
func (r *Record) Trigger(e *event.Event) {
	if e.Source == nil {
		e.Source = r.source()
	}
	r.hub.Emit(e)
}

// Persistent reports whether the record has a store.
func (r *Record) Persistent() bool {
	return r.store != nil
}

func (r *Record) storeID() (string, error) {
	if r.store == nil {
		return "", ErrNoStore
	}
	id := r.ID()
	if id == "" {
		return "", ErrNoID
	}
	return id, nil
}

// Save writes doc, or the attributes when doc is nil, to the store and
// raises "sync".
func (r *Record) Save(ctx context.Context, doc *ir.Node) error {
	id, err := r.storeID()
	if err != nil {
		return err
	}
	if doc == nil {
		doc = r.attrs.Clone()
	}
	if err := r.store.Write(ctx, id, doc); err != nil {
		r.Trigger(&event.Event{Kind: event.Error, Err: err})
		return fmt.Errorf("could not save %q: %w", id, err)
	}
	r.Trigger(event.New(event.Sync, nil, nil, nil))
	return nil
}

// Load reads the stored attributes without applying them.
func (r *Record) Load(ctx context.Context) (*ir.Node, error) {
	id, err := r.storeID()
	if err != nil {
		return nil, err
	}
	doc, err := r.store.Read(ctx, id)
	if err != nil {
		r.Trigger(&event.Event{Kind: event.Error, Err: err})
		return nil, fmt.Errorf("could not fetch %q: %w", id, err)
	}
	if doc.Type != ir.ObjectType {
		return nil, fmt.Errorf("could not fetch %q: %w, got %s", id, ErrNotObj, doc.Type)
	}
	return doc, nil
}

// Fetch reads the stored attributes, sets them, and raises "sync".
func (r *Record) Fetch(ctx context.Context) error {
	doc, err := r.Load(ctx)
	if err != nil {
		return err
	}
	if err := r.Set(doc); err != nil {
		return err
	}
	r.Trigger(event.New(event.Sync, nil, nil, nil))
	return nil
}

// Destroy deletes the stored attributes and raises "destroy". A record
// without a store, or never stored (no id), only raises "destroy".
func (r *Record) Destroy(ctx context.Context) error {
	id := r.ID()
	if r.store != nil && id != "" {
		if err := r.store.Delete(ctx, id); err != nil && !errors.Is(err, store.ErrNotFound) {
			r.Trigger(&event.Event{Kind: event.Error, Err: err})
			return fmt.Errorf("could not destroy %q: %w", id, err)
		}
	}
	r.Trigger(event.New(event.Destroy, nil, nil, nil))
	return nil
}
