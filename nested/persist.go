package nested

import (
	"context"
	"errors"
	"fmt"

	"github.com/signadot/go-nested/attrpath"
	"github.com/signadot/go-nested/event"
)

// Persistent reports whether the model has a store.
func (m *Model) Persistent() bool {
	return m.rec.Persistent()
}

// Save stores the exported attributes, embedded models inline, then saves
// every embedded model. Embedded models without a store are not written
// themselves but their own embedded models are saved. Embedded models are
// saved even when the parent fails; all errors are returned joined.
func (m *Model) Save(ctx context.Context) error {
	return m.save(ctx, true)
}

func (m *Model) save(ctx context.Context, root bool) error {
	var err error
	if root || m.Persistent() {
		err = m.rec.Save(ctx, m.Export())
	}
	return errors.Join(err, m.eachChild(func(c *Model) error { return c.save(ctx, false) }))
}

// Fetch sets the stored attributes, except those of keys holding an embedded
// model, raises "sync", then fetches every embedded model. Embedded models
// without a store keep their attributes.
func (m *Model) Fetch(ctx context.Context) error {
	return m.fetchTree(ctx, true)
}

func (m *Model) fetchTree(ctx context.Context, root bool) error {
	var err error
	if root || m.Persistent() {
		err = m.fetch(ctx)
	}
	return errors.Join(err, m.eachChild(func(c *Model) error { return c.fetchTree(ctx, false) }))
}

func (m *Model) fetch(ctx context.Context) error {
	doc, err := m.rec.Load(ctx)
	if err != nil {
		return err
	}
	items := make([]assignment, 0, len(doc.Fields))
	for i, f := range doc.Fields {
		if _, ok := m.bridges[f.String]; ok {
			continue
		}
		items = append(items, assignment{path: attrpath.New(attrpath.Field(f.String)), value: doc.Values[i]})
	}
	if err := m.apply(items, &setOpts{}); err != nil {
		return err
	}
	m.rec.Trigger(event.New(event.Sync, nil, nil, nil))
	return nil
}

// Destroy deletes the stored attributes, if any, and raises "destroy", then
// destroys every embedded model.
func (m *Model) Destroy(ctx context.Context) error {
	err := m.rec.Destroy(ctx)
	return errors.Join(err, m.eachChild(func(c *Model) error { return c.Destroy(ctx) }))
}

func (m *Model) eachChild(f func(*Model) error) error {
	keys, children := m.children()
	var errs []error
	for i, c := range children {
		if err := f(c); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", keys[i], err))
		}
	}
	return errors.Join(errs...)
}
