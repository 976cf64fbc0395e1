package record

import (
	"github.com/signadot/go-nested/store"
)

type setOpts struct {
	silent      bool
	unset       bool
	keepChanged bool
}

type SetOption func(*setOpts)

// Silent suppresses change events.
func Silent() SetOption {
	return func(o *setOpts) { o.silent = true }
}

// Unset deletes the given keys instead of assigning them.
func Unset() SetOption {
	return func(o *setOpts) { o.unset = true }
}

// KeepChanged keeps the entries already recorded in Changed instead of
// starting a new change set.
func KeepChanged() SetOption {
	return func(o *setOpts) { o.keepChanged = true }
}

func newSetOpts(opts []SetOption) *setOpts {
	o := &setOpts{}
	for _, f := range opts {
		f(o)
	}
	return o
}

type Option func(*Record)

// WithStore sets the store used by Save, Fetch and Destroy.
func WithStore(s store.Store) Option {
	return func(r *Record) { r.store = s }
}

// WithID sets the record id. Without it the "id" attribute is used.
func WithID(id string) Option {
	return func(r *Record) { r.id = id }
}

// WithOwner sets the Source of events raised by the record, for records
// embedded in a richer model.
func WithOwner(owner any) Option {
	return func(r *Record) { r.owner = owner }
}
