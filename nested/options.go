package nested

import (
	"github.com/signadot/go-nested/record"
	"github.com/signadot/go-nested/store"
)

type setOpts struct {
	silent bool
	unset  bool
}

type SetOption func(*setOpts)

// Silent suppresses all events of a mutation.
func Silent() SetOption {
	return func(o *setOpts) { o.silent = true }
}

// Unset deletes the attributes addressed instead of setting them. Top level
// attributes are removed, nested ones are set to null.
func Unset() SetOption {
	return func(o *setOpts) { o.unset = true }
}

func newSetOpts(opts []SetOption) *setOpts {
	o := &setOpts{}
	for _, f := range opts {
		f(o)
	}
	return o
}

func (o *setOpts) recordOpts() []record.SetOption {
	res := []record.SetOption{record.KeepChanged()}
	if o.silent {
		res = append(res, record.Silent())
	}
	return res
}

type modelOpts struct {
	record []record.Option
	loose  bool
}

type ModelOption func(*modelOpts)

// WithStore sets the store used by Save, Fetch and Destroy.
func WithStore(s store.Store) ModelOption {
	return func(o *modelOpts) { o.record = append(o.record, record.WithStore(s)) }
}

// WithID sets the id under which the model is stored. Without it the "id"
// attribute is used.
func WithID(id string) ModelOption {
	return func(o *modelOpts) { o.record = append(o.record, record.WithID(id)) }
}

// LooseTruth makes array add and remove detection treat zero numbers, empty
// strings and false like missing elements. By default an element is present
// when its slot is populated with a non-null value.
func LooseTruth() ModelOption {
	return func(o *modelOpts) { o.loose = true }
}
