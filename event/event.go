package event

import (
	"strings"

	"github.com/signadot/go-nested/attrpath"
	"github.com/signadot/go-nested/ir"
)

// Kind is the kind of an event, the part of its name before any colon.
type Kind string

const (
	Change  Kind = "change"
	Add     Kind = "add"
	Remove  Kind = "remove"
	Sync    Kind = "sync"
	Destroy Kind = "destroy"
	Error   Kind = "error"
)

// All subscribes a handler to every event.
const All = "all"

// Event is a notification raised by a record or model.
type Event struct {
	Kind Kind
	// Path qualifies the kind, e.g. the attribute that changed. Nil for
	// unqualified events such as "change" or "sync".
	Path attrpath.Path

	// Source is the record or model that raised the event originally.
	// Bridged events keep the source of the child.
	Source any
	// Value is the payload: the new value for change and add, the removed
	// value for remove.
	Value *ir.Node
	// Err is set on Error events.
	Err error
}

// New returns an event of kind k qualified by p.
func New(k Kind, p attrpath.Path, src any, v *ir.Node) *Event {
	return &Event{Kind: k, Path: p, Source: src, Value: v}
}

// Name renders "kind" or "kind:path".
func (e *Event) Name() string {
	if len(e.Path) == 0 {
		return string(e.Kind)
	}
	return string(e.Kind) + ":" + e.Path.String()
}

func (e *Event) String() string {
	return e.Name()
}

// ParseName splits an event name at its first colon into a kind and a path.
// A name without a colon has no path.
//
//	ParseName("change:a.b") → (change, a.b)
//	ParseName("sync")       → (sync, nil)
//	ParseName("change:")    → (change, "")
func ParseName(name string) (Kind, attrpath.Path) {
	i := strings.IndexByte(name, ':')
	if i == -1 {
		return Kind(name), nil
	}
	return Kind(name[:i]), attrpath.Parse(name[i+1:])
}

// FromName builds an event from its string name.
func FromName(name string, src any, v *ir.Node) *Event {
	k, p := ParseName(name)
	return New(k, p, src, v)
}

// Bridge returns the events a parent re-emits when a child stored under key
// raises e, in emission order:
//
//   - e qualified by path p: "kind:key.p" then "kind:key"
//   - e unqualified:         e itself then "kind:key"
func Bridge(e *Event, key attrpath.Segment) []*Event {
	bare := &Event{Kind: e.Kind, Path: attrpath.New(key), Source: e.Source, Value: e.Value, Err: e.Err}
	if len(e.Path) == 0 {
		return []*Event{e, bare}
	}
	namespaced := &Event{
		Kind:   e.Kind,
		Path:   attrpath.New(key).Concat(e.Path),
		Source: e.Source,
		Value:  e.Value,
		Err:    e.Err,
	}
	return []*Event{namespaced, bare}
}
