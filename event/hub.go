package event

import (
	"slices"

	"github.com/signadot/go-nested/debug"
)

type Handler func(*Event)

// Subscription is a handler registered on a Hub under an event name.
type Subscription struct {
	Name string

	handler Handler
	hub     *Hub
}

// Off removes the subscription from its hub. It is safe to call more than
// once.
func (s *Subscription) Off() {
	if s == nil || s.hub == nil {
		return
	}
	s.hub.Off(s)
}

// Hub dispatches events to subscribed handlers. It is not safe for
// concurrent use.
type Hub struct {
	subs []*Subscription
}

func NewHub() *Hub {
	return &Hub{}
}

// On subscribes f to events named name, or to every event when name is All.
func (h *Hub) On(name string, f Handler) *Subscription {
	sub := &Subscription{Name: name, handler: f, hub: h}
	h.subs = append(h.subs, sub)
	return sub
}

// Off removes sub. Handlers removed while an event is being dispatched may
// still receive that event.
func (h *Hub) Off(sub *Subscription) {
	i := slices.Index(h.subs, sub)
	if i == -1 {
		return
	}
	h.subs = slices.Delete(slices.Clone(h.subs), i, i+1)
	sub.hub = nil
}

// Len returns the number of subscriptions.
func (h *Hub) Len() int {
	return len(h.subs)
}

// Emit calls the handlers subscribed to e's name, then the handlers
// subscribed to All, each group in subscription order.
func (h *Hub) Emit(e *Event) {
	name := e.Name()
	if debug.Events() {
		debug.Logf("emit %s %s\n", name, debug.Node{Node: e.Value})
	}
	subs := h.subs
	for _, sub := range subs {
		if sub.Name == name {
			sub.handler(e)
		}
	}
	for _, sub := range subs {
		if sub.Name == All {
			sub.handler(e)
		}
	}
}
