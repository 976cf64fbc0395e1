package nested

import (
	"github.com/signadot/go-nested/event"
)

// delayedTriggers buffers the events of one mutation which must only be
// raised once the merged attributes are installed.
type delayedTriggers struct {
	events []*event.Event
}

func (d *delayedTriggers) push(e *event.Event) {
	d.events = append(d.events, e)
}

// flush raises the buffered events on m in the order they were pushed.
func (d *delayedTriggers) flush(m *Model) {
	for len(d.events) != 0 {
		e := d.events[0]
		d.events = d.events[1:]
		m.rec.Trigger(e)
	}
}
