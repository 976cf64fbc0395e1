package main

import (
	"fmt"
	"io"

	"github.com/signadot/go-nested/event"
)

// eventPrinter writes one line per event: the colored name, then the
// payload as json.
type eventPrinter struct {
	w      io.Writer
	colors *Colors
	filter *event.Filter
	err    error
}

func newEventPrinter(w io.Writer, colors *Colors, filter *event.Filter) *eventPrinter {
	return &eventPrinter{w: w, colors: colors, filter: filter}
}

func (p *eventPrinter) handle(e *event.Event) {
	if p.err != nil {
		return
	}
	ok, err := p.filter.Match(e)
	if err != nil {
		p.err = err
		return
	}
	if !ok {
		return
	}
	_, p.err = io.WriteString(p.w, p.format(e)+"\n")
}

func (p *eventPrinter) format(e *event.Event) string {
	kind := string(e.Kind)
	path := ""
	if len(e.Path) != 0 {
		path = e.Path.String()
	}
	val := ""
	switch {
	case e.Err != nil:
		val = e.Err.Error()
	case e.Value != nil:
		d, err := e.Value.MarshalJSON()
		if err != nil {
			d = []byte(fmt.Sprintf("<%v>", err))
		}
		val = string(d)
	}
	if p.colors != nil {
		kind = p.colors.kind(e.Kind)("%s", kind)
		if path != "" {
			path = p.colors.Path("%s", path)
		}
		if val != "" {
			val = p.colors.Value("%s", val)
		}
	}
	res := kind
	if path != "" {
		res += ":" + path
	}
	if val != "" {
		res += " " + val
	}
	return res
}

func compileFilter(flag, fromFile string) (*event.Filter, error) {
	src := flag
	if src == "" {
		src = fromFile
	}
	if src == "" {
		return nil, nil
	}
	return event.CompileFilter(src)
}
