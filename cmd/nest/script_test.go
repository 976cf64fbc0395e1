package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/signadot/go-nested/event"
	"github.com/signadot/go-nested/ir"
	"github.com/signadot/go-nested/nested"

	"github.com/google/go-cmp/cmp"
)

func TestParseScript(t *testing.T) {
	src := `
# build a list
set a.b 1
add items {"x": 1}
unset a.c
remove items[0]
trigger sync
patch [{"op": "add", "path": "/k", "value": "v"}]
set s hello world
`
	ops, err := parseScript(src, 1)
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for i := range ops {
		got = append(got, ops[i].String())
	}
	want := []string{
		`set a.b 1`,
		`add items {"x":1}`,
		`unset a.c`,
		`remove items[0]`,
		`trigger sync`,
		`patch [{"op": "add", "path": "/k", "value": "v"}]`,
		`set s "hello world"`,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ops (-want +got):\n%s", diff)
	}
	if ops[0].Line != 3 {
		t.Errorf("first op on line %d, want 3", ops[0].Line)
	}
}

func TestParseScriptErrors(t *testing.T) {
	for _, src := range []string{
		"frob a",
		"set a",
		"unset",
		"remove a b",
		"patch",
	} {
		t.Run(src, func(t *testing.T) {
			_, err := parseScript(src, 1)
			if !errors.Is(err, ErrScript) {
				t.Errorf("got %v, want %v", err, ErrScript)
			}
		})
	}
}

func TestScriptApply(t *testing.T) {
	ops, err := parseScript("set a.b 1\nset items []\nadd items 2\nadd items 3\nremove items[0]\nunset a.b", 1)
	if err != nil {
		t.Fatal(err)
	}
	buf := bytes.NewBuffer(nil)
	p := newEventPrinter(buf, nil, nil)
	m := nested.New()
	m.On(event.All, p.handle)
	for i := range ops {
		if err := ops[i].apply(m); err != nil {
			t.Fatalf("%s: %v", &ops[i], err)
		}
	}
	d, err := m.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(d), `{"a":{"b":null},"items":[3]}`; got != want {
		t.Errorf("got %s want %s", got, want)
	}
	if buf.Len() == 0 {
		t.Error("no events printed")
	}
}

func TestEventPrinter(t *testing.T) {
	f, err := event.CompileFilter(`kind == "add"`)
	if err != nil {
		t.Fatal(err)
	}
	buf := bytes.NewBuffer(nil)
	p := newEventPrinter(buf, nil, f)
	m := nested.New()
	m.On(event.All, p.handle)
	if err := m.Set("n", 1); err != nil {
		t.Fatal(err)
	}
	if err := m.Set("xs", []any{}); err != nil {
		t.Fatal(err)
	}
	if err := m.Add("xs", "a"); err != nil {
		t.Fatal(err)
	}
	if p.err != nil {
		t.Fatal(p.err)
	}
	if got, want := buf.String(), "add:xs \"a\"\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestEventFormat(t *testing.T) {
	p := newEventPrinter(nil, nil, nil)
	for _, tc := range []struct {
		e    *event.Event
		want string
	}{
		{e: event.FromName("sync", nil, nil), want: "sync"},
		{e: event.FromName("change:a.b", nil, ir.FromInt(2)), want: "change:a.b 2"},
		{e: &event.Event{Kind: event.Error, Err: errors.New("boom")}, want: "error boom"},
	} {
		if got := p.format(tc.e); got != tc.want {
			t.Errorf("got %q want %q", got, tc.want)
		}
	}
}
