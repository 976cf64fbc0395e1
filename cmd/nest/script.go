package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/signadot/go-nested/event"
	"github.com/signadot/go-nested/ir"
	"github.com/signadot/go-nested/nested"
)

var ErrScript = errors.New("script error")

type verb string

const (
	verbSet     verb = "set"
	verbUnset   verb = "unset"
	verbAdd     verb = "add"
	verbRemove  verb = "remove"
	verbPatch   verb = "patch"
	verbTrigger verb = "trigger"
)

// scriptOp is one line of a run script.
type scriptOp struct {
	Line  int
	Verb  verb
	Arg   string
	Value *ir.Node
}

func (op *scriptOp) String() string {
	if op.Value == nil {
		return string(op.Verb) + " " + op.Arg
	}
	d, _ := op.Value.MarshalJSON()
	return string(op.Verb) + " " + op.Arg + " " + string(d)
}

// parseScript parses src into operations, numbering lines from first.
func parseScript(src string, first int) ([]scriptOp, error) {
	var res []scriptOp
	for i, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		op, err := parseOp(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", first+i, err)
		}
		op.Line = first + i
		res = append(res, op)
	}
	return res, nil
}

func parseOp(line string) (scriptOp, error) {
	v, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)
	op := scriptOp{Verb: verb(v)}
	switch op.Verb {
	case verbSet, verbAdd:
		p, val, ok := strings.Cut(rest, " ")
		val = strings.TrimSpace(val)
		if !ok || val == "" {
			return op, fmt.Errorf("%w: %s requires a path and a value", ErrScript, v)
		}
		op.Arg = p
		op.Value = ir.ParseValue(val)
	case verbUnset, verbRemove, verbTrigger:
		if rest == "" || strings.ContainsAny(rest, " \t") {
			return op, fmt.Errorf("%w: %s requires a single argument", ErrScript, v)
		}
		op.Arg = rest
	case verbPatch:
		if rest == "" {
			return op, fmt.Errorf("%w: patch requires a json patch", ErrScript)
		}
		op.Arg = rest
	default:
		return op, fmt.Errorf("%w: unknown operation %q", ErrScript, v)
	}
	return op, nil
}

func (op *scriptOp) apply(m *nested.Model) error {
	switch op.Verb {
	case verbSet:
		return m.Set(op.Arg, op.Value)
	case verbUnset:
		return m.Unset(op.Arg)
	case verbAdd:
		return m.Add(op.Arg, op.Value)
	case verbRemove:
		return m.Remove(op.Arg)
	case verbPatch:
		return m.ApplyPatch([]byte(op.Arg))
	case verbTrigger:
		m.Trigger(event.FromName(op.Arg, nil, nil))
		return nil
	}
	return fmt.Errorf("%w: unknown operation %q", ErrScript, op.Verb)
}
