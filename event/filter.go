package event

import (
	"fmt"

	"github.com/signadot/go-nested/attrpath"
	"github.com/signadot/go-nested/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Filter is a compiled boolean expression over events.
//
// The expression sees:
//
//	kind  string  the event kind
//	path  string  the rendered path, "" when unqualified
//	name  string  the event name
//	depth int     the number of path segments
//	value any     the payload as plain values
//
// and the function hasPrefix(path, prefix) which matches whole path
// segments, e.g.
//
//	kind == "add" && hasPrefix(path, "items")
type Filter struct {
	Source string
	prg    *vm.Program
}

func filterEnv(e *Event) map[string]any {
	path := ""
	if len(e.Path) != 0 {
		path = e.Path.String()
	}
	return map[string]any{
		"kind":  string(e.Kind),
		"path":  path,
		"name":  e.Name(),
		"depth": len(e.Path),
		"value": ir.ToAny(e.Value),
	}
}

func filterOpts() []expr.Option {
	return []expr.Option{
		expr.Env(filterEnv(&Event{})),
		expr.AsBool(),
		expr.Function("hasPrefix", func(params ...any) (any, error) {
			return pathHasPrefix(params[0].(string), params[1].(string)), nil
		},
			new(func(string, string) bool)),
	}
}

// CompileFilter compiles src.
func CompileFilter(src string) (*Filter, error) {
	prg, err := expr.Compile(src, filterOpts()...)
	if err != nil {
		return nil, fmt.Errorf("invalid event filter %q: %w", src, err)
	}
	return &Filter{Source: src, prg: prg}, nil
}

// Match evaluates the filter on e. A nil filter matches everything.
func (f *Filter) Match(e *Event) (bool, error) {
	if f == nil {
		return true, nil
	}
	res, err := expr.Run(f.prg, filterEnv(e))
	if err != nil {
		return false, fmt.Errorf("error evaluating filter %q on %s: %w", f.Source, e.Name(), err)
	}
	b, _ := res.(bool)
	return b, nil
}

// Handler wraps h so that it only receives events matching f. Evaluation
// errors drop the event.
func (f *Filter) Handler(h Handler) Handler {
	return func(e *Event) {
		ok, err := f.Match(e)
		if err != nil || !ok {
			return
		}
		h(e)
	}
}

func pathHasPrefix(path, prefix string) bool {
	if prefix == "" {
		return true
	}
	return attrpath.Parse(path).HasPrefix(attrpath.Parse(prefix))
}
