package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/signadot/go-nested/ir"
)

// Node renders a node as JSON when formatted with %s or %v.
type Node struct{ *ir.Node }

func (y Node) String() string {
	if y.Node == nil {
		return "<absent>"
	}
	d, err := y.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("[raw *ir.Node] %v", ir.ToAny(y.Node))
	}
	return string(d)
}

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
