package libdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/go-nested/ir"
)

func opStrings(ops []Op) []string {
	var res []string
	for _, op := range ops {
		res = append(res, op.String())
	}
	return res
}

func TestDiff(t *testing.T) {
	cases := []struct {
		name     string
		from, to string
		want     []string
	}{
		{
			name: "equal",
			from: `{"a": 1, "b": [1, 2]}`,
			to:   `{"a": 1, "b": [1, 2]}`,
		},
		{
			name: "field replaced",
			from: `{"a": 1, "b": 2}`,
			to:   `{"a": 1, "c": 3}`,
			want: []string{"unset b", "set c 3"},
		},
		{
			name: "nested scalar",
			from: `{"a": {"b": 1, "c": true}}`,
			to:   `{"a": {"b": 2, "c": true}}`,
			want: []string{"set a.b 2"},
		},
		{
			name: "type change",
			from: `{"a": 1}`,
			to:   `{"a": "x"}`,
			want: []string{`set a "x"`},
		},
		{
			name: "array remove",
			from: `{"a": [1, 2, 3]}`,
			to:   `{"a": [1, 3]}`,
			want: []string{"remove a[1]"},
		},
		{
			name: "array append",
			from: `{"a": [1]}`,
			to:   `{"a": [1, 2]}`,
			want: []string{"set a[1] 2"},
		},
		{
			name: "array middle insert",
			from: `{"a": [1, 3]}`,
			to:   `{"a": [1, 2, 3]}`,
			want: []string{"set a [1,2,3]"},
		},
		{
			name: "array element changed",
			from: `{"a": [{"x": 1}, {"x": 2}]}`,
			to:   `{"a": [{"x": 1}, {"x": 5}]}`,
			want: []string{"set a[1].x 5"},
		},
		{
			name: "moved field keeps value",
			from: `{"a": 1, "b": 2}`,
			to:   `{"b": 2, "a": 1}`,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			from, err := ir.Parse([]byte(c.from))
			if err != nil {
				t.Fatal(err)
			}
			to, err := ir.Parse([]byte(c.to))
			if err != nil {
				t.Fatal(err)
			}
			got := opStrings(Diff(from, to))
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestText(t *testing.T) {
	if got := Text("a: 1\n", "a: 1\n"); got != "" {
		t.Errorf("equal texts gave %q", got)
	}
	got := Text("a: 1\nb: 2\n", "a: 1\nb: 3\n")
	want := " a: 1\n-b: 2\n+b: 3\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
