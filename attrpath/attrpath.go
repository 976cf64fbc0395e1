package attrpath

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Path is an ordered sequence of segments addressing an attribute.
type Path []Segment

// New returns a path of the given segments.
func New(segs ...Segment) Path {
	return Path(segs)
}

// Parse tokenizes s into a path.
//
// The empty string denotes the attribute keyed by the empty string and parses
// to a single empty name. Otherwise each maximal run of characters other than
// '.', '[' and ']' is a segment, and runs made only of decimal digits are
// indices:
//
//	Parse("a.b[0].c") → a, b, 0, c
//	Parse("a[0][1]")  → a, 0, 1
//	Parse("a.0")      → a, 0
//	Parse("")         → ""
//	Parse("..")       → (empty path)
//
// A non-empty string holding only delimiters yields the empty path, which
// callers needing a location reject with ErrEmptyPath.
func Parse(s string) Path {
	if s == "" {
		return Path{Field("")}
	}
	var res Path
	start := -1
	for i := 0; i <= len(s); i++ {
		if i < len(s) && !isDelim(s[i]) {
			if start == -1 {
				start = i
			}
			continue
		}
		if start != -1 {
			res = append(res, segmentOf(s[start:i]))
			start = -1
		}
	}
	return res
}

func isDelim(c byte) bool {
	return c == '.' || c == '[' || c == ']'
}

func segmentOf(tok string) Segment {
	for i := 0; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return Field(tok)
		}
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		// out of int range, keep the digits as a name
		return Field(tok)
	}
	return Index(n)
}

// Resolve accepts either a path string or an already parsed path and returns
// the path. Parsed paths are returned unchanged.
func Resolve(v any) (Path, error) {
	switch x := v.(type) {
	case string:
		return Parse(x), nil
	case Path:
		return x, nil
	case []Segment:
		return Path(x), nil
	case Segment:
		return Path{x}, nil
	}
	return nil, fmt.Errorf("%w: cannot use %T as a path", ErrInvalidPath, v)
}

// ResolveNonEmpty is Resolve which requires at least one segment.
func ResolveNonEmpty(v any) (Path, error) {
	p, err := Resolve(v)
	if err != nil {
		return nil, err
	}
	if len(p) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrEmptyPath, v)
	}
	return p, nil
}

// String renders the path: the first segment literally, then "[n]" for
// indices and ".name" for names.
//
//	Path{a, b, 0, c}.String() → "a.b[0].c"
func (p Path) String() string {
	if len(p) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(p[0].Key())
	for _, s := range p[1:] {
		sb.WriteString(s.String())
	}
	return sb.String()
}

// First returns the first segment. It panics on the empty path.
func (p Path) First() Segment {
	return p[0]
}

// Last returns the last segment. It panics on the empty path.
func (p Path) Last() Segment {
	return p[len(p)-1]
}

// Parent returns p without its last segment. The parent of a single segment
// path is the empty path.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return nil
	}
	return p[:len(p)-1:len(p)-1]
}

// Rest returns p without its first segment.
func (p Path) Rest() Path {
	if len(p) == 0 {
		return nil
	}
	return p[1:]
}

// Append returns a new path with segs added. p is not modified.
func (p Path) Append(segs ...Segment) Path {
	res := make(Path, 0, len(p)+len(segs))
	res = append(res, p...)
	return append(res, segs...)
}

// Concat returns p followed by q.
func (p Path) Concat(q Path) Path {
	return p.Append(q...)
}

func (p Path) Equal(q Path) bool {
	return slices.Equal(p, q)
}

// HasPrefix reports whether q is a prefix of p.
func (p Path) HasPrefix(q Path) bool {
	return len(q) <= len(p) && slices.Equal(p[:len(q)], q)
}
