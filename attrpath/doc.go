// Package attrpath parses and renders attribute paths.
//
// An attribute path addresses a location in a nested attribute tree. It is a
// sequence of segments, each either a name (object field) or an index (array
// element):
//
//	"user.emails[0].address"  → user, emails, 0, address
//	"matrix[1][2]"            → matrix, 1, 2
//	"items.3"                 → items, 3
//	""                        → the attribute named by the empty string
//
// Any run of digits is an index, whether written with brackets or with a dot.
// Rendering always writes indices with brackets, so String(Parse(s)) == s for
// canonical inputs.
//
// # Usage
//
//	p := attrpath.Parse("a.b[0]")
//	parent := p.Parent()          // a.b
//	last := p.Last()              // [0]
//	child := p.Append(attrpath.Field("c"))
//
// # Related Packages
//
//   - github.com/signadot/go-nested/nested - models addressed by these paths
package attrpath
