// Package libdiff computes differences between attribute trees.
//
// # Usage
//
//	// Compute the path operations turning one tree into another
//	ops := libdiff.Diff(oldNode, newNode)
//	for _, op := range ops {
//		fmt.Println(op)
//	}
//
//	// Render a line diff of two documents
//	fmt.Print(libdiff.Text(oldYAML, newYAML))
//
// Operations address attributes with attrpath paths, so a model can replay
// them with its own set, unset and remove operations and raise the same
// events as a direct mutation would.
//
// # Related Packages
//
//   - github.com/signadot/go-nested/ir - attribute trees
//   - github.com/signadot/go-nested/nested - models replaying operations
package libdiff
