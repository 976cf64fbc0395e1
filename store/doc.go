// Package store persists attribute trees by record id.
//
// Records delegate save, fetch and destroy to a Store. Two implementations
// are provided: Memory, for tests and ephemeral use, and Dir, which keeps one
// YAML (or JSON) file per record in a directory.
package store
