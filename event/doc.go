// Package event defines the notifications raised by records and nested
// models, a synchronous hub dispatching them to handlers, and expression
// filters over them.
//
// # Events
//
// An Event is a structured (Kind, Path) pair. Its Name renders the familiar
// string form:
//
//	Event{Kind: Change, Path: a.b[0]}.Name() → "change:a.b[0]"
//	Event{Kind: Sync}.Name()                 → "sync"
//
// # Dispatch
//
// Handlers subscribe with Hub.On by event name, or to every event with All.
// Dispatch is synchronous: Emit returns once every matching handler ran.
// Handlers may subscribe or unsubscribe while an event is being dispatched;
// the change applies to the next Emit.
//
// # Bridging
//
// Bridge derives the events a parent re-emits for an event raised by a child
// stored under key: the child's path is namespaced under key, and a bare
// key-qualified form follows.
//
// # Filters
//
// CompileFilter compiles an expr-lang boolean expression over the fields
// kind, path, name, depth and value of an event.
package event
