// Package nested provides Model, an observable record whose attributes may
// be nested objects and arrays addressed by path strings.
//
// # Paths
//
// Attributes are addressed with dotted paths and bracketed indices, as
// parsed by attrpath:
//
//	m.Set("a.b[0].c", 1)
//	m.Get("a.b[0]") // {"c": 1}
//
// # Events
//
// Besides the events of the underlying record ("change:<key>" for each top
// level attribute that changed, then "change"), a Set raises, for every
// merge point below the top level,
//
//	change:<path>   the value at path was written
//	add:<path>      an element of the array at path became present
//	remove:<path>   an element of the array at path became absent
//
// "change" and "remove" events are raised while the new attributes are being
// merged. "add" events are buffered and raised once the merged attributes are
// installed, before Set returns.
//
// # Embedded models
//
// A Model stored as a top level attribute value is bridged: every event it
// raises is raised again on the parent, once qualified by the attribute key
// and once with the key alone. A "change:x" raised by the model stored at
// "child" is seen on the parent as "change:child.x" then "change:child".
// Paths which cross an embedded model are handed to that model's own Get and
// Set.
//
// Models are not safe for concurrent use.
package nested
