// Package record implements a flat observable record: a set of top-level
// attributes with change notifications.
//
// Set assigns top-level keys. Once every assignment is done, a
// "change:<key>" event is raised for each key whose value differs (deep
// comparison) from the previous one, followed by a single "change" event.
// The keys and values changed by the last Set are kept in Changed, where
// layered models may also record the nested paths they changed.
//
// A record may have a Store, used by Save, Fetch and Destroy.
package record
