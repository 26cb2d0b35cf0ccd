// Package workspace provides a named registry of spaces, grounded on the
// teacher's session.InMemoryStore: a mutex-guarded map keyed by name, with
// get-or-create Get and a force-overwrite Create. A "session" in the
// teacher's world (a per-conversation mutable record) becomes a "named
// space" here (a per-named-context atom container).
package workspace
