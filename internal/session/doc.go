// Package session owns the mutable editing state a host binds to: the
// buffer, the selection, and a revision counter, guarded by a single
// mutex so concurrent hosts (TUI loop, macro scripts) always observe a
// consistent pair.
//
// # Key handling
//
// HandleKey classifies raw key events in a fixed order: a typed "}" is
// routed to the engine before the keymap is consulted, so rebinding
// cannot detach the closing-brace behavior; bound keys dispatch their
// action; remaining printable characters are inserted verbatim; anything
// else is ignored.
//
// # Revisions
//
// The revision counter increments once per buffer mutation. Pure caret
// or selection motion does not bump it.
package session
