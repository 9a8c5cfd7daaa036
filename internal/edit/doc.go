// Package edit implements the structural keystroke engine for editcore.
//
// The engine computes buffer mutations for three key classes: Tab (indent
// and dedent), Enter (auto-indenting newline), and the closing brace
// (auto-dedenting insert). Everything else is outside its surface and is
// expected to be handled by the host.
//
// # Model
//
// All operations are pure functions over value types. A call takes the
// current buffer (a string), a Selection (byte offsets), and a KeyEvent,
// and returns a Result holding the new buffer and the new selection:
//
//	eng := edit.NewEngine()
//	res, err := eng.Apply(edit.KeyEvent{Kind: edit.KeyTab}, "ab", edit.NewCaret(1))
//	// res.Buffer == "a  b", res.Selection == {3, 3}
//
// The Result is atomic: callers must commit Buffer and Selection together,
// since the selection offsets are only valid against the buffer they were
// computed for.
//
// # Concurrency
//
// The engine holds no state between calls and performs no I/O. Calls are
// safe from multiple goroutines, but the host owns the authoritative
// buffer and must serialize edits against a single buffer snapshot: each
// call's output selection is meaningless against any other buffer state.
//
// # Indentation
//
// The indent unit is a fixed two spaces. There is no tab-width
// configuration and no bracket matching; Enter's extra indent after a
// line ending in one of { [ : > is a closed heuristic, and only the
// closing brace } snaps back an indent level. The ] and > closers are
// deliberately not handled.
package edit
