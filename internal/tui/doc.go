// Package tui runs the terminal front end: a tcell screen wrapper, the
// translation from tcell key events into the editor's key model, and a
// view that paints a session snapshot with cursor, selection, and an
// optional status line.
//
// tcell stays behind this package. The application loop consumes
// Terminal events and session snapshots; it never touches tcell types.
package tui
