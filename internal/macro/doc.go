// Package macro runs Lua scripts against an editing session. The
// interpreter is sandboxed: only the base, table, string, and math
// libraries are opened, so scripts cannot reach the file system or the
// OS.
//
// Scripts see one global table, edit:
//
//	edit.indent()            tab
//	edit.unindent()          shift tab
//	edit.newline()           enter with auto-indent
//	edit.close_brace()       typed "}"
//	edit.insert(text)        replace the selection with text
//	edit.text()              current buffer
//	edit.selection()         start, end
//	edit.select(start, end)  set the selection
//
// Offsets are zero-based byte offsets, the same as the engine's.
package macro
