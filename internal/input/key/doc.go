// Package key provides key event types and parsing for editcore input.
//
// The package defines the types the keymap and terminal layers share:
//
//   - Key: identifies a keyboard key (special keys or runes)
//   - Modifier: modifier bitmask (Ctrl, Alt, Shift)
//   - Event: a single key press, comparable and usable as a map key
//
// Key specifications for bindings are written as a key name or single
// character, optionally prefixed with modifiers:
//
//   - Simple keys: "a", "}", "Enter", "Tab"
//   - With modifiers: "Ctrl+Q", "Shift+Tab", "Ctrl+Shift+S"
package key
