// Package keymap maps key events to named editor actions.
//
// A Map holds one binding per key event. Defaults cover the three engine
// keys (Tab, Shift+Tab, Enter), host-side editing and cursor motion, and
// application control; configuration can rebind any of them by key
// specification. The closing brace is not in the keymap: it is a literal
// character classified by the session and cannot be rebound.
//
// Action names are namespaced strings ("editor.indent", "cursor.moveLeft",
// "app.quit") so a binding table reads the same way in defaults and in
// configuration files.
package keymap
