package keymap

// Action names an editor operation a key can be bound to.
type Action string

// Editing actions routed through the keystroke engine.
const (
	ActionIndent     Action = "editor.indent"
	ActionOutdent    Action = "editor.outdent"
	ActionNewline    Action = "editor.newline"
	ActionCloseBrace Action = "editor.closeBrace"
)

// Host-side editing actions.
const (
	ActionBackspace Action = "editor.backspace"
	ActionDelete    Action = "editor.delete"
)

// Cursor motion actions.
const (
	ActionMoveLeft      Action = "cursor.moveLeft"
	ActionMoveRight     Action = "cursor.moveRight"
	ActionMoveUp        Action = "cursor.moveUp"
	ActionMoveDown      Action = "cursor.moveDown"
	ActionMoveLineStart Action = "cursor.moveLineStart"
	ActionMoveLineEnd   Action = "cursor.moveLineEnd"
)

// Application control actions.
const (
	ActionQuit Action = "app.quit"
)

// knownActions is the set of actions a binding may name.
var knownActions = map[Action]bool{
	ActionIndent:        true,
	ActionOutdent:       true,
	ActionNewline:       true,
	ActionCloseBrace:    true,
	ActionBackspace:     true,
	ActionDelete:        true,
	ActionMoveLeft:      true,
	ActionMoveRight:     true,
	ActionMoveUp:        true,
	ActionMoveDown:      true,
	ActionMoveLineStart: true,
	ActionMoveLineEnd:   true,
	ActionQuit:          true,
}

// Known returns true if a is a recognized action name.
func Known(a Action) bool {
	return knownActions[a]
}
