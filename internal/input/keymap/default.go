package keymap

// Default returns the default editcore keymap.
func Default() *Map {
	m := New()
	for _, b := range defaultBindings() {
		// Defaults are static and known-valid.
		if err := m.Bind(b); err != nil {
			panic("invalid default binding: " + err.Error())
		}
	}
	return m
}

// defaultBindings lists the stock bindings.
func defaultBindings() []Binding {
	return []Binding{
		// Structural editing
		{Keys: "Tab", Action: ActionIndent, Description: "Indent line or selection", Category: "Editing"},
		{Keys: "Shift+Tab", Action: ActionOutdent, Description: "Outdent line or selection", Category: "Editing"},
		{Keys: "Enter", Action: ActionNewline, Description: "Newline with auto-indent", Category: "Editing"},

		// Plain editing
		{Keys: "Backspace", Action: ActionBackspace, Description: "Delete before caret", Category: "Editing"},
		{Keys: "Delete", Action: ActionDelete, Description: "Delete after caret", Category: "Editing"},

		// Movement
		{Keys: "Left", Action: ActionMoveLeft, Description: "Move left", Category: "Movement"},
		{Keys: "Right", Action: ActionMoveRight, Description: "Move right", Category: "Movement"},
		{Keys: "Up", Action: ActionMoveUp, Description: "Move up", Category: "Movement"},
		{Keys: "Down", Action: ActionMoveDown, Description: "Move down", Category: "Movement"},
		{Keys: "Home", Action: ActionMoveLineStart, Description: "Move to line start", Category: "Movement"},
		{Keys: "End", Action: ActionMoveLineEnd, Description: "Move to line end", Category: "Movement"},

		// Application
		{Keys: "Ctrl+Q", Action: ActionQuit, Description: "Quit", Category: "Application"},
		{Keys: "Escape", Action: ActionQuit, Description: "Quit", Category: "Application"},
	}
}
