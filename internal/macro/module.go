package macro

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/editcore/internal/input/keymap"
)

// registerEditModule installs the edit table into the interpreter.
func (h *Host) registerEditModule() {
	L := h.state
	mod := L.NewTable()

	L.SetField(mod, "indent", L.NewFunction(h.actionFn(keymap.ActionIndent)))
	L.SetField(mod, "unindent", L.NewFunction(h.actionFn(keymap.ActionOutdent)))
	L.SetField(mod, "newline", L.NewFunction(h.actionFn(keymap.ActionNewline)))
	L.SetField(mod, "close_brace", L.NewFunction(h.actionFn(keymap.ActionCloseBrace)))
	L.SetField(mod, "insert", L.NewFunction(h.insert))
	L.SetField(mod, "text", L.NewFunction(h.text))
	L.SetField(mod, "selection", L.NewFunction(h.selection))
	L.SetField(mod, "select", L.NewFunction(h.selectRange))

	L.SetGlobal("edit", mod)
}

// actionFn adapts a session action into a Lua function.
func (h *Host) actionFn(act keymap.Action) lua.LGFunction {
	return func(L *lua.LState) int {
		if err := h.session.Perform(act); err != nil {
			L.RaiseError("%s: %v", act, err)
			return 0
		}
		return 0
	}
}

// insert(text)
// Replaces the selection with text.
func (h *Host) insert(L *lua.LState) int {
	h.session.InsertText(L.CheckString(1))
	return 0
}

// text() -> string
// Returns the full buffer.
func (h *Host) text(L *lua.LState) int {
	L.Push(lua.LString(h.session.Buffer()))
	return 1
}

// selection() -> start, end
// Returns the selection offsets.
func (h *Host) selection(L *lua.LState) int {
	sel := h.session.Selection()
	L.Push(lua.LNumber(sel.Start))
	L.Push(lua.LNumber(sel.End))
	return 2
}

// select(start, end)
// Sets the selection, clamped to the buffer.
func (h *Host) selectRange(L *lua.LState) int {
	h.session.Select(L.CheckInt(1), L.CheckInt(2))
	return 0
}
