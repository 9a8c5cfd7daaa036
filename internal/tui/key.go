package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/editcore/internal/input/key"
)

// convertKey translates a tcell key press into the editor's key model.
// Shift folds into the rune for character keys, matching the chord
// parser's events. Keys the editor does not model return false.
func convertKey(k tcell.Key, r rune, m tcell.ModMask) (key.Event, bool) {
	mods := convertMods(m)

	switch k {
	case tcell.KeyRune:
		return key.NewRuneEvent(r, mods&^key.ModShift), true
	case tcell.KeyTab:
		return key.NewSpecialEvent(key.KeyTab, mods), true
	case tcell.KeyBacktab:
		// Terminals report Shift+Tab as a distinct key.
		return key.NewSpecialEvent(key.KeyTab, mods.With(key.ModShift)), true
	case tcell.KeyEnter:
		return key.NewSpecialEvent(key.KeyEnter, mods), true
	case tcell.KeyEscape:
		return key.NewSpecialEvent(key.KeyEscape, mods), true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.NewSpecialEvent(key.KeyBackspace, mods), true
	case tcell.KeyDelete:
		return key.NewSpecialEvent(key.KeyDelete, mods), true
	case tcell.KeyHome:
		return key.NewSpecialEvent(key.KeyHome, mods), true
	case tcell.KeyEnd:
		return key.NewSpecialEvent(key.KeyEnd, mods), true
	case tcell.KeyPgUp:
		return key.NewSpecialEvent(key.KeyPageUp, mods), true
	case tcell.KeyPgDn:
		return key.NewSpecialEvent(key.KeyPageDown, mods), true
	case tcell.KeyUp:
		return key.NewSpecialEvent(key.KeyUp, mods), true
	case tcell.KeyDown:
		return key.NewSpecialEvent(key.KeyDown, mods), true
	case tcell.KeyLeft:
		return key.NewSpecialEvent(key.KeyLeft, mods), true
	case tcell.KeyRight:
		return key.NewSpecialEvent(key.KeyRight, mods), true
	}

	// Control letters arrive as dedicated key codes; rewrite them as
	// rune events so chord specs like "Ctrl+Q" match. The codes shared
	// with Backspace, Tab, and Enter were claimed above.
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return key.NewRuneEvent(rune('a'+k-tcell.KeyCtrlA), mods.With(key.ModCtrl)), true
	}

	return key.Event{}, false
}

func convertMods(m tcell.ModMask) key.Modifier {
	mods := key.ModNone
	if m&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	return mods
}
