package edit

import "fmt"

// Kind identifies which of the three handled key classes an event belongs
// to. Keys outside this set never reach the engine.
type Kind int

// Key classes handled by the engine.
const (
	// KeyTab is the Tab key; Shift selects dedent.
	KeyTab Kind = iota
	// KeyEnter is the Return key.
	KeyEnter
	// KeyCloseBrace is the literal } character.
	KeyCloseBrace
)

// String returns the name of the key class.
func (k Kind) String() string {
	switch k {
	case KeyTab:
		return "Tab"
	case KeyEnter:
		return "Enter"
	case KeyCloseBrace:
		return "CloseBrace"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// KeyEvent describes one classified keystroke. Shift is meaningful only
// for KeyTab, where it selects dedent over indent.
type KeyEvent struct {
	Kind  Kind
	Shift bool
}

// Tab returns a Tab key event; shift true means Shift+Tab.
func Tab(shift bool) KeyEvent {
	return KeyEvent{Kind: KeyTab, Shift: shift}
}

// Enter returns an Enter key event.
func Enter() KeyEvent {
	return KeyEvent{Kind: KeyEnter}
}

// CloseBrace returns a closing-brace key event.
func CloseBrace() KeyEvent {
	return KeyEvent{Kind: KeyCloseBrace}
}

// String returns a human-readable representation of the event.
func (e KeyEvent) String() string {
	if e.Kind == KeyTab && e.Shift {
		return "Shift+Tab"
	}
	return e.Kind.String()
}
