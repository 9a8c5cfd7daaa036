package tui

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/editcore/internal/input/key"
)

// EventKind discriminates the events PollEvent delivers.
type EventKind int

const (
	// EventNone is an event the editor does not handle.
	EventNone EventKind = iota

	// EventKey is a translated key press; Event.Key holds it.
	EventKey

	// EventResize reports a terminal size change.
	EventResize

	// EventWake is posted by Wake to unblock the poll loop.
	EventWake

	// EventClosed means the screen has been finalized.
	EventClosed
)

// Event is a terminal event translated for the application loop.
type Event struct {
	Kind EventKind
	Key  key.Event
}

// Terminal wraps a tcell screen for the editor front end.
type Terminal struct {
	mu     sync.Mutex
	screen tcell.Screen
	inited bool
	fini   bool
}

// NewTerminal creates a terminal over the controlling tty.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// NewSimulationTerminal creates a terminal over an in-memory tcell
// simulation screen, for tests and headless tooling. The screen is
// returned so callers can inject events and inspect cells.
func NewSimulationTerminal() (*Terminal, tcell.SimulationScreen) {
	sim := tcell.NewSimulationScreen("UTF-8")
	return &Terminal{screen: sim}, sim
}

// Init initializes the underlying screen. Calling Init again on an
// initialized terminal is a no-op, so a caller that set the screen up
// ahead of the event loop does not reset it.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.inited {
		return nil
	}
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.inited = true
	return nil
}

// Fini restores the terminal to its previous state. Safe to call more
// than once; a blocked PollEvent returns EventClosed.
func (t *Terminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.fini {
		return
	}
	t.fini = true
	t.screen.Fini()
}

// Size returns the screen dimensions.
func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.screen.Size()
}

// PollEvent blocks until the next event. Key presses the editor does
// not model come back as EventNone; a finalized screen yields
// EventClosed.
func (t *Terminal) PollEvent() Event {
	raw := t.screen.PollEvent()
	if raw == nil {
		return Event{Kind: EventClosed}
	}
	switch ev := raw.(type) {
	case *tcell.EventKey:
		kev, ok := convertKey(ev.Key(), ev.Rune(), ev.Modifiers())
		if !ok {
			return Event{Kind: EventNone}
		}
		return Event{Kind: EventKey, Key: kev}
	case *tcell.EventResize:
		t.screen.Sync()
		return Event{Kind: EventResize}
	case *tcell.EventInterrupt:
		return Event{Kind: EventWake}
	default:
		return Event{Kind: EventNone}
	}
}

// Wake posts an interrupt event so a blocked PollEvent returns. Used
// by background goroutines (config reload) to trigger a redraw.
func (t *Terminal) Wake() {
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil)) // queue may be full
}
