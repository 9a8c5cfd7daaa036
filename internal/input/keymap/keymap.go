package keymap

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dshills/editcore/internal/input/key"
)

// Keymap errors
var (
	ErrUnknownAction = errors.New("unknown action")
)

// Binding maps a single key specification to an action.
type Binding struct {
	// Keys is the key specification, e.g. "Tab", "Shift+Tab", "Ctrl+Q".
	Keys string

	// Action is the operation to execute.
	Action Action

	// Description documents the binding for the status display.
	Description string

	// Category groups bindings for display purposes.
	Category string
}

// Map resolves key events to actions. One binding per event; a later
// Bind for the same event replaces the earlier one, which is how
// configuration overrides defaults.
type Map struct {
	bindings map[key.Event]Binding
}

// New creates an empty Map.
func New() *Map {
	return &Map{bindings: make(map[key.Event]Binding)}
}

// Bind parses the binding's key specification and installs it,
// replacing any existing binding for the same event.
func (m *Map) Bind(b Binding) error {
	if !Known(b.Action) {
		return fmt.Errorf("%w: %q for keys %q", ErrUnknownAction, b.Action, b.Keys)
	}
	ev, err := key.Parse(b.Keys)
	if err != nil {
		return fmt.Errorf("binding %q: %w", b.Keys, err)
	}
	m.bindings[ev] = b
	return nil
}

// Resolve returns the action bound to ev, if any.
func (m *Map) Resolve(ev key.Event) (Action, bool) {
	b, ok := m.bindings[ev]
	if !ok {
		return "", false
	}
	return b.Action, true
}

// Bindings returns all bindings sorted by key specification, for
// display.
func (m *Map) Bindings() []Binding {
	out := make([]Binding, 0, len(m.bindings))
	for _, b := range m.bindings {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Keys < out[j].Keys
	})
	return out
}

// ApplyOverrides rebinds keys from a spec-to-action table, typically
// the keymap section of the configuration file. The first invalid entry
// aborts with an error naming it; earlier entries in map order may
// already be applied.
func (m *Map) ApplyOverrides(overrides map[string]string) error {
	for spec, action := range overrides {
		b := Binding{Keys: spec, Action: Action(action), Category: "User"}
		if err := m.Bind(b); err != nil {
			return err
		}
	}
	return nil
}
