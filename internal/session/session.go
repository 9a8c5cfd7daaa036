package session

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/editcore/internal/edit"
	"github.com/dshills/editcore/internal/input/key"
	"github.com/dshills/editcore/internal/input/keymap"
)

// Session is an editing session: one buffer, one selection, one keymap.
type Session struct {
	id     string
	engine *edit.Engine
	keys   *keymap.Map

	mu       sync.Mutex
	buffer   string
	sel      edit.Selection
	revision int64
}

// Option configures a Session during creation.
type Option func(*Session)

// WithBuffer sets the initial buffer content.
func WithBuffer(text string) Option {
	return func(s *Session) {
		s.buffer = text
	}
}

// WithSelection sets the initial selection. It is clamped to the buffer
// once all options have applied.
func WithSelection(sel edit.Selection) Option {
	return func(s *Session) {
		s.sel = sel
	}
}

// WithKeymap replaces the default keymap.
func WithKeymap(m *keymap.Map) Option {
	return func(s *Session) {
		if m != nil {
			s.keys = m
		}
	}
}

// New creates a session with a fresh UUID and the default keymap.
func New(opts ...Option) *Session {
	s := &Session{
		id:     uuid.New().String(),
		engine: edit.NewEngine(),
		keys:   keymap.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.sel = s.sel.Clamp(len(s.buffer))
	return s
}

// ID returns the session's UUID.
func (s *Session) ID() string {
	return s.id
}

// Buffer returns the current buffer content.
func (s *Session) Buffer() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buffer
}

// Selection returns the current selection.
func (s *Session) Selection() edit.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sel
}

// Revision returns the number of buffer mutations so far.
func (s *Session) Revision() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revision
}

// Snapshot is a consistent view of the session state.
type Snapshot struct {
	Buffer    string
	Selection edit.Selection
	Revision  int64
}

// Snapshot returns the buffer, selection, and revision read under one
// lock acquisition.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{Buffer: s.buffer, Selection: s.sel, Revision: s.revision}
}

// HandleKey classifies ev and performs the resulting operation. It
// returns the action that ran, or the empty action for passthrough
// inserts and ignored events. The caller decides what app.quit means;
// the session leaves its state untouched for that action.
func (s *Session) HandleKey(ev key.Event) (keymap.Action, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Classified before keymap resolution so it cannot be rebound.
	if ev.IsChar() && ev.Rune == '}' {
		return keymap.ActionCloseBrace, s.applyLocked(edit.CloseBrace())
	}

	if act, ok := s.keys.Resolve(ev); ok {
		return act, s.performLocked(act)
	}

	if ev.IsChar() {
		s.insertLocked(string(ev.Rune))
		return "", nil
	}

	return "", nil
}

// SetKeymap swaps the keymap consulted by HandleKey. Used when the
// configuration reloads.
func (s *Session) SetKeymap(m *keymap.Map) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m != nil {
		s.keys = m
	}
}

// Perform executes a named action against the session.
func (s *Session) Perform(act keymap.Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.performLocked(act)
}

func (s *Session) performLocked(act keymap.Action) error {
	switch act {
	case keymap.ActionIndent:
		return s.applyLocked(edit.Tab(false))
	case keymap.ActionOutdent:
		return s.applyLocked(edit.Tab(true))
	case keymap.ActionNewline:
		return s.applyLocked(edit.Enter())
	case keymap.ActionCloseBrace:
		return s.applyLocked(edit.CloseBrace())
	case keymap.ActionBackspace:
		s.backspaceLocked()
	case keymap.ActionDelete:
		s.deleteForwardLocked()
	case keymap.ActionMoveLeft:
		s.moveLeftLocked()
	case keymap.ActionMoveRight:
		s.moveRightLocked()
	case keymap.ActionMoveUp:
		s.moveVerticalLocked(-1)
	case keymap.ActionMoveDown:
		s.moveVerticalLocked(1)
	case keymap.ActionMoveLineStart:
		s.moveLineStartLocked()
	case keymap.ActionMoveLineEnd:
		s.moveLineEndLocked()
	case keymap.ActionQuit:
		// Host concern; nothing to do here.
	default:
		return fmt.Errorf("%w: %q", keymap.ErrUnknownAction, act)
	}
	return nil
}

// applyLocked runs one engine command against the current state and
// commits its result.
func (s *Session) applyLocked(ev edit.KeyEvent) error {
	res, err := s.engine.Apply(ev, s.buffer, s.sel)
	if err != nil {
		return err
	}
	s.commitLocked(res)
	return nil
}

// Commit replaces the session state with an engine result.
func (s *Session) Commit(res edit.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commitLocked(res)
}

func (s *Session) commitLocked(res edit.Result) {
	s.buffer = res.Buffer
	s.sel = res.Selection.Clamp(len(res.Buffer))
	s.revision++
}

// InsertText replaces the selection with text and places the caret
// after it.
func (s *Session) InsertText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.insertLocked(text)
}

// Select sets the selection, clamped to the buffer.
func (s *Session) Select(start, end int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sel = edit.NewSelection(start, end).Clamp(len(s.buffer))
}
