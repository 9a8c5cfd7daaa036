package session

import (
	"unicode/utf8"

	"github.com/dshills/editcore/internal/edit"
)

// insertLocked replaces the selection with text. The caret lands after
// the inserted text.
func (s *Session) insertLocked(text string) {
	sel := s.sel.Normalize()
	s.buffer = edit.NewReplace(sel.Start, sel.End, text).Apply(s.buffer)
	s.sel = edit.NewCaret(sel.Start + len(text))
	s.revision++
}

// backspaceLocked deletes the selection, or the rune before a caret.
func (s *Session) backspaceLocked() {
	sel := s.sel.Normalize()
	if !sel.IsCaret() {
		s.deleteRangeLocked(sel.Start, sel.End)
		return
	}
	if sel.Start == 0 {
		return
	}
	_, size := utf8.DecodeLastRuneInString(s.buffer[:sel.Start])
	s.deleteRangeLocked(sel.Start-size, sel.Start)
}

// deleteForwardLocked deletes the selection, or the rune after a caret.
func (s *Session) deleteForwardLocked() {
	sel := s.sel.Normalize()
	if !sel.IsCaret() {
		s.deleteRangeLocked(sel.Start, sel.End)
		return
	}
	if sel.Start >= len(s.buffer) {
		return
	}
	_, size := utf8.DecodeRuneInString(s.buffer[sel.Start:])
	s.deleteRangeLocked(sel.Start, sel.Start+size)
}

func (s *Session) deleteRangeLocked(start, end int) {
	s.buffer = edit.NewReplace(start, end, "").Apply(s.buffer)
	s.sel = edit.NewCaret(start)
	s.revision++
}
