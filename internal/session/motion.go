package session

import (
	"unicode/utf8"

	"github.com/dshills/editcore/internal/edit"
)

// moveLeftLocked collapses a selection to its start, or steps a caret
// one rune left.
func (s *Session) moveLeftLocked() {
	sel := s.sel.Normalize()
	if !sel.IsCaret() {
		s.sel = edit.NewCaret(sel.Start)
		return
	}
	if sel.Start == 0 {
		return
	}
	_, size := utf8.DecodeLastRuneInString(s.buffer[:sel.Start])
	s.sel = edit.NewCaret(sel.Start - size)
}

// moveRightLocked collapses a selection to its end, or steps a caret
// one rune right.
func (s *Session) moveRightLocked() {
	sel := s.sel.Normalize()
	if !sel.IsCaret() {
		s.sel = edit.NewCaret(sel.End)
		return
	}
	if sel.End >= len(s.buffer) {
		return
	}
	_, size := utf8.DecodeRuneInString(s.buffer[sel.End:])
	s.sel = edit.NewCaret(sel.End + size)
}

// moveVerticalLocked moves the caret one line up (delta -1) or down
// (delta +1), preserving the rune column where the target line is long
// enough. Moving up from the first line lands at offset 0; moving down
// from the last line lands at the end of the buffer.
func (s *Session) moveVerticalLocked(delta int) {
	sel := s.sel.Normalize()
	caret := sel.Start
	if delta > 0 {
		caret = sel.End
	}
	line := edit.LineAt(s.buffer, caret)
	col := utf8.RuneCountInString(s.buffer[line.Start:caret])

	if delta < 0 {
		if line.Start == 0 {
			s.sel = edit.NewCaret(0)
			return
		}
		prev := edit.LineAt(s.buffer, line.Start-1)
		s.sel = edit.NewCaret(prev.Start + columnOffset(prev.Text, col))
		return
	}

	next := line.End() + 1
	if next > len(s.buffer) {
		s.sel = edit.NewCaret(len(s.buffer))
		return
	}
	target := edit.LineAt(s.buffer, next)
	s.sel = edit.NewCaret(target.Start + columnOffset(target.Text, col))
}

// moveLineStartLocked places the caret at the start of the line
// containing the selection start.
func (s *Session) moveLineStartLocked() {
	line := edit.LineAt(s.buffer, s.sel.Normalize().Start)
	s.sel = edit.NewCaret(line.Start)
}

// moveLineEndLocked places the caret at the end of the line containing
// the selection end.
func (s *Session) moveLineEndLocked() {
	line := edit.LineAt(s.buffer, s.sel.Normalize().End)
	s.sel = edit.NewCaret(line.End())
}

// columnOffset converts a rune column into a byte offset within text,
// clamped to the end of the line.
func columnOffset(text string, col int) int {
	off := 0
	for i := 0; i < col && off < len(text); i++ {
		_, size := utf8.DecodeRuneInString(text[off:])
		off += size
	}
	return off
}
