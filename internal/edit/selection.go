package edit

import "fmt"

// Selection is a directionless pair of byte offsets into a buffer.
// Start == End denotes a caret with no selected text. The engine never
// distinguishes anchor from head; it always operates left to right on the
// normalized pair, mirroring how a plain text control reports
// selectionStart and selectionEnd.
// Selection is an immutable value type.
type Selection struct {
	Start int
	End   int
}

// NewSelection creates a selection covering [start, end].
func NewSelection(start, end int) Selection {
	return Selection{Start: start, End: end}
}

// NewCaret creates a collapsed selection at offset.
func NewCaret(offset int) Selection {
	return Selection{Start: offset, End: offset}
}

// IsCaret returns true if the selection has no extent.
func (s Selection) IsCaret() bool {
	return s.Start == s.End
}

// Len returns the number of bytes the selection covers.
func (s Selection) Len() int {
	if s.Start <= s.End {
		return s.End - s.Start
	}
	return s.Start - s.End
}

// Normalize returns the selection with Start <= End, swapping a reversed
// pair. Commands always operate on the normalized form.
func (s Selection) Normalize() Selection {
	if s.Start > s.End {
		return Selection{Start: s.End, End: s.Start}
	}
	return s
}

// ValidFor reports whether the selection offsets are valid indices into a
// buffer of length n.
func (s Selection) ValidFor(n int) bool {
	s = s.Normalize()
	return s.Start >= 0 && s.End <= n
}

// Clamp returns the selection with both offsets forced into [0, n] and
// Start <= End.
func (s Selection) Clamp(n int) Selection {
	s = s.Normalize()
	if s.Start < 0 {
		s.Start = 0
	}
	if s.End > n {
		s.End = n
	}
	if s.Start > s.End {
		s.Start = s.End
	}
	return s
}

// String returns a human-readable representation of the selection.
func (s Selection) String() string {
	if s.IsCaret() {
		return fmt.Sprintf("caret@%d", s.Start)
	}
	return fmt.Sprintf("[%d:%d]", s.Start, s.End)
}
