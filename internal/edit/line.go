package edit

import "strings"

// Line is a derived view of the buffer line containing an offset. Lines
// are recomputed per command invocation and never stored, so they cannot
// go stale when the buffer mutates. Text does not include the trailing
// newline.
type Line struct {
	Start int
	Text  string
}

// End returns the offset one past the last character of the line text.
func (l Line) End() int {
	return l.Start + len(l.Text)
}

// LineAt locates the line containing offset. Start is the index
// immediately after the nearest newline strictly before offset, or 0 if
// there is none. Text runs from Start to the next newline, or to the end
// of the buffer. When a span crosses newlines only the first line is
// reported; block operations rescan from their own boundaries.
func LineAt(buffer string, offset int) Line {
	start := strings.LastIndexByte(buffer[:offset], '\n') + 1
	text := buffer[start:]
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	return Line{Start: start, Text: text}
}
