package edit

import "fmt"

// Range is a byte range in a buffer. Start is inclusive, End is
// exclusive: [Start, End).
type Range struct {
	Start int
	End   int
}

// NewRange creates a Range from start and end offsets.
func NewRange(start, end int) Range {
	return Range{Start: start, End: end}
}

// Len returns the length of the range in bytes.
func (r Range) Len() int {
	return r.End - r.Start
}

// IsEmpty returns true if the range has zero length.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%d:%d)", r.Start, r.End)
}

// Edit is the primitive every command reduces to: a range to replace and
// the text that replaces it. An insertion is an Edit with an empty range.
type Edit struct {
	Range   Range
	NewText string
}

// NewInsert creates an Edit that inserts text at offset.
func NewInsert(offset int, text string) Edit {
	return Edit{Range: Range{Start: offset, End: offset}, NewText: text}
}

// NewReplace creates an Edit that replaces [start, end) with text.
func NewReplace(start, end int, text string) Edit {
	return Edit{Range: Range{Start: start, End: end}, NewText: text}
}

// Apply splices the edit into buffer and returns the new buffer.
// The range must be valid for buffer; callers validate before applying.
func (e Edit) Apply(buffer string) string {
	return buffer[:e.Range.Start] + e.NewText + buffer[e.Range.End:]
}

// String returns a human-readable representation of the edit.
func (e Edit) String() string {
	if e.Range.IsEmpty() {
		return fmt.Sprintf("Insert(%d, %q)", e.Range.Start, e.NewText)
	}
	return fmt.Sprintf("Replace%s with %q", e.Range, e.NewText)
}

// Result is the atomic outcome of applying a key event: the new buffer
// and the selection valid against it. Hosts must commit both fields
// together; applying one without the other breaks the offset invariant.
type Result struct {
	Buffer    string
	Selection Selection
}
