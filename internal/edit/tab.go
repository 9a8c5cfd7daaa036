package edit

import "strings"

// tabEdit implements Tab and Shift+Tab over the four combinations of
// (selection present, shift held). Every case reduces to a single Edit
// plus the selection to restore after splicing it in.
func tabEdit(buffer string, sel Selection, shift bool) (Edit, Selection) {
	switch {
	case sel.IsCaret() && !shift:
		// Insert one indent unit at the caret.
		return NewInsert(sel.Start, indentUnit), NewCaret(sel.Start + len(indentUnit))

	case sel.IsCaret() && shift:
		// Dedent from the start of the current line through the caret
		// and collapse the caret to the end of the dedented text.
		line := LineAt(buffer, sel.Start)
		dedented := Dedent(buffer[line.Start:sel.Start])
		return NewReplace(line.Start, sel.Start, dedented), NewCaret(line.Start + len(dedented))

	case shift:
		// Dedent every selected line. The selection start shifts left
		// by 2 when the first line began with two spaces, keeping the
		// caret stable relative to the text it sat in; the end lands
		// after the dedented block.
		line := LineAt(buffer, sel.Start)
		dedented := Dedent(buffer[line.Start:sel.End])
		start := sel.Start
		if strings.HasPrefix(line.Text, indentUnit) {
			start -= len(indentUnit)
		}
		return NewReplace(line.Start, sel.End, dedented), NewSelection(start, line.Start+len(dedented))

	default:
		// Indent every selected line. The selection start advances past
		// the unit added to the first line; the end lands after the
		// indented block.
		line := LineAt(buffer, sel.Start)
		indented := Indent(buffer[line.Start:sel.End])
		return NewReplace(line.Start, sel.End, indented), NewSelection(sel.Start+len(indentUnit), line.Start+len(indented))
	}
}
