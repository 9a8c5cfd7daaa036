package edit

import (
	"regexp"
	"strings"
)

// blockOpeners are the line-ending characters after which Enter adds one
// extra indent level. A closed heuristic with no bracket matching; note
// the asymmetry with closeBraceEdit, which snaps back for } only.
const blockOpeners = "{[:>"

// leadingIndent matches the whitespace run at the start of a line.
var leadingIndent = regexp.MustCompile(`^\s+`)

// enterEdit inserts a newline carrying the current line's indentation,
// plus one extra unit when the line ends in a block opener. A non-empty
// selection is replaced by the insertion, as in any text field.
func enterEdit(buffer string, sel Selection) (Edit, Selection) {
	line := LineAt(buffer, sel.Start)

	indent := leadingIndent.FindString(line.Text)
	if n := len(line.Text); n > 0 && strings.IndexByte(blockOpeners, line.Text[n-1]) >= 0 {
		indent += indentUnit
	}

	text := "\n" + indent
	return NewReplace(sel.Start, sel.End, text), NewCaret(sel.Start + len(text))
}
