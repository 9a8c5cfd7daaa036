package edit

import "regexp"

// indentedBlankLine matches a line made up entirely of two or more
// whitespace characters.
var indentedBlankLine = regexp.MustCompile(`^\s{2,}$`)

// closeBraceEdit inserts a closing brace. When the caret sits on a line
// of nothing but indentation, the insertion first backs up exactly one
// indent unit, so a brace closing an auto-indented block snaps back one
// level. Always exactly two characters, never a full dedent to line
// start, and only for }: the ] and > closers get no such treatment.
func closeBraceEdit(buffer string, sel Selection) (Edit, Selection) {
	start := sel.Start
	if sel.IsCaret() {
		line := LineAt(buffer, sel.Start)
		if indentedBlankLine.MatchString(line.Text) {
			start -= len(indentUnit)
			if start < 0 {
				start = 0
			}
		}
	}
	return NewReplace(start, sel.End, "}"), NewCaret(start + 1)
}
