package edit

import (
	"regexp"
	"strings"
)

// indentUnit is the fixed two-space indent step. The engine has no
// tab-width configuration; the unit never varies.
const indentUnit = "  "

// dedentPrefix matches one run of two whitespace characters anchored at
// the start of a line.
var dedentPrefix = regexp.MustCompile(`^\s\s`)

// Indent prefixes every line of text with the two-space indent unit,
// splitting on newlines. Empty lines are indented too; an empty line
// becomes two spaces.
func Indent(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = indentUnit + line
	}
	return strings.Join(lines, "\n")
}

// Dedent removes the leading match of two consecutive whitespace
// characters from each line of text. A line whose first two characters
// are not both whitespace is left unchanged; in particular a line with
// exactly one leading space keeps it. This is not a "strip up to two"
// rule: nothing shorter than a full two-character run is ever removed.
func Dedent(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = dedentPrefix.ReplaceAllString(line, "")
	}
	return strings.Join(lines, "\n")
}
