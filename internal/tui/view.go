package tui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/dshills/editcore/internal/edit"
	"github.com/dshills/editcore/internal/session"
)

// tabWidth is the display width of a tab character.
const tabWidth = 4

// View paints a session snapshot onto a terminal.
type View struct {
	text     tcell.Style
	selected tcell.Style
	status   tcell.Style
}

// NewView creates a view with the default styles.
func NewView() *View {
	return &View{
		text:     tcell.StyleDefault,
		selected: tcell.StyleDefault.Reverse(true),
		status:   tcell.StyleDefault.Reverse(true),
	}
}

// Render draws the buffer, selection, cursor, and status line. The
// viewport follows the caret vertically; long lines are truncated at
// the right edge.
func (v *View) Render(t *Terminal, snap session.Snapshot, id string, showStatus bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.screen
	s.Clear()
	width, height := s.Size()
	if width <= 0 || height <= 0 {
		return
	}

	textRows := height
	if showStatus {
		textRows--
	}

	sel := snap.Selection.Normalize()
	lines := strings.Split(snap.Buffer, "\n")
	caretRow, caretCol := caretPosition(lines, sel.End)

	top := 0
	if caretRow >= textRows {
		top = caretRow - textRows + 1
	}

	lineStart := 0
	for i, line := range lines {
		if row := i - top; row >= 0 && row < textRows {
			v.drawLine(s, row, width, line, lineStart, sel)
		}
		lineStart += len(line) + 1
	}

	if showStatus {
		v.drawStatus(s, width, height-1, snap, id)
	}

	if row := caretRow - top; row >= 0 && row < textRows && caretCol < width {
		s.ShowCursor(caretCol, row)
	} else {
		s.HideCursor()
	}

	s.Show()
}

// drawLine paints one buffer line. Cells inside the selection render
// reversed; a selected line break shows as one reversed cell past the
// end of the line.
func (v *View) drawLine(s tcell.Screen, row, width int, line string, lineStart int, sel edit.Selection) {
	x := 0
	gr := uniseg.NewGraphemes(line)
	for gr.Next() && x < width {
		from, _ := gr.Positions()
		off := lineStart + from

		style := v.text
		if off >= sel.Start && off < sel.End {
			style = v.selected
		}

		runes := gr.Runes()
		if runes[0] == '\t' {
			for i := 0; i < tabWidth && x < width; i++ {
				s.SetContent(x, row, ' ', nil, style)
				x++
			}
			continue
		}

		s.SetContent(x, row, runes[0], runes[1:], style)
		x += cellWidth(gr.Width())
	}

	end := lineStart + len(line)
	if end >= sel.Start && end < sel.End && x < width {
		s.SetContent(x, row, ' ', nil, v.selected)
	}
}

func (v *View) drawStatus(s tcell.Screen, width, row int, snap session.Snapshot, id string) {
	left := fmt.Sprintf(" %s  rev %d  %s", shortID(id), snap.Revision, snap.Selection)
	const hint = "Ctrl+Q quit "

	line := left
	if pad := width - displayWidth(left) - displayWidth(hint); pad > 0 {
		line = left + strings.Repeat(" ", pad) + hint
	}

	x := 0
	gr := uniseg.NewGraphemes(line)
	for gr.Next() && x < width {
		runes := gr.Runes()
		s.SetContent(x, row, runes[0], runes[1:], v.status)
		x += cellWidth(gr.Width())
	}
	for ; x < width; x++ {
		s.SetContent(x, row, ' ', nil, v.status)
	}
}

// caretPosition locates the caret's row and display column for an
// offset that the session guarantees lies within the buffer.
func caretPosition(lines []string, offset int) (int, int) {
	lineStart := 0
	for i, line := range lines {
		end := lineStart + len(line)
		if offset <= end {
			return i, displayWidth(line[:offset-lineStart])
		}
		lineStart = end + 1
	}
	last := len(lines) - 1
	return last, displayWidth(lines[last])
}

// displayWidth measures text the same way drawLine advances: tabs
// expand to tabWidth, every other cluster occupies at least one cell.
func displayWidth(text string) int {
	w := 0
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		if gr.Runes()[0] == '\t' {
			w += tabWidth
			continue
		}
		w += cellWidth(gr.Width())
	}
	return w
}

func cellWidth(w int) int {
	if w < 1 {
		return 1
	}
	return w
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
