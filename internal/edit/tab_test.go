package edit

import "testing"

func TestTabCaretInsertsIndentUnit(t *testing.T) {
	tests := []struct {
		buffer  string
		sel     Selection
		wantBuf string
		wantSel Selection
	}{
		{"ab", Selection{1, 1}, "a  b", Selection{3, 3}},
		{"", Selection{0, 0}, "  ", Selection{2, 2}},
		{"a", Selection{1, 1}, "a  ", Selection{3, 3}},
		{"a\nb", Selection{2, 2}, "a\n  b", Selection{4, 4}},
	}

	eng := NewEngine()
	for _, tt := range tests {
		res, err := eng.Apply(Tab(false), tt.buffer, tt.sel)
		if err != nil {
			t.Errorf("Apply(Tab, %q, %v) error = %v", tt.buffer, tt.sel, err)
			continue
		}
		if res.Buffer != tt.wantBuf || res.Selection != tt.wantSel {
			t.Errorf("Apply(Tab, %q, %v) = {%q, %v}, want {%q, %v}",
				tt.buffer, tt.sel, res.Buffer, res.Selection, tt.wantBuf, tt.wantSel)
		}
	}
}

func TestShiftTabCaretDedentsLine(t *testing.T) {
	tests := []struct {
		buffer  string
		sel     Selection
		wantBuf string
		wantSel Selection
	}{
		// Dedenting an indented blank line removes it entirely.
		{"  ", Selection{2, 2}, "", Selection{0, 0}},
		{"  ab", Selection{4, 4}, "ab", Selection{2, 2}},
		{"  ab", Selection{3, 3}, "ab", Selection{1, 1}},
		{"a\n  b", Selection{5, 5}, "a\nb", Selection{3, 3}},
		// A single leading space survives the narrow dedent match.
		{" a", Selection{2, 2}, " a", Selection{2, 2}},
		// Caret at line start dedents nothing.
		{"ab", Selection{0, 0}, "ab", Selection{0, 0}},
		{"ab", Selection{2, 2}, "ab", Selection{2, 2}},
	}

	eng := NewEngine()
	for _, tt := range tests {
		res, err := eng.Apply(Tab(true), tt.buffer, tt.sel)
		if err != nil {
			t.Errorf("Apply(Shift+Tab, %q, %v) error = %v", tt.buffer, tt.sel, err)
			continue
		}
		if res.Buffer != tt.wantBuf || res.Selection != tt.wantSel {
			t.Errorf("Apply(Shift+Tab, %q, %v) = {%q, %v}, want {%q, %v}",
				tt.buffer, tt.sel, res.Buffer, res.Selection, tt.wantBuf, tt.wantSel)
		}
	}
}

func TestShiftTabSelectionDedentsBlock(t *testing.T) {
	tests := []struct {
		buffer  string
		sel     Selection
		wantBuf string
		wantSel Selection
	}{
		// First line began with two spaces: selection start shifts
		// left by 2 so the caret stays with its text.
		{"  a\n  b", Selection{2, 5}, "a\n  b", Selection{0, 3}},
		{"  a", Selection{2, 3}, "a", Selection{0, 1}},
		{"  a\n b\nc", Selection{3, 8}, "a\n b\nc", Selection{1, 6}},
		// First line unindented: start stays where it was.
		{"a\n  b", Selection{0, 5}, "a\nb", Selection{0, 3}},
		// Compensation stepping past offset zero clamps there.
		{"  ab", Selection{1, 4}, "ab", Selection{0, 2}},
		// Tab-indented first line dedents but gets no two-space
		// compensation; the clamp keeps the selection inside the
		// shorter buffer.
		{"\t\ta", Selection{2, 3}, "a", Selection{1, 1}},
	}

	eng := NewEngine()
	for _, tt := range tests {
		res, err := eng.Apply(Tab(true), tt.buffer, tt.sel)
		if err != nil {
			t.Errorf("Apply(Shift+Tab, %q, %v) error = %v", tt.buffer, tt.sel, err)
			continue
		}
		if res.Buffer != tt.wantBuf || res.Selection != tt.wantSel {
			t.Errorf("Apply(Shift+Tab, %q, %v) = {%q, %v}, want {%q, %v}",
				tt.buffer, tt.sel, res.Buffer, res.Selection, tt.wantBuf, tt.wantSel)
		}
	}
}

func TestTabSelectionIndentsBlock(t *testing.T) {
	tests := []struct {
		buffer  string
		sel     Selection
		wantBuf string
		wantSel Selection
	}{
		{"a\nb", Selection{0, 3}, "  a\n  b", Selection{2, 7}},
		{"ab", Selection{0, 2}, "  ab", Selection{2, 4}},
		// Selection starting mid-line still indents from line start,
		// and the restored selection covers the same characters.
		{"hello", Selection{2, 4}, "  hello", Selection{4, 6}},
		{"abc\ndef", Selection{1, 5}, "  abc\n  def", Selection{3, 9}},
		{"a\n\nb", Selection{0, 4}, "  a\n  \n  b", Selection{2, 10}},
	}

	eng := NewEngine()
	for _, tt := range tests {
		res, err := eng.Apply(Tab(false), tt.buffer, tt.sel)
		if err != nil {
			t.Errorf("Apply(Tab, %q, %v) error = %v", tt.buffer, tt.sel, err)
			continue
		}
		if res.Buffer != tt.wantBuf || res.Selection != tt.wantSel {
			t.Errorf("Apply(Tab, %q, %v) = {%q, %v}, want {%q, %v}",
				tt.buffer, tt.sel, res.Buffer, res.Selection, tt.wantBuf, tt.wantSel)
		}
	}
}
