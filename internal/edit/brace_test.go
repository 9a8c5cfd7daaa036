package edit

import "testing"

func TestCloseBraceSnapsBackOneLevel(t *testing.T) {
	tests := []struct {
		buffer  string
		sel     Selection
		wantBuf string
		wantSel Selection
	}{
		{"    ", Selection{4, 4}, "  }", Selection{3, 3}},
		{"  ", Selection{2, 2}, "}", Selection{1, 1}},
		{"\t\t", Selection{2, 2}, "}", Selection{1, 1}},
		// Exactly one unit back, never a full dedent to line start.
		{"      ", Selection{6, 6}, "    }", Selection{5, 5}},
		{"a\n    ", Selection{6, 6}, "a\n  }", Selection{5, 5}},
		// Caret at the start of the indentation backs into offset zero.
		{"  ", Selection{0, 0}, "}  ", Selection{1, 1}},
	}

	eng := NewEngine()
	for _, tt := range tests {
		res, err := eng.Apply(CloseBrace(), tt.buffer, tt.sel)
		if err != nil {
			t.Errorf("Apply(CloseBrace, %q, %v) error = %v", tt.buffer, tt.sel, err)
			continue
		}
		if res.Buffer != tt.wantBuf || res.Selection != tt.wantSel {
			t.Errorf("Apply(CloseBrace, %q, %v) = {%q, %v}, want {%q, %v}",
				tt.buffer, tt.sel, res.Buffer, res.Selection, tt.wantBuf, tt.wantSel)
		}
	}
}

func TestCloseBraceInsertsInPlace(t *testing.T) {
	tests := []struct {
		buffer  string
		sel     Selection
		wantBuf string
		wantSel Selection
	}{
		// Lines with content get no adjustment.
		{"ab", Selection{1, 1}, "a}b", Selection{2, 2}},
		{"  x", Selection{2, 2}, "  }x", Selection{3, 3}},
		{"", Selection{0, 0}, "}", Selection{1, 1}},
		// A single whitespace character is below the two-space floor.
		{" ", Selection{1, 1}, " }", Selection{2, 2}},
		// A selection suppresses the snap-back even on blank indentation.
		{"    ", Selection{2, 4}, "  }", Selection{3, 3}},
		{"abc", Selection{1, 2}, "a}c", Selection{2, 2}},
	}

	eng := NewEngine()
	for _, tt := range tests {
		res, err := eng.Apply(CloseBrace(), tt.buffer, tt.sel)
		if err != nil {
			t.Errorf("Apply(CloseBrace, %q, %v) error = %v", tt.buffer, tt.sel, err)
			continue
		}
		if res.Buffer != tt.wantBuf || res.Selection != tt.wantSel {
			t.Errorf("Apply(CloseBrace, %q, %v) = {%q, %v}, want {%q, %v}",
				tt.buffer, tt.sel, res.Buffer, res.Selection, tt.wantBuf, tt.wantSel)
		}
	}
}
