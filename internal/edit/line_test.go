package edit

import "testing"

func TestLineAt(t *testing.T) {
	tests := []struct {
		buffer    string
		offset    int
		wantStart int
		wantText  string
	}{
		{"", 0, 0, ""},
		{"abc", 0, 0, "abc"},
		{"abc", 2, 0, "abc"},
		{"abc", 3, 0, "abc"},
		{"a\nb", 0, 0, "a"},
		{"a\nb", 1, 0, "a"},
		{"a\nb", 2, 2, "b"},
		{"a\nb", 3, 2, "b"},
		{"a\n\nb", 2, 2, ""},
		{"a\nb\nc", 4, 4, "c"},
		{"a\n", 2, 2, ""},
		{"  x\ny", 3, 0, "  x"},
	}

	for _, tt := range tests {
		line := LineAt(tt.buffer, tt.offset)
		if line.Start != tt.wantStart {
			t.Errorf("LineAt(%q, %d).Start = %d, want %d", tt.buffer, tt.offset, line.Start, tt.wantStart)
		}
		if line.Text != tt.wantText {
			t.Errorf("LineAt(%q, %d).Text = %q, want %q", tt.buffer, tt.offset, line.Text, tt.wantText)
		}
	}
}

// A caret sitting on a newline belongs to the line the newline ends, not
// the one it starts.
func TestLineAtNewlineBoundary(t *testing.T) {
	line := LineAt("first\nsecond", 5)
	if line.Start != 0 || line.Text != "first" {
		t.Errorf("LineAt at newline = {%d, %q}, want {0, %q}", line.Start, line.Text, "first")
	}

	line = LineAt("first\nsecond", 6)
	if line.Start != 6 || line.Text != "second" {
		t.Errorf("LineAt after newline = {%d, %q}, want {6, %q}", line.Start, line.Text, "second")
	}
}

func TestLineEnd(t *testing.T) {
	tests := []struct {
		buffer string
		offset int
		want   int
	}{
		{"abc", 1, 3},
		{"a\nb", 0, 1},
		{"a\nbcd", 4, 5},
		{"", 0, 0},
	}

	for _, tt := range tests {
		if got := LineAt(tt.buffer, tt.offset).End(); got != tt.want {
			t.Errorf("LineAt(%q, %d).End() = %d, want %d", tt.buffer, tt.offset, got, tt.want)
		}
	}
}
