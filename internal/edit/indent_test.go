package edit

import "testing"

func TestIndent(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"", "  "},
		{"a", "  a"},
		{"a\nb", "  a\n  b"},
		{"a\n\nb", "  a\n  \n  b"},
		{"  a", "    a"},
		{"a\n", "  a\n  "},
	}

	for _, tt := range tests {
		if got := Indent(tt.text); got != tt.want {
			t.Errorf("Indent(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestDedent(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"", ""},
		{"a", "a"},
		{"  ", ""},
		{"  a", "a"},
		{"    a", "  a"},
		{"\t\ta", "a"},
		{"\t a", "a"},
		{"  a\n  b", "a\nb"},
		{"  a\n b\n    c", "a\n b\n  c"},
	}

	for _, tt := range tests {
		if got := Dedent(tt.text); got != tt.want {
			t.Errorf("Dedent(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

// Dedent strips only a full two-character whitespace run. A single
// leading space or a tab followed by content stays put.
func TestDedentNarrowMatch(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{" a", " a"},
		{" ", " "},
		{"\ta", "\ta"},
		{"\t", "\t"},
		{" x\n y", " x\n y"},
	}

	for _, tt := range tests {
		if got := Dedent(tt.text); got != tt.want {
			t.Errorf("Dedent(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

// Indenting then dedenting round-trips any text whose lines carry no
// leading whitespace of their own.
func TestIndentDedentRoundTrip(t *testing.T) {
	texts := []string{
		"",
		"abc",
		"a\nb\nc",
		"x\n\ny",
		"a b\nc d",
		"func main() {\nfmt.Println()\n}",
	}

	for _, text := range texts {
		if got := Dedent(Indent(text)); got != text {
			t.Errorf("Dedent(Indent(%q)) = %q, want original", text, got)
		}
	}
}
