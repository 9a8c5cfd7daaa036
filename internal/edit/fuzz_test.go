package edit

import "testing"

// FuzzApply checks the selection invariant over arbitrary inputs: every
// result's selection offsets are valid indices into the result's buffer.
func FuzzApply(f *testing.F) {
	// Seed corpus
	f.Add("", 0, 0, 0, false)
	f.Add("ab", 1, 1, 0, false)
	f.Add("  ", 2, 2, 0, true)
	f.Add("a\nb", 0, 3, 0, false)
	f.Add("if (x) {", 8, 8, 1, false)
	f.Add("    ", 4, 4, 2, false)
	f.Add("  a\n  b", 2, 5, 0, true)
	f.Add("\t\ta", 2, 3, 0, true)
	f.Add("日本語\n  ", 3, 9, 0, true)

	eng := NewEngine()

	f.Fuzz(func(t *testing.T, buffer string, start, end, kind int, shift bool) {
		// Clamp inputs to the valid selection space; invalid offsets
		// are covered by TestApplyInvalidSelection.
		if start < 0 {
			start = 0
		}
		if start > len(buffer) {
			start = len(buffer)
		}
		if end < 0 {
			end = 0
		}
		if end > len(buffer) {
			end = len(buffer)
		}
		if kind < 0 {
			kind = -kind
		}
		ev := KeyEvent{Kind: Kind(kind % 3), Shift: shift}
		sel := Selection{Start: start, End: end}

		res, err := eng.Apply(ev, buffer, sel)
		if err != nil {
			t.Fatalf("Apply(%v, %q, %v) error = %v", ev, buffer, sel, err)
		}

		got := res.Selection
		if got.Start < 0 || got.Start > got.End || got.End > len(res.Buffer) {
			t.Errorf("Apply(%v, %q, %v) selection %v invalid for buffer of length %d",
				ev, buffer, sel, got, len(res.Buffer))
		}

		// Same inputs, same outputs.
		again, err := eng.Apply(ev, buffer, sel)
		if err != nil {
			t.Fatalf("Apply repeat error = %v", err)
		}
		if res != again {
			t.Errorf("Apply(%v, %q, %v) differs on repeat", ev, buffer, sel)
		}
	})
}
