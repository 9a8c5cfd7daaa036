package scenario

import (
	"fmt"
	"io"
	"strings"

	"github.com/dshills/editcore/internal/edit"
	"github.com/dshills/editcore/internal/input/key"
)

// stepEvent translates a chord spec into an engine key event. Only the
// keys the engine models are accepted.
func stepEvent(spec string) (edit.KeyEvent, error) {
	ev, err := key.Parse(spec)
	if err != nil {
		return edit.KeyEvent{}, err
	}

	switch {
	case ev.Key == key.KeyTab && ev.Modifiers == key.ModNone:
		return edit.Tab(false), nil
	case ev.Key == key.KeyTab && ev.Modifiers == key.ModShift:
		return edit.Tab(true), nil
	case ev.Key == key.KeyEnter && ev.Modifiers == key.ModNone:
		return edit.Enter(), nil
	case ev.Key == key.KeyRune && ev.Rune == '}':
		return edit.CloseBrace(), nil
	default:
		return edit.KeyEvent{}, fmt.Errorf("%w: %q is not an engine key", ErrInvalidScenario, spec)
	}
}

// Run executes one scenario against a fresh engine. A nil return means
// the scenario passed.
func Run(sc Scenario) error {
	if err := sc.validate(); err != nil {
		return err
	}

	eng := edit.NewEngine()
	buffer := sc.Buffer
	sel := edit.NewSelection(sc.Selection[0], sc.Selection[1])

	for i, step := range sc.Steps {
		ev, err := stepEvent(step)
		if err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}

		res, err := eng.Apply(ev, buffer, sel)
		if err != nil {
			if sc.Want.Error != "" && strings.Contains(err.Error(), sc.Want.Error) {
				return nil
			}
			return fmt.Errorf("step %d (%s): %w", i+1, step, err)
		}
		buffer, sel = res.Buffer, res.Selection
	}

	if sc.Want.Error != "" {
		return fmt.Errorf("expected error containing %q, got none", sc.Want.Error)
	}
	if buffer != sc.Want.Buffer {
		return fmt.Errorf("buffer = %q, want %q", buffer, sc.Want.Buffer)
	}
	if want := edit.NewSelection(sc.Want.Selection[0], sc.Want.Selection[1]); sel != want {
		return fmt.Errorf("selection = %v, want %v", sel, want)
	}
	return nil
}

// Result pairs a scenario name with its run outcome.
type Result struct {
	Name string
	Err  error
}

// RunAll executes every scenario and collects the outcomes.
func RunAll(scs []Scenario) []Result {
	results := make([]Result, 0, len(scs))
	for _, sc := range scs {
		results = append(results, Result{Name: sc.Name, Err: Run(sc)})
	}
	return results
}

// Report writes a line per result plus a summary, and reports whether
// every scenario passed.
func Report(w io.Writer, results []Result) bool {
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(w, "FAIL  %s: %v\n", r.Name, r.Err)
			continue
		}
		fmt.Fprintf(w, "ok    %s\n", r.Name)
	}
	fmt.Fprintf(w, "%d scenarios, %d failed\n", len(results), failed)
	return failed == 0
}
