package edit

import "fmt"

// Engine dispatches classified key events to the editing commands. It is
// stateless: one Engine may serve any number of buffers, provided the
// host serializes edits per buffer, since each Result is only valid
// against the exact buffer snapshot passed in.
type Engine struct{}

// NewEngine creates an Engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Apply computes the edit for ev against buffer and sel and returns the
// new buffer together with the selection valid for it. A reversed
// selection is normalized before use. Offsets outside [0, len(buffer)]
// fail with ErrInvalidSelection and no mutation.
//
// The returned selection is clamped into the new buffer the way a text
// control clamps setSelectionRange; this keeps the offsets valid even
// when a compensation rule steps past a buffer boundary.
func (e *Engine) Apply(ev KeyEvent, buffer string, sel Selection) (Result, error) {
	sel = sel.Normalize()
	if !sel.ValidFor(len(buffer)) {
		return Result{}, selectionError(sel, len(buffer))
	}

	var (
		ed   Edit
		next Selection
	)
	switch ev.Kind {
	case KeyTab:
		ed, next = tabEdit(buffer, sel, ev.Shift)
	case KeyEnter:
		ed, next = enterEdit(buffer, sel)
	case KeyCloseBrace:
		ed, next = closeBraceEdit(buffer, sel)
	default:
		return Result{}, fmt.Errorf("%w: %v", ErrUnknownEvent, ev.Kind)
	}

	newBuffer := ed.Apply(buffer)
	return Result{Buffer: newBuffer, Selection: next.Clamp(len(newBuffer))}, nil
}
