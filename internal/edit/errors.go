package edit

import (
	"errors"
	"fmt"
)

// Errors returned by engine operations.
var (
	// ErrInvalidSelection indicates selection offsets outside [0, len(buffer)].
	ErrInvalidSelection = errors.New("selection out of range")

	// ErrUnknownEvent indicates a key event kind outside the engine surface.
	ErrUnknownEvent = errors.New("unknown key event")
)

// selectionError wraps ErrInvalidSelection with the offending offsets.
func selectionError(sel Selection, bufLen int) error {
	return fmt.Errorf("%w: [%d:%d] in buffer of length %d", ErrInvalidSelection, sel.Start, sel.End, bufLen)
}
