package macro

import (
	"errors"
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/editcore/internal/session"
)

// Macro host errors.
var (
	// ErrHostClosed indicates the host has been closed.
	ErrHostClosed = errors.New("macro host closed")

	// ErrNilSession indicates a host was created without a session.
	ErrNilSession = errors.New("macro host needs a session")
)

// Host is a sandboxed Lua interpreter bound to one session.
//
// gopher-lua states are not goroutine-safe; the mutex serializes script
// execution from Go. Lua itself runs single-threaded.
type Host struct {
	mu      sync.Mutex
	state   *lua.LState
	session *session.Session
	closed  bool
}

// NewHost creates a sandboxed interpreter with the edit module bound to
// sess.
func NewHost(sess *session.Session) (*Host, error) {
	if sess == nil {
		return nil, ErrNilSession
	}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(L)

	h := &Host{state: L, session: sess}
	h.registerEditModule()
	return h, nil
}

// openSafeLibraries opens only libraries that cannot escape the
// sandbox. io, os, debug, and package stay closed.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// DoString executes a Lua chunk. Execution is synchronous.
func (h *Host) DoString(code string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrHostClosed
	}
	return h.doWithRecovery(func() error {
		return h.state.DoString(code)
	})
}

// DoFile executes a Lua script file. Execution is synchronous.
func (h *Host) DoFile(path string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrHostClosed
	}
	return h.doWithRecovery(func() error {
		return h.state.DoFile(path)
	})
}

func (h *Host) doWithRecovery(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return fn()
}

// Close releases the interpreter. Safe to call more than once.
func (h *Host) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	h.state.Close()
}
