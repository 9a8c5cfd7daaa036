package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
	"sync/atomic"

	"github.com/dshills/editcore/internal/config"
	"github.com/dshills/editcore/internal/input/keymap"
	"github.com/dshills/editcore/internal/session"
	"github.com/dshills/editcore/internal/tui"
)

// Options configures the application.
type Options struct {
	// ConfigPath is the configuration file. Empty means the default
	// location; a missing default is not an error.
	ConfigPath string

	// File seeds the buffer with a file's content. A path that does
	// not exist yet starts an empty buffer.
	File string

	// LogLevel overrides the configured log level when non-empty.
	LogLevel string
}

// Application wires configuration, keymap, session, and terminal into
// the main event loop.
type Application struct {
	mu   sync.RWMutex
	opts Options

	logger  *Logger
	logFile *os.File

	configPath string
	config     *config.Config

	session  *session.Session
	view     *tui.View
	terminal *tui.Terminal
	watcher  *config.Watcher

	running atomic.Bool
}

// New creates an application with the given options. The terminal is
// not touched until Run.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:   opts,
		view:   tui.NewView(),
		logger: NullLogger,
	}

	if err := app.bootstrap(); err != nil {
		app.Shutdown()
		return nil, err
	}
	return app, nil
}

// bootstrap initializes components in dependency order.
func (app *Application) bootstrap() error {
	if err := app.loadConfig(); err != nil {
		return err
	}
	if err := app.openLogger(); err != nil {
		return err
	}

	km := keymap.Default()
	if err := km.ApplyOverrides(app.config.Keymap.Bindings); err != nil {
		return NewOperationError("apply keymap bindings", app.configPath, err)
	}

	buffer, err := app.initialBuffer()
	if err != nil {
		return err
	}

	app.session = session.New(session.WithBuffer(buffer), session.WithKeymap(km))
	return nil
}

func (app *Application) loadConfig() error {
	path := app.opts.ConfigPath
	explicit := path != ""
	if !explicit {
		path = config.DefaultPath()
	}
	app.configPath = path

	if path == "" {
		app.config = config.Default()
		return nil
	}

	cfg, err := config.Load(path)
	switch {
	case err == nil:
		app.config = cfg
	case !explicit && errors.Is(err, config.ErrNotFound):
		app.config = config.Default()
	default:
		return NewOperationError("load config", path, err)
	}
	return nil
}

// openLogger builds the application logger. Without a configured log
// file the logger stays silent: writing to stderr would corrupt the
// terminal while tcell owns it.
func (app *Application) openLogger() error {
	if app.config.Log.File == "" {
		app.logger = NullLogger
		return nil
	}

	f, err := os.OpenFile(app.config.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return NewOperationError("open log file", app.config.Log.File, err)
	}

	level := ParseLogLevel(app.config.Log.Level)
	if app.opts.LogLevel != "" {
		level = ParseLogLevel(app.opts.LogLevel)
	}

	app.logFile = f
	app.logger = NewLogger(LoggerConfig{Level: level, Output: f, Prefix: "editcore"})
	return nil
}

func (app *Application) initialBuffer() (string, error) {
	if app.opts.File == "" {
		return "", nil
	}
	data, err := os.ReadFile(app.opts.File)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", NewOperationError("open file", app.opts.File, err)
	}
	return string(data), nil
}

// Session returns the editing session.
func (app *Application) Session() *session.Session {
	return app.session
}

// Config returns the active configuration.
func (app *Application) Config() *config.Config {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.config
}

// SetTerminal injects the terminal to run on. Run creates one over the
// tty when none was injected.
func (app *Application) SetTerminal(t *tui.Terminal) error {
	if app.running.Load() {
		return ErrAlreadyRunning
	}
	app.mu.Lock()
	app.terminal = t
	app.mu.Unlock()
	return nil
}

// Run enters the event loop and blocks until quit, Shutdown, or a
// fatal error. A user-requested quit returns ErrQuit.
func (app *Application) Run() error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	app.mu.Lock()
	term := app.terminal
	app.mu.Unlock()

	if term == nil {
		t, err := tui.NewTerminal()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInitialization, err)
		}
		term = t
		app.mu.Lock()
		app.terminal = term
		app.mu.Unlock()
	}

	if err := term.Init(); err != nil {
		return fmt.Errorf("%w: %v", ErrInitialization, err)
	}
	defer term.Fini()

	app.startWatcher(term)
	app.logger.WithComponent("app").Info("session %s started", app.session.ID())

	return app.loop(term)
}

func (app *Application) loop(term *tui.Terminal) error {
	for {
		app.redraw(term)

		ev := term.PollEvent()
		switch ev.Kind {
		case tui.EventKey:
			act, err := app.session.HandleKey(ev.Key)
			if err != nil {
				app.logger.WithComponent("session").Error("handle key: %v", err)
				continue
			}
			if act == keymap.ActionQuit {
				return ErrQuit
			}
		case tui.EventResize, tui.EventWake:
			// Redrawn at the top of the loop.
		case tui.EventClosed:
			return nil
		}
	}
}

func (app *Application) redraw(term *tui.Terminal) {
	app.mu.RLock()
	show := app.config.UI.StatusLine
	app.mu.RUnlock()

	app.view.Render(term, app.session.Snapshot(), app.session.ID(), show)
}

// startWatcher begins watching the config file for live reload. A
// watch failure disables reload but never stops the editor.
func (app *Application) startWatcher(term *tui.Terminal) {
	if !app.config.LiveReload || app.configPath == "" {
		return
	}

	w, err := config.NewWatcher(app.configPath)
	if err != nil {
		app.logger.WithComponent("config").Warn("watch disabled: %v", err)
		return
	}

	app.mu.Lock()
	app.watcher = w
	app.mu.Unlock()

	go app.watchConfig(w, term)
}

func (app *Application) watchConfig(w *config.Watcher, term *tui.Terminal) {
	for {
		select {
		case cfg, ok := <-w.Configs():
			if !ok {
				return
			}
			app.applyConfig(cfg)
			term.Wake()
		case err, ok := <-w.Errors():
			if !ok {
				return
			}
			app.logger.WithComponent("config").Warn("reload failed: %v", err)
		}
	}
}

// applyConfig swaps in a reloaded configuration. A configuration whose
// bindings fail validation is rejected and the previous one stays.
func (app *Application) applyConfig(cfg *config.Config) {
	km := keymap.Default()
	if err := km.ApplyOverrides(cfg.Keymap.Bindings); err != nil {
		app.logger.WithComponent("config").Warn("reload rejected: %v", err)
		return
	}

	app.mu.Lock()
	app.config = cfg
	app.mu.Unlock()

	app.session.SetKeymap(km)
	if app.logFile != nil && app.opts.LogLevel == "" {
		app.logger.SetLevel(ParseLogLevel(cfg.Log.Level))
	}
	app.logger.WithComponent("config").Info("configuration reloaded")
}

// Shutdown releases resources. Safe on every exit path; a running
// event loop unblocks and returns.
func (app *Application) Shutdown() {
	app.mu.Lock()
	w := app.watcher
	term := app.terminal
	f := app.logFile
	app.watcher = nil
	app.terminal = nil
	app.logFile = nil
	app.mu.Unlock()

	if w != nil {
		_ = w.Close()
	}
	if term != nil {
		term.Fini()
	}
	if f != nil {
		_ = f.Close()
	}
}
