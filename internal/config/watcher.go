package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDelay collapses the bursts of filesystem events editors emit
// while writing a file.
const reloadDelay = 100 * time.Millisecond

// Watcher reloads the configuration file when it changes on disk.
// Successful reloads arrive on Configs; load failures arrive on Errors
// and leave the previous configuration in effect.
type Watcher struct {
	path    string
	fsw     *fsnotify.Watcher
	configs chan *Config
	errs    chan error

	mu      sync.Mutex
	closed  bool
	closeCh chan struct{}
	wg      sync.WaitGroup
}

// NewWatcher watches the configuration file at path. The file's
// directory is watched rather than the file itself, so atomic saves
// that replace the file keep being seen.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		path:    abs,
		fsw:     fsw,
		configs: make(chan *Config, 4),
		errs:    make(chan error, 4),
		closeCh: make(chan struct{}),
	}

	w.wg.Add(1)
	go w.processLoop()

	return w, nil
}

// Configs returns the channel of reloaded configurations.
func (w *Watcher) Configs() <-chan *Config {
	return w.configs
}

// Errors returns the channel of reload failures.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Close stops the watcher and closes its channels.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	w.wg.Wait()

	close(w.configs)
	close(w.errs)
	return w.fsw.Close()
}

// processLoop handles filesystem events with a trailing-edge debounce:
// the reload happens reloadDelay after the last event in a burst.
func (w *Watcher) processLoop() {
	defer w.wg.Done()

	timer := time.NewTimer(0)
	if !timer.Stop() {
		<-timer.C
	}
	armed := false

	for {
		select {
		case <-w.closeCh:
			if armed && !timer.Stop() {
				<-timer.C
			}
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Rename) {
				continue
			}
			if armed && !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(reloadDelay)
			armed = true

		case <-timer.C:
			armed = false
			cfg, err := Load(w.path)
			if err != nil {
				w.sendError(err)
				continue
			}
			w.sendConfig(cfg)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		}
	}
}

// sendConfig delivers a reloaded config without blocking; when the
// receiver lags, older reloads are dropped in favor of newer ones.
func (w *Watcher) sendConfig(cfg *Config) {
	for {
		select {
		case w.configs <- cfg:
			return
		default:
			select {
			case <-w.configs:
			default:
			}
		}
	}
}

// sendError delivers an error without blocking, dropping it when the
// channel is full.
func (w *Watcher) sendError(err error) {
	select {
	case w.errs <- err:
	default:
	}
}
