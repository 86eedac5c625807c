package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultWatchDebounce coalesces the burst of events a single editor save produces
const DefaultWatchDebounce = 200 * time.Millisecond

// Watcher reports changes to the document file. It watches the parent
// directory so editors that replace the file by rename are still seen.
type Watcher struct {
	path     string
	debounce time.Duration
	onChange func()
	log      *zap.Logger

	fs    *fsnotify.Watcher
	done  chan struct{}
	wg    sync.WaitGroup
	mu    sync.Mutex
	timer *time.Timer
}

// NewWatcher creates a watcher for path; onChange runs on the watcher goroutine
func NewWatcher(path string, onChange func(), log *zap.Logger) *Watcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Watcher{
		path:     filepath.Clean(path),
		debounce: DefaultWatchDebounce,
		onChange: onChange,
		log:      log,
		done:     make(chan struct{}),
	}
}

// Start begins watching
func (w *Watcher) Start() error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		fsw.Close()
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(w.path), err)
	}
	w.fs = fsw

	w.wg.Add(1)
	go w.loop()
	return nil
}

// Close stops watching and waits for the watcher goroutine
func (w *Watcher) Close() error {
	if w.fs == nil {
		return nil
	}
	close(w.done)
	err := w.fs.Close()
	w.wg.Wait()

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				w.schedule()
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn("config watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		select {
		case <-w.done:
			return
		default:
		}
		w.log.Debug("config file changed", zap.String("path", w.path))
		if w.onChange != nil {
			w.onChange()
		}
	})
}
