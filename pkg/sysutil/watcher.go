package sysutil

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// SaveDirWatcher monitors the save directory for changes made outside
// the running process and reports them after debouncing.
type SaveDirWatcher struct {
	watcher   *fsnotify.Watcher
	dir       string
	debounce  time.Duration
	onChange  func(path string)
	onError   func(error)
	stopCh    chan struct{}
	stoppedCh chan struct{}
	mu        sync.Mutex
	running   bool
}

// newSaveDirWatcher creates a watcher on dir. onChange is called with
// the path of the last event in a debounced burst; onError may be nil.
func newSaveDirWatcher(dir string, debounce time.Duration, onChange func(path string), onError func(error)) (*SaveDirWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}

	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, err
	}

	return &SaveDirWatcher{
		watcher:   watcher,
		dir:       dir,
		debounce:  debounce,
		onChange:  onChange,
		onError:   onError,
		stopCh:    make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}, nil
}

// Dir returns the watched directory.
func (w *SaveDirWatcher) Dir() string {
	return w.dir
}

// Start begins watching in a goroutine. Starting a running watcher is a
// no-op.
func (w *SaveDirWatcher) Start() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mu.Unlock()

	go w.watchLoop()
}

// Stop stops the watcher and waits for cleanup.
func (w *SaveDirWatcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.mu.Unlock()

	close(w.stopCh)
	<-w.stoppedCh
}

// watchLoop is the main event loop with debouncing.
func (w *SaveDirWatcher) watchLoop() {
	defer close(w.stoppedCh)
	defer w.watcher.Close()

	var debounceTimer *time.Timer
	var debounceCh <-chan time.Time
	var lastPath string

	for {
		select {
		case <-w.stopCh:
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			w.mu.Lock()
			w.running = false
			w.mu.Unlock()
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			// Write/create/rename/remove all indicate external save
			// activity; chmod alone does not.
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}

			lastPath = event.Name

			// Debounce: reset the timer on each event in a burst.
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.NewTimer(w.debounce)
			debounceCh = debounceTimer.C

		case <-debounceCh:
			if w.onChange != nil {
				w.onChange(lastPath)
			}
			debounceTimer = nil
			debounceCh = nil

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if w.onError != nil {
				w.onError(err)
			}
		}
	}
}
