package watcher

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/serwizz/splitter/src/features/splitting"
)

// Watcher monitors the root folder for newly dropped album folders and emits
// a debounced event once a rip has finished landing.
type Watcher struct {
	watcher       *fsnotify.Watcher
	watchPath     string
	debounce      time.Duration
	debounceTimer *time.Timer
	debounceMutex sync.Mutex
	running       bool
	stopChan      chan struct{}
	eventChan     chan<- splitting.FolderEvent
}

// NewWatcher creates a new file system watcher.
func NewWatcher(eventChan chan<- splitting.FolderEvent, debounce time.Duration) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		watcher:   fsWatcher,
		debounce:  debounce,
		eventChan: eventChan,
		stopChan:  make(chan struct{}),
	}, nil
}

// Start begins watching the root path for new folders. Albums can land
// anywhere in the tree, so every existing directory joins the watch set up
// front and new ones are added as they appear.
func (w *Watcher) Start(ctx context.Context, watchPath string) error {
	w.watchPath = watchPath
	slog.Info("Starting folder watcher", "path", watchPath)

	err := filepath.WalkDir(watchPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		return w.watcher.Add(path)
	})
	if err != nil {
		return err
	}

	w.running = true
	go w.watchLoop(ctx)

	slog.Info("Folder watcher started successfully")
	return nil
}

// Stop stops the file watcher.
func (w *Watcher) Stop() {
	if !w.running {
		return
	}

	slog.Info("Stopping folder watcher")
	w.running = false
	close(w.stopChan)

	w.debounceMutex.Lock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
		w.debounceTimer = nil
	}
	w.debounceMutex.Unlock()

	w.watcher.Close()
}

// watchLoop processes file system events.
func (w *Watcher) watchLoop(ctx context.Context) {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Folder watcher error", "error", err)

		case <-w.stopChan:
			return

		case <-ctx.Done():
			return
		}
	}
}

// handleEvent reacts to new directories appearing under the root. Rips land
// file by file, so the debounce window restarts on every creation and the
// event only fires once the folder has settled.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op&fsnotify.Create != fsnotify.Create {
		return
	}

	info, err := os.Stat(event.Name)
	if err != nil || !info.IsDir() {
		return
	}

	slog.Info("Detected new folder", "folder", event.Name)

	if err := w.watcher.Add(event.Name); err != nil {
		slog.Error("Failed to watch new folder", "folder", event.Name, "error", err)
	}

	w.debounceMutex.Lock()
	defer w.debounceMutex.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.debounce, func() {
		w.emitDebounceEvent()
	})
}

// emitDebounceEvent emits a folder event after the debounce period.
func (w *Watcher) emitDebounceEvent() {
	event := splitting.FolderEvent{
		Path:      w.watchPath,
		Timestamp: time.Now(),
	}

	select {
	case w.eventChan <- event:
		slog.Info("Emitted folder event after debounce", "path", event.Path)
	default:
		slog.Warn("Event channel full, dropping folder event", "path", event.Path)
	}
}
