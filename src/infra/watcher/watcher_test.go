package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/serwizz/splitter/src/features/splitting"
)

func waitEvent(t *testing.T, events <-chan splitting.FolderEvent) {
	t.Helper()
	select {
	case <-events:
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for a folder event")
	}
}

func TestWatcher_SeesFoldersAnywhereInTheTree(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "existing"), 0755); err != nil {
		t.Fatal(err)
	}

	events := make(chan splitting.FolderEvent, 4)
	w, err := NewWatcher(events, 10*time.Millisecond)
	if err != nil {
		t.Fatalf("failed to create watcher: %v", err)
	}
	defer w.Stop()

	if err := w.Start(context.Background(), root); err != nil {
		t.Fatalf("failed to start watcher: %v", err)
	}

	// A folder dropped inside a subdirectory that existed before Start.
	if err := os.Mkdir(filepath.Join(root, "existing", "album"), 0755); err != nil {
		t.Fatal(err)
	}
	waitEvent(t, events)

	// A folder inside one the watcher only learned about at runtime.
	if err := os.Mkdir(filepath.Join(root, "existing", "album", "disc1"), 0755); err != nil {
		t.Fatal(err)
	}
	waitEvent(t, events)
}
