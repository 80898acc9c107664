package splitting

import (
	"context"
	"log/slog"
	"time"
)

// Watcher defines the interface for file system watchers driving watch mode.
type Watcher interface {
	Start(ctx context.Context, watchPath string) error
	Stop()
}

// FolderEvent signals that something under the watched root changed enough
// to warrant a rescan.
type FolderEvent struct {
	Path      string
	Timestamp time.Time
}

// Watch runs the tree walk once, then reruns it every time the watcher
// reports new content under root, until the context is cancelled. Rescans
// are sequential; events arriving mid-walk coalesce into the next one.
func (s *Service) Watch(ctx context.Context, root string, events <-chan FolderEvent) error {
	if _, err := s.Run(ctx, root); err != nil {
		return err
	}

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return nil
			}
			slog.Info("Change detected, rescanning", "path", event.Path)
			if _, err := s.Run(ctx, root); err != nil {
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
