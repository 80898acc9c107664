package splitting

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
	"github.com/serwizz/splitter/src/features/config"
	"github.com/serwizz/splitter/src/music"
)

// Stats contains counters for one tree walk.
type Stats struct {
	Processed int
	Skipped   int
	Failed    int
}

// Service is the domain service for the splitting feature.
type Service struct {
	config   *config.Manager
	runner   ToolRunner
	verifier TagVerifier
}

// NewService creates a new splitting service.
func NewService(runner ToolRunner, verifier TagVerifier, cfg *config.Manager) *Service {
	return &Service{
		config:   cfg,
		runner:   runner,
		verifier: verifier,
	}
}

// Run walks the tree rooted at root and runs the album pipeline on every
// subfolder, depth first in sorted order. The root itself is never treated
// as an album. One album failing aborts that album only; the walk carries on
// with the next folder.
func (s *Service) Run(ctx context.Context, root string) (Stats, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to resolve root path: %w", err)
	}

	logger := slog.With("run_id", uuid.New().String())
	logger.Info("Starting tree walk", "root", absRoot)

	var stats Stats
	if err := s.processFolder(ctx, logger, absRoot, &stats); err != nil {
		return stats, err
	}

	logger.Info("Tree walk finished",
		"processed", stats.Processed, "skipped", stats.Skipped, "failed", stats.Failed)
	return stats, nil
}

// processFolder visits the immediate subfolders of folder in lexicographic
// order: each one is treated as a candidate album first and recursed into
// right after, so children are handled before later siblings.
func (s *Service) processFolder(ctx context.Context, logger *slog.Logger, folder string, stats *Stats) error {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", folder, err)
	}

	subfolders := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			subfolders = append(subfolders, filepath.Join(folder, entry.Name()))
		}
	}
	sort.Strings(subfolders)

	for _, subfolder := range subfolders {
		if err := ctx.Err(); err != nil {
			return err
		}

		album := music.NewAlbum(subfolder)
		switch {
		case !album.IsAlbum():
			stats.Skipped++
		default:
			if err := s.SplitAlbum(ctx, album); err != nil {
				stats.Failed++
				logger.Error("Album pipeline failed", "folder", subfolder, "error", err)
			} else {
				stats.Processed++
			}
		}

		// Artwork folders the pipeline just removed are gone by the time we
		// recurse, so a successful album never yields phantom children.
		if _, err := os.Stat(subfolder); os.IsNotExist(err) {
			continue
		}
		if err := s.processFolder(ctx, logger, subfolder, stats); err != nil {
			return err
		}
	}
	return nil
}
