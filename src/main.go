package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/serwizz/splitter/src/features/config"
	"github.com/serwizz/splitter/src/features/logging"
	"github.com/serwizz/splitter/src/features/splitting"
	"github.com/serwizz/splitter/src/infra/tag"
	"github.com/serwizz/splitter/src/infra/tools"
	"github.com/serwizz/splitter/src/infra/watcher"
)

var (
	configPath string
	rootPath   string
	watchMode  bool
)

var rootCmd = &cobra.Command{
	Use:   "splitter",
	Short: "Split cue-sheet album rips into tagged per-track FLAC files",
	Long: "Walks a folder tree of album rips and, for every folder holding a cue sheet,\n" +
		"converts the lossless source to FLAC, splits it into tracks, tags them and\n" +
		"cleans up the leftovers. Requires sox, shntool, shnsplit and cuetag.sh.",
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "config.yaml", "path to the configuration file")
	rootCmd.Flags().StringVarP(&rootPath, "root", "r", "", "root folder to process (overrides the config)")
	rootCmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "keep running and rescan when new folders appear")
}

func run(cmd *cobra.Command, args []string) error {
	cfgManager, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.SetupLogger(cfgManager)
	slog.SetDefault(logger)

	root := cfgManager.Get().RootPath
	if rootPath != "" {
		root = rootPath
	}

	runner := tools.NewExecRunner()
	verifier := tag.NewFlacVerifier()
	service := splitting.NewService(runner, verifier, cfgManager)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	if watchMode || cfgManager.Get().Watch.Enabled {
		events := make(chan splitting.FolderEvent, 1)
		folderWatcher, err := watcher.NewWatcher(events, time.Duration(cfgManager.Get().Watch.DebounceSecs)*time.Second)
		if err != nil {
			return fmt.Errorf("failed to create watcher: %w", err)
		}
		if err := folderWatcher.Start(ctx, root); err != nil {
			return fmt.Errorf("failed to start watcher: %w", err)
		}
		defer folderWatcher.Stop()

		slog.Info("Watch mode active. Press Ctrl+C to stop.", "root", root)
		if err := service.Watch(ctx, root, events); err != nil && ctx.Err() == nil {
			return err
		}
		return nil
	}

	stats, err := service.Run(ctx, root)
	if err != nil {
		return err
	}
	if stats.Failed > 0 {
		return fmt.Errorf("%d album(s) failed", stats.Failed)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
