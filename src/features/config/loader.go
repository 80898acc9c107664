package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Load reads a YAML file from the given path and returns a new Manager.
// If the file doesn't exist, creates a default configuration.
func Load(path string) (*Manager, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		slog.Info("Config file not found, creating default configuration", "path", path)
		cfg := defaultConfig

		manager := NewManager(&cfg)
		if err := manager.Save(path); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		return manager, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return NewManager(&cfg), nil
}

// applyDefaults fills fields a hand-written config commonly leaves out.
func applyDefaults(cfg *Config) {
	if cfg.RootPath == "" {
		cfg.RootPath = defaultConfig.RootPath
	}
	if cfg.Logger.Level == "" {
		cfg.Logger.Level = defaultConfig.Logger.Level
	}
	if cfg.Logger.Format == "" {
		cfg.Logger.Format = defaultConfig.Logger.Format
	}
	if cfg.Tools.Sox == "" {
		cfg.Tools.Sox = defaultConfig.Tools.Sox
	}
	if cfg.Tools.Shntool == "" {
		cfg.Tools.Shntool = defaultConfig.Tools.Shntool
	}
	if cfg.Tools.Shnsplit == "" {
		cfg.Tools.Shnsplit = defaultConfig.Tools.Shnsplit
	}
	if cfg.Tools.Cuetag == "" {
		cfg.Tools.Cuetag = defaultConfig.Tools.Cuetag
	}
	if len(cfg.Split.TrashGlobs) == 0 {
		cfg.Split.TrashGlobs = append([]string{}, defaultConfig.Split.TrashGlobs...)
	}
	if len(cfg.Split.ArtworkFolders) == 0 {
		cfg.Split.ArtworkFolders = append([]string{}, defaultConfig.Split.ArtworkFolders...)
	}
	if cfg.Watch.DebounceSecs <= 0 {
		cfg.Watch.DebounceSecs = defaultConfig.Watch.DebounceSecs
	}
}
