package config

// Config holds the application configuration.
type Config struct {
	RootPath string `yaml:"rootPath" validate:"required"`
	Logger   Logger `yaml:"logger"`
	Tools    Tools  `yaml:"tools"`
	Split    Split  `yaml:"split"`
	Watch    Watch  `yaml:"watch"`
}

// Logger holds the configuration for the app logging
type Logger struct {
	Enabled bool   `yaml:"enabled"`
	Level   string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Format  string `yaml:"format" validate:"omitempty,oneof=text json logfmt"`
}

// Tools names the external binaries the pipeline shells out to.
// Each value may be a bare name resolved via PATH or an absolute path.
type Tools struct {
	Sox      string `yaml:"sox" validate:"required"`
	Shntool  string `yaml:"shntool" validate:"required"`
	Shnsplit string `yaml:"shnsplit" validate:"required"`
	Cuetag   string `yaml:"cuetag" validate:"required"`
}

// Split holds the per-album pipeline options.
type Split struct {
	// Asciify transliterates non-ASCII track filenames during sanitization.
	Asciify bool `yaml:"asciify"`
	// VerifyTags reads back vorbis comments after tagging and warns on gaps.
	VerifyTags bool `yaml:"verify_tags"`
	// TrashGlobs are removed from the album folder once splitting is done.
	TrashGlobs []string `yaml:"trash_globs" validate:"required,min=1"`
	// ArtworkFolders are subfolder names removed recursively, absence ignored.
	ArtworkFolders []string `yaml:"artwork_folders"`
}

// Watch holds the configuration for watch mode.
type Watch struct {
	Enabled      bool `yaml:"enabled"`
	DebounceSecs int  `yaml:"debounce_seconds"`
}
