package config

var defaultConfig = Config{
	RootPath: ".",
	Logger: Logger{
		Enabled: true,
		Level:   "info",
		Format:  "text",
	},
	Tools: Tools{
		Sox:      "sox",
		Shntool:  "shntool",
		Shnsplit: "shnsplit",
		Cuetag:   "cuetag.sh",
	},
	Split: Split{
		Asciify:        false,
		VerifyTags:     true,
		TrashGlobs:     []string{"*.log", "*.ape", "*.cue", "*.wv", "*.wav"},
		ArtworkFolders: []string{"Scans", "Covers", "Artwork", "scans", "covers", "artwork"},
	},
	Watch: Watch{
		Enabled:      false,
		DebounceSecs: 5,
	},
}
