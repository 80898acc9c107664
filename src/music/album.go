package music

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
)

var (
	ErrNoCueSheet        = errors.New("no cue sheet found")
	ErrAmbiguousCueSheet = errors.New("ambiguous cue sheet")
	ErrNoImage           = errors.New("no merged flac image found")
	ErrNoSourceAudio     = errors.New("no source audio found")
	ErrAmbiguousImage    = errors.New("ambiguous merged flac image")
)

// Album represents one album folder on disk. All lookups re-read the
// directory so the view stays current while the pipeline mutates it.
type Album struct {
	Path string
}

// NewAlbum creates an Album scoped to the given folder.
func NewAlbum(path string) *Album {
	return &Album{Path: path}
}

// IsAlbum reports whether the folder contains at least one cue sheet.
func (a *Album) IsAlbum() bool {
	return len(a.All("*.cue")) > 0
}

// CueSheet resolves the single cue sheet of the album.
func (a *Album) CueSheet() (string, error) {
	cues := a.All("*.cue")
	switch len(cues) {
	case 0:
		return "", fmt.Errorf("%w in %s", ErrNoCueSheet, a.Path)
	case 1:
		return cues[0], nil
	default:
		return "", fmt.Errorf("%w in %s: %d candidates", ErrAmbiguousCueSheet, a.Path, len(cues))
	}
}

// Image resolves the single merged FLAC image of the album.
func (a *Album) Image() (string, error) {
	flacs := a.All("*.flac")
	switch len(flacs) {
	case 0:
		return "", fmt.Errorf("%w in %s", ErrNoImage, a.Path)
	case 1:
		return flacs[0], nil
	default:
		return "", fmt.Errorf("%w in %s: %d candidates", ErrAmbiguousImage, a.Path, len(flacs))
	}
}

// SourceWAV returns the first WAV source, or "" when the album has none.
func (a *Album) SourceWAV() string {
	return a.First("*.wav")
}

// SourceWV returns the first WavPack source, or "" when the album has none.
func (a *Album) SourceWV() string {
	return a.First("*.wv")
}

// SourceAPE returns the first Monkey's Audio source, or "" when the album has none.
func (a *Album) SourceAPE() string {
	return a.First("*.ape")
}

// Tracks returns every FLAC file of the album in sorted order.
func (a *Album) Tracks() []string {
	return a.All("*.flac")
}

// First returns the first sorted match for the pattern, or "".
func (a *Album) First(pattern string) string {
	matches := a.All(pattern)
	if len(matches) == 0 {
		return ""
	}
	return matches[0]
}

// All returns every match for the pattern inside the album folder, sorted.
func (a *Album) All(pattern string) []string {
	matches, err := filepath.Glob(filepath.Join(a.Path, pattern))
	if err != nil {
		// Glob only fails on a malformed pattern; the patterns here are fixed.
		return nil
	}
	sort.Strings(matches)
	return matches
}
