package splitting

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gosimple/unidecode"
	"github.com/serwizz/splitter/src/music"
)

const (
	imageName   = "file.flac"
	pregapName  = "00 - pregap.flac"
	trackFormat = "%n - %t"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// SplitAlbum runs the full pipeline on one album folder: prepare the cue
// sheet, convert sources to a FLAC image, split it into tracks, tag them,
// sanitize filenames and remove trash. A folder without a cue sheet is a
// silent no-op. The first failing step aborts the rest of the pipeline.
func (s *Service) SplitAlbum(ctx context.Context, album *music.Album) error {
	if !album.IsAlbum() {
		slog.Debug("No cue sheet, skipping folder", "folder", album.Path)
		return nil
	}

	cue, err := album.CueSheet()
	if err != nil {
		return err
	}
	slog.Info("Splitting album", "folder", album.Path, "cue", filepath.Base(cue))

	if err := s.prepareCue(cue); err != nil {
		return fmt.Errorf("failed to prepare cue sheet: %w", err)
	}
	if err := s.convertToFLAC(ctx, album); err != nil {
		return fmt.Errorf("failed to convert sources: %w", err)
	}

	// The image is resolved once, before splitting fills the folder with
	// per-track files, and that same path is removed afterwards.
	image, err := album.Image()
	if err != nil {
		return err
	}
	if err := s.splitImage(ctx, album, cue, image); err != nil {
		return fmt.Errorf("failed to split image: %w", err)
	}
	if err := s.removeImage(album, image); err != nil {
		return fmt.Errorf("failed to remove image: %w", err)
	}
	if err := s.setTags(ctx, album, cue); err != nil {
		return fmt.Errorf("failed to tag tracks: %w", err)
	}
	if s.config.Get().Split.VerifyTags {
		s.verifyTags(album)
	}
	if err := s.sanitizeFilenames(album); err != nil {
		return fmt.Errorf("failed to sanitize filenames: %w", err)
	}
	if err := s.removeTrash(album); err != nil {
		return fmt.Errorf("failed to remove trash: %w", err)
	}

	slog.Info("Album split finished", "folder", album.Path, "tracks", len(album.Tracks()))
	return nil
}

// prepareCue strips a UTF-8 byte order mark so downstream tools see plain
// text. Re-running on a clean cue sheet changes nothing.
func (s *Service) prepareCue(cue string) error {
	text, err := os.ReadFile(cue)
	if err != nil {
		return err
	}
	if !bytes.HasPrefix(text, utf8BOM) {
		return nil
	}
	slog.Debug("Stripping BOM from cue sheet", "cue", cue)
	return os.WriteFile(cue, bytes.TrimPrefix(text, utf8BOM), 0644)
}

// convertToFLAC turns the album's source audio into a single FLAC image.
// WAV (or WavPack) goes through sox, Monkey's Audio through shntool. Both
// conversions run when both source families are present; that overlap
// usually means a dirty folder, so it gets a warning.
func (s *Service) convertToFLAC(ctx context.Context, album *music.Album) error {
	tools := s.config.Get().Tools

	pcm := album.SourceWAV()
	if pcm == "" {
		pcm = album.SourceWV()
	}
	ape := album.SourceAPE()
	if pcm == "" && ape == "" && len(album.Tracks()) == 0 {
		return fmt.Errorf("%w in %s", music.ErrNoSourceAudio, album.Path)
	}
	if pcm != "" && ape != "" {
		slog.Warn("Folder has both PCM and APE sources, converting both", "folder", album.Path)
	}

	if pcm != "" {
		if _, err := s.runner.Run(ctx, album.Path, tools.Sox, "-S", filepath.Base(pcm), imageName); err != nil {
			return err
		}
	}
	if ape != "" {
		if _, err := s.runner.Run(ctx, album.Path, tools.Shntool, "conv", "-o", "flac", filepath.Base(ape)); err != nil {
			return err
		}
	}
	return nil
}

// splitImage cuts the merged image into per-track FLAC files named
// "<number> - <title>.flac" according to the cue sheet.
func (s *Service) splitImage(ctx context.Context, album *music.Album, cue, image string) error {
	tools := s.config.Get().Tools
	_, err := s.runner.Run(ctx, album.Path, tools.Shnsplit,
		"-f", filepath.Base(cue), "-t", trackFormat, "-o", "flac", filepath.Base(image))
	return err
}

// removeImage deletes the pre-split image and the pregap artifact shnsplit
// produces for cue sheets with audio before track one.
func (s *Service) removeImage(album *music.Album, image string) error {
	if err := os.Remove(image); err != nil {
		return err
	}
	pregap := filepath.Join(album.Path, pregapName)
	if err := os.Remove(pregap); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// setTags embeds the cue sheet metadata into every track file.
func (s *Service) setTags(ctx context.Context, album *music.Album, cue string) error {
	tracks := album.Tracks()
	if len(tracks) == 0 {
		return fmt.Errorf("no track files to tag in %s", album.Path)
	}
	args := make([]string, 0, len(tracks)+1)
	args = append(args, filepath.Base(cue))
	for _, track := range tracks {
		args = append(args, filepath.Base(track))
	}
	_, err := s.runner.Run(ctx, album.Path, s.config.Get().Tools.Cuetag, args...)
	return err
}

// verifyTags reads the vorbis comments back and warns when cuetag left a
// track untitled or unnumbered. Advisory only.
func (s *Service) verifyTags(album *music.Album) {
	for _, track := range album.Tracks() {
		tags, err := s.verifier.ReadTags(track)
		if err != nil {
			slog.Warn("Could not read tags back", "track", track, "error", err)
			continue
		}
		if tags.Title == "" || tags.TrackNumber == "" {
			slog.Warn("Track is missing tags", "track", track,
				"title", tags.Title, "track_number", tags.TrackNumber)
		}
	}
}

// sanitizeFilenames drops characters that break some filesystems out of the
// track names, optionally transliterating everything to ASCII, and renames
// only when the name actually changed.
func (s *Service) sanitizeFilenames(album *music.Album) error {
	asciify := s.config.Get().Split.Asciify
	replacer := strings.NewReplacer(":", "", "?", "")

	for _, track := range album.Tracks() {
		name := filepath.Base(track)
		newName := replacer.Replace(name)
		if asciify {
			newName = unidecode.Unidecode(newName)
		}
		if newName == name {
			continue
		}
		newPath := filepath.Join(album.Path, newName)
		slog.Debug("Renaming track", "from", name, "to", newName)
		if err := os.Rename(track, newPath); err != nil {
			return err
		}
	}
	return nil
}

// removeTrash deletes leftover source/cue/log files and artwork subfolders.
// Absence is not an error: a previous partial run may already have cleaned up.
func (s *Service) removeTrash(album *music.Album) error {
	cfg := s.config.Get().Split

	for _, glob := range cfg.TrashGlobs {
		for _, file := range album.All(glob) {
			if err := os.Remove(file); err != nil && !os.IsNotExist(err) {
				return err
			}
		}
	}
	for _, folder := range cfg.ArtworkFolders {
		if err := os.RemoveAll(filepath.Join(album.Path, folder)); err != nil {
			return err
		}
	}
	return nil
}
