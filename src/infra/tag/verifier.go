package tag

import (
	"fmt"

	"github.com/go-flac/flacvorbis"
	goflac "github.com/go-flac/go-flac"
	"github.com/serwizz/splitter/src/features/splitting"
)

// FlacVerifier reads vorbis comments back from split FLAC tracks.
type FlacVerifier struct{}

// NewFlacVerifier creates a new FlacVerifier.
func NewFlacVerifier() splitting.TagVerifier {
	return &FlacVerifier{}
}

// ReadTags parses the FLAC file and extracts the fields cuetag should have set.
func (v *FlacVerifier) ReadTags(filePath string) (*splitting.TrackTags, error) {
	f, err := goflac.ParseFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse FLAC file: %w", err)
	}

	var vorbisComment *flacvorbis.MetaDataBlockVorbisComment
	for _, meta := range f.Meta {
		if meta.Type == goflac.VorbisComment {
			vorbisComment, err = flacvorbis.ParseFromMetaDataBlock(*meta)
			if err != nil {
				return nil, fmt.Errorf("failed to parse Vorbis comment: %w", err)
			}
			break
		}
	}
	if vorbisComment == nil {
		// A freshly split but untagged track has no comment block at all.
		return &splitting.TrackTags{}, nil
	}

	tags := &splitting.TrackTags{}
	if titles, err := vorbisComment.Get(flacvorbis.FIELD_TITLE); err == nil && len(titles) > 0 {
		tags.Title = titles[0]
	}
	if numbers, err := vorbisComment.Get(flacvorbis.FIELD_TRACKNUMBER); err == nil && len(numbers) > 0 {
		tags.TrackNumber = numbers[0]
	}
	return tags, nil
}
