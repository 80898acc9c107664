package splitting

// TrackTags is the subset of vorbis comments the pipeline cares about after
// tagging: enough to tell whether cuetag actually wrote something useful.
type TrackTags struct {
	Title       string
	TrackNumber string
}

// TagVerifier reads embedded metadata back from a split track.
type TagVerifier interface {
	ReadTags(filePath string) (*TrackTags, error)
}
