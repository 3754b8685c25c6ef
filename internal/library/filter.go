package library

// SeriesFilter specifies criteria for listing series.
type SeriesFilter struct {
	TVDBID      *int64
	Title       *string
	NeverSynced bool // only series without a completed metadata sync
	Limit       int  // 0 = no limit
	Offset      int
}

// EpisodeFilter specifies criteria for listing episodes.
type EpisodeFilter struct {
	SeriesID *int64
	Season   *int
	FileID   *int64
	Missing  bool // only episodes without a file
	Limit    int
	Offset   int
}

// FileFilter specifies criteria for listing episode files.
type FileFilter struct {
	SeriesID *int64
	Season   *int
	Limit    int
	Offset   int
}
