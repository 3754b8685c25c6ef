// Package library manages the series catalog (series, seasons, episodes, files).
package library

import (
	"time"
)

// SpecialsSeason is the season number reserved for specials.
const SpecialsSeason = 0

// Series is a tracked show.
type Series struct {
	ID           int64
	TVDBID       *int64 // nil until matched against the metadata provider
	Title        string
	Path         string // series folder on disk
	LastInfoSync *time.Time
	LastDiskSync *time.Time
	AddedAt      time.Time
	UpdatedAt    time.Time
}

// Season is a numbered grouping of episodes within a series.
type Season struct {
	SeriesID int64
	Number   int
	Ignored  bool
}

// Episode represents a single episode of a series.
type Episode struct {
	ID           int64
	SeriesID     int64
	TVDBID       *int64
	Season       int
	Episode      int
	Title        string
	AirDate      *time.Time
	FileID       *int64 // nil until a file is matched
	SceneSeason  *int
	SceneEpisode *int
}

// EpisodeFile is a file already matched into the catalog.
type EpisodeFile struct {
	ID           int64
	SeriesID     int64
	SeasonNumber int
	Path         string
	SizeBytes    int64
	Quality      string
	AddedAt      time.Time
}
