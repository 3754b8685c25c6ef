// internal/events/sync.go
package events

// Event type names.
const (
	EventImportStarted         = "import.started"
	EventImportCompleted       = "import.completed"
	EventSeriesSynced          = "series.synced"
	EventSeriesSyncFailed      = "series.sync_failed"
	EventSeasonIgnored         = "season.ignored"
	EventSeasonSearchCompleted = "season.search_completed"
	EventEpisodeFileMoved      = "episode_file.moved"
)

// ImportStarted is emitted when an import run begins.
type ImportStarted struct {
	BaseEvent
	OnlyNew bool `json:"only_new"`
}

// ImportCompleted is emitted when an import run ends, successfully or not.
type ImportCompleted struct {
	BaseEvent
	Processed int    `json:"processed"`
	Failed    int    `json:"failed"`
	Error     string `json:"error,omitempty"`
}

// SeriesSynced is emitted after every pipeline step succeeded for a series.
type SeriesSynced struct {
	BaseEvent
	SeriesID int64  `json:"series_id"`
	Title    string `json:"title"`
}

// SeriesSyncFailed is emitted when a pipeline step failed for a series.
type SeriesSyncFailed struct {
	BaseEvent
	SeriesID int64  `json:"series_id"`
	Title    string `json:"title"`
	Step     string `json:"step"`
	Reason   string `json:"reason"`
}

// SeasonIgnored is emitted when the ignore policy marks a season as ignored.
type SeasonIgnored struct {
	BaseEvent
	SeriesID     int64 `json:"series_id"`
	SeasonNumber int   `json:"season_number"`
}

// SeasonSearchCompleted is emitted after a season search picked (or failed to pick) a release.
type SeasonSearchCompleted struct {
	BaseEvent
	SeriesID     int64  `json:"series_id"`
	SeasonNumber int    `json:"season_number"`
	Query        string `json:"query"`
	Results      int    `json:"results"`
	Release      string `json:"release,omitempty"`
	Indexer      string `json:"indexer,omitempty"`
}

// EpisodeFileMoved is emitted when the disk reconciler relocates a file.
type EpisodeFileMoved struct {
	BaseEvent
	FileID   int64  `json:"file_id"`
	SeriesID int64  `json:"series_id"`
	From     string `json:"from"`
	To       string `json:"to"`
}

// NewSeriesSynced builds a SeriesSynced event.
func NewSeriesSynced(seriesID int64, title string) *SeriesSynced {
	return &SeriesSynced{
		BaseEvent: NewBaseEvent(EventSeriesSynced, EntitySeries, seriesID),
		SeriesID:  seriesID,
		Title:     title,
	}
}

// NewSeriesSyncFailed builds a SeriesSyncFailed event.
func NewSeriesSyncFailed(seriesID int64, title, step string, err error) *SeriesSyncFailed {
	e := &SeriesSyncFailed{
		BaseEvent: NewBaseEvent(EventSeriesSyncFailed, EntitySeries, seriesID),
		SeriesID:  seriesID,
		Title:     title,
		Step:      step,
	}
	if err != nil {
		e.Reason = err.Error()
	}
	return e
}

// NewSeasonIgnored builds a SeasonIgnored event.
func NewSeasonIgnored(seriesID int64, season int) *SeasonIgnored {
	return &SeasonIgnored{
		BaseEvent:    NewBaseEvent(EventSeasonIgnored, EntitySeries, seriesID),
		SeriesID:     seriesID,
		SeasonNumber: season,
	}
}

// NewEpisodeFileMoved builds an EpisodeFileMoved event.
func NewEpisodeFileMoved(fileID, seriesID int64, from, to string) *EpisodeFileMoved {
	return &EpisodeFileMoved{
		BaseEvent: NewBaseEvent(EventEpisodeFileMoved, EntityEpisodeFile, fileID),
		FileID:    fileID,
		SeriesID:  seriesID,
		From:      from,
		To:        to,
	}
}

// NewSeasonSearchCompleted builds a SeasonSearchCompleted event. release and
// indexer are empty when nothing was picked.
func NewSeasonSearchCompleted(seriesID int64, season int, query string, results int, release, indexer string) *SeasonSearchCompleted {
	return &SeasonSearchCompleted{
		BaseEvent:    NewBaseEvent(EventSeasonSearchCompleted, EntitySeason, seriesID),
		SeriesID:     seriesID,
		SeasonNumber: season,
		Query:        query,
		Results:      results,
		Release:      release,
		Indexer:      indexer,
	}
}
