// Package tvdb is a small client for the TheTVDB v4 API covering what library
// sync needs: series lookup, series search and episode listings.
package tvdb

import "time"

// Series is the subset of TVDB series metadata the catalog stores.
type Series struct {
	ID         int64
	Name       string
	Slug       string
	Status     string // "Continuing", "Ended", ...
	FirstAired *time.Time
	Year       int
}

// Episode is one aired-order episode.
type Episode struct {
	ID      int64
	Season  int
	Number  int
	Name    string
	Aired   *time.Time
	Runtime int
}

// SearchResult is one hit of a series search.
type SearchResult struct {
	ID      int64
	Name    string
	Year    int
	Network string
}

type envelope[T any] struct {
	Status string `json:"status"`
	Data   T      `json:"data"`
	Links  struct {
		Next *string `json:"next"`
	} `json:"links"`
}

type loginData struct {
	Token string `json:"token"`
}

type seriesData struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	FirstAired string `json:"firstAired"`
	Year       string `json:"year"`
	Status     struct {
		Name string `json:"name"`
	} `json:"status"`
}

type episodeData struct {
	ID           int64  `json:"id"`
	SeasonNumber int    `json:"seasonNumber"`
	Number       int    `json:"number"`
	Name         string `json:"name"`
	Aired        string `json:"aired"`
	Runtime      int    `json:"runtime"`
}

type episodesPage struct {
	Episodes []episodeData `json:"episodes"`
}

type searchData struct {
	TVDBID  string `json:"tvdb_id"`
	Name    string `json:"name"`
	Year    string `json:"year"`
	Network string `json:"network"`
}

const dateLayout = "2006-01-02"

// parseDate returns nil for empty or malformed TVDB dates.
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}
