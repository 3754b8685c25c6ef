// Package organizer builds canonical names and paths for episode files.
package organizer

import (
	"fmt"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/vmunix/arrsync/internal/library"
)

// DefaultTemplate renders "The Office - S01E01-E02 - Pilot + Diversity Day".
const DefaultTemplate = "{title} - {episodes} - {episode_title}"

var placeholder = regexp.MustCompile(`\{(\w+)(?::(\d+))?\}`)

// FileNameBuilder renders episode file names from a template.
//
// Placeholders: {title} series title, {season:02} and {episode:02} for the first
// episode, {episodes} such as "S01E01-E02", {episode_title} with multiple titles
// joined by " + ", and {quality}.
type FileNameBuilder struct {
	template string
}

// NewFileNameBuilder creates a builder. An empty template uses DefaultTemplate.
func NewFileNameBuilder(template string) *FileNameBuilder {
	if template == "" {
		template = DefaultTemplate
	}
	return &FileNameBuilder{template: template}
}

// BuildFilename returns the file name, without extension, for a file holding episodes.
func (b *FileNameBuilder) BuildFilename(episodes []*library.Episode, series *library.Series, file *library.EpisodeFile) (string, error) {
	if len(episodes) == 0 {
		return "", ErrNoEpisodes
	}
	eps := slices.Clone(episodes)
	slices.SortFunc(eps, func(a, c *library.Episode) int {
		if a.Season != c.Season {
			return a.Season - c.Season
		}
		return a.Episode - c.Episode
	})

	var titles []string
	for _, e := range eps {
		if t := strings.TrimSpace(e.Title); t != "" && !slices.Contains(titles, t) {
			titles = append(titles, t)
		}
	}
	quality := ""
	if file != nil {
		quality = file.Quality
	}

	vars := map[string]any{
		"title":         series.Title,
		"season":        eps[0].Season,
		"episode":       eps[0].Episode,
		"episodes":      episodeToken(eps),
		"episode_title": strings.Join(titles, " + "),
		"quality":       quality,
	}
	name := render(b.template, vars)
	// drop separators left dangling by empty values
	name = strings.Trim(strings.ReplaceAll(name, " -  - ", " - "), " -")
	return SanitizeFilename(name), nil
}

// BuildFilePath joins the series folder, the season folder and the file name.
func (b *FileNameBuilder) BuildFilePath(series *library.Series, season int, filename, ext string) string {
	ext = strings.TrimPrefix(ext, ".")
	name := filename
	if ext != "" {
		name += "." + ext
	}
	return filepath.Join(series.Path, SeasonFolder(season), name)
}

// SeasonFolder names the folder of a season: "Specials" or "Season 01".
func SeasonFolder(season int) string {
	if season == library.SpecialsSeason {
		return "Specials"
	}
	return fmt.Sprintf("Season %02d", season)
}

// episodeToken formats "S01E01", "S01E01-E03" for a consecutive run, or
// "S01E01E05" when a season has gaps. Episodes spanning seasons are listed
// individually. eps must be sorted.
func episodeToken(eps []*library.Episode) string {
	first, last := eps[0], eps[len(eps)-1]
	if first.Season != last.Season {
		parts := make([]string, len(eps))
		for i, e := range eps {
			parts[i] = fmt.Sprintf("S%02dE%02d", e.Season, e.Episode)
		}
		return strings.Join(parts, "-")
	}

	nums := make([]int, 0, len(eps))
	for _, e := range eps {
		if len(nums) == 0 || nums[len(nums)-1] != e.Episode {
			nums = append(nums, e.Episode)
		}
	}
	if len(nums) == 1 {
		return fmt.Sprintf("S%02dE%02d", first.Season, nums[0])
	}
	if nums[len(nums)-1]-nums[0] == len(nums)-1 {
		return fmt.Sprintf("S%02dE%02d-E%02d", first.Season, nums[0], nums[len(nums)-1])
	}
	var b strings.Builder
	fmt.Fprintf(&b, "S%02d", first.Season)
	for _, n := range nums {
		fmt.Fprintf(&b, "E%02d", n)
	}
	return b.String()
}

// render substitutes {name} and zero-padded {name:02} placeholders.
// Unknown placeholders are kept verbatim.
func render(template string, vars map[string]any) string {
	return placeholder.ReplaceAllStringFunc(template, func(match string) string {
		parts := placeholder.FindStringSubmatch(match)
		val, ok := vars[parts[1]]
		if !ok {
			return match
		}
		if n, isInt := val.(int); isInt && parts[2] != "" {
			width, _ := strconv.Atoi(parts[2])
			return fmt.Sprintf("%0*d", width, n)
		}
		return fmt.Sprint(val)
	})
}
