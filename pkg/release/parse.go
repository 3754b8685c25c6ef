// Package release parses release and file names of TV episodes.
package release

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// Info is what can be read from a release or file name.
type Info struct {
	Title      string
	Season     int
	Episodes   []int // empty for season packs
	FullSeason bool  // a whole-season release such as "Show.S02.1080p"
	Resolution string
	Source     string
	Group      string
}

var (
	// S01E01, S01E01E02, S01E01-E02, S01E01-02
	episodeRegex = regexp.MustCompile(`(?i)\bS(\d{1,2})((?:[ ._]?E\d{1,3})+)(?:-E?(\d{1,3}))?\b`)
	episodeNum   = regexp.MustCompile(`(?i)E(\d{1,3})`)
	// 1x01, 1x01x02
	crossRegex = regexp.MustCompile(`(?i)\b(\d{1,2})x(\d{2,3})(?:x(\d{2,3}))?\b`)
	// S01 or Season 1 without an episode
	seasonRegex = regexp.MustCompile(`(?i)\b(?:S(\d{1,2})|Season[ ._-]?(\d{1,2}))\b`)

	resolutionRegex = regexp.MustCompile(`(?i)\b(2160p|1080p|720p|576p|480p|4k|uhd)\b`)
	groupRegex      = regexp.MustCompile(`-([A-Za-z0-9]+)$`)
)

var sources = []struct{ name, pattern string }{
	{"bluray", `(?i)\b(blu-?ray|bdrip|brrip|bdremux)\b`},
	{"webdl", `(?i)\bweb[ ._-]?dl\b`},
	{"webrip", `(?i)\bweb[ ._-]?rip\b`},
	{"hdtv", `(?i)\bhdtv\b`},
	{"dvd", `(?i)\bdvd(rip)?\b`},
}

var sourceRegexes = func() []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(sources))
	for i, s := range sources {
		out[i] = regexp.MustCompile(s.pattern)
	}
	return out
}()

// Parse reads title, numbering and quality from a release or file name.
// A full path is reduced to its base name and a video extension is dropped.
func Parse(name string) *Info {
	name = stripExtension(filepath.Base(name))
	info := &Info{}

	titleEnd := len(name)
	if season, episodes, idx, ok := parseEpisode(name); ok {
		info.Season, info.Episodes, titleEnd = season, episodes, idx
	} else if m := seasonRegex.FindStringSubmatchIndex(name); m != nil {
		info.Season = atoiGroup(name, m, 1, 2)
		info.FullSeason = true
		titleEnd = m[0]
	}
	info.Title = cleanReleaseTitle(name[:titleEnd])

	if m := resolutionRegex.FindString(name); m != "" {
		info.Resolution = strings.ToLower(m)
		if info.Resolution == "4k" || info.Resolution == "uhd" {
			info.Resolution = "2160p"
		}
	}
	for i, re := range sourceRegexes {
		if re.MatchString(name) {
			info.Source = sources[i].name
			break
		}
	}
	if m := groupRegex.FindStringSubmatch(name); m != nil {
		info.Group = m[1]
	}
	return info
}

// ParseEpisode returns the season and episode numbers in a name.
func ParseEpisode(name string) (season int, episodes []int, ok bool) {
	season, episodes, _, ok = parseEpisode(stripExtension(filepath.Base(name)))
	return season, episodes, ok
}

// ParseSeason returns the season number of an episode or season-pack name.
func ParseSeason(name string) (int, bool) {
	info := Parse(name)
	if len(info.Episodes) == 0 && !info.FullSeason {
		return 0, false
	}
	return info.Season, true
}

func parseEpisode(name string) (season int, episodes []int, start int, ok bool) {
	if m := episodeRegex.FindStringSubmatchIndex(name); m != nil {
		season, _ = strconv.Atoi(name[m[2]:m[3]])
		for _, em := range episodeNum.FindAllStringSubmatch(name[m[4]:m[5]], -1) {
			n, _ := strconv.Atoi(em[1])
			episodes = append(episodes, n)
		}
		if m[6] >= 0 {
			last, _ := strconv.Atoi(name[m[6]:m[7]])
			for n := episodes[len(episodes)-1] + 1; n <= last; n++ {
				episodes = append(episodes, n)
			}
		}
		return season, episodes, m[0], true
	}
	if m := crossRegex.FindStringSubmatchIndex(name); m != nil {
		season, _ = strconv.Atoi(name[m[2]:m[3]])
		first, _ := strconv.Atoi(name[m[4]:m[5]])
		episodes = []int{first}
		if m[6] >= 0 {
			second, _ := strconv.Atoi(name[m[6]:m[7]])
			episodes = append(episodes, second)
		}
		return season, episodes, m[0], true
	}
	return 0, nil, 0, false
}

func atoiGroup(s string, m []int, groups ...int) int {
	for _, g := range groups {
		if m[2*g] >= 0 {
			n, _ := strconv.Atoi(s[m[2*g]:m[2*g+1]])
			return n
		}
	}
	return 0
}

var knownExtensions = map[string]bool{
	".mkv": true, ".mp4": true, ".avi": true, ".m4v": true, ".wmv": true, ".mov": true,
	".ts": true, ".mpg": true, ".mpeg": true, ".webm": true, ".nzb": true, ".srt": true,
}

func stripExtension(name string) string {
	ext := filepath.Ext(name)
	if knownExtensions[strings.ToLower(ext)] {
		return strings.TrimSuffix(name, ext)
	}
	return name
}

func cleanReleaseTitle(s string) string {
	s = strings.NewReplacer(".", " ", "_", " ").Replace(s)
	s = strings.Trim(s, " -[(")
	return strings.Join(strings.Fields(s), " ")
}
