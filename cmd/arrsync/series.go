package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vmunix/arrsync/internal/library"
	"github.com/vmunix/arrsync/internal/organizer"
)

var seriesCmd = &cobra.Command{
	Use:   "series",
	Short: "Manage series in the catalog",
}

var seriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List series with episode and season counts",
	Args:  cobra.NoArgs,
	RunE:  runSeriesList,
}

var seriesShowCmd = &cobra.Command{
	Use:   "show <series-id>",
	Short: "Show the seasons and files of a series",
	Args:  cobra.ExactArgs(1),
	RunE:  runSeriesShow,
}

var seriesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a series to the catalog",
	Long: `Add a series to the catalog.

With --tvdb-id and no --title the title is looked up on TheTVDB. Without
--path the series folder is <root>/<title>.

Examples:
  arrsync series add --tvdb-id 73244
  arrsync series add --title "The Office" --tvdb-id 73244 --path "/tv/The Office (US)"`,
	Args: cobra.NoArgs,
	RunE: runSeriesAdd,
}

var seriesLookupCmd = &cobra.Command{
	Use:   "lookup <query>",
	Short: "Search TheTVDB for a series",
	Args:  cobra.ExactArgs(1),
	RunE:  runSeriesLookup,
}

func init() {
	rootCmd.AddCommand(seriesCmd)
	seriesCmd.AddCommand(seriesListCmd, seriesShowCmd, seriesAddCmd, seriesLookupCmd)

	seriesAddCmd.Flags().String("title", "", "Series title")
	seriesAddCmd.Flags().Int64("tvdb-id", 0, "TheTVDB series ID")
	seriesAddCmd.Flags().String("path", "", "Series folder (default: <root>/<title>)")
}

type seriesOutput struct {
	ID             int64      `json:"id"`
	TVDBID         *int64     `json:"tvdb_id,omitempty"`
	Title          string     `json:"title"`
	Path           string     `json:"path"`
	Episodes       int        `json:"episodes"`
	EpisodesOnDisk int        `json:"episodes_on_disk"`
	Seasons        int        `json:"seasons"`
	IgnoredSeasons int        `json:"ignored_seasons"`
	LastInfoSync   *time.Time `json:"last_info_sync,omitempty"`
	LastDiskSync   *time.Time `json:"last_disk_sync,omitempty"`
}

func runSeriesList(cmd *cobra.Command, _ []string) error {
	app, _, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()

	all, _, err := app.Store.ListSeries(library.SeriesFilter{})
	if err != nil {
		return err
	}
	out := make([]seriesOutput, 0, len(all))
	for _, s := range all {
		stats, err := app.Store.GetSeriesStats(s.ID)
		if err != nil {
			return err
		}
		out = append(out, seriesOutput{
			ID:             s.ID,
			TVDBID:         s.TVDBID,
			Title:          s.Title,
			Path:           s.Path,
			Episodes:       stats.TotalEpisodes,
			EpisodesOnDisk: stats.EpisodesWithFile,
			Seasons:        stats.SeasonCount,
			IgnoredSeasons: stats.IgnoredSeasons,
			LastInfoSync:   s.LastInfoSync,
			LastDiskSync:   s.LastDiskSync,
		})
	}

	w := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(w, out)
	}
	if len(out) == 0 {
		fmt.Fprintln(w, "No series. Add one with 'arrsync series add'.")
		return nil
	}
	rows := make([][]string, 0, len(out))
	for _, s := range out {
		rows = append(rows, []string{
			strconv.FormatInt(s.ID, 10),
			s.Title,
			formatID(s.TVDBID),
			fmt.Sprintf("%d/%d", s.EpisodesOnDisk, s.Episodes),
			fmt.Sprintf("%d (%d ignored)", s.Seasons, s.IgnoredSeasons),
			formatWhen(s.LastInfoSync),
		})
	}
	fmt.Fprintln(w, renderTable(
		[]string{"ID", "Title", "TVDB", "On disk", "Seasons", "Synced"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignRight, alignRight},
	))
	return nil
}

type seasonOutput struct {
	Number  int  `json:"number"`
	Ignored bool `json:"ignored"`
}

type fileOutput struct {
	Path    string `json:"path"`
	Season  int    `json:"season"`
	Size    int64  `json:"size_bytes"`
	Quality string `json:"quality,omitempty"`
}

type seriesDetail struct {
	seriesOutput
	SeasonList []seasonOutput `json:"season_list"`
	Files      []fileOutput   `json:"files"`
}

func runSeriesShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid series ID %q", args[0])
	}

	app, _, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()

	s, err := app.Store.GetSeries(id)
	if err != nil {
		return err
	}
	seasons, err := app.Store.ListSeasons(id)
	if err != nil {
		return err
	}
	files, err := app.Store.ListFilesBySeries(id)
	if err != nil {
		return err
	}

	detail := seriesDetail{seriesOutput: seriesOutput{
		ID:           s.ID,
		TVDBID:       s.TVDBID,
		Title:        s.Title,
		Path:         s.Path,
		LastInfoSync: s.LastInfoSync,
		LastDiskSync: s.LastDiskSync,
	}}
	for _, season := range seasons {
		detail.SeasonList = append(detail.SeasonList, seasonOutput{Number: season.Number, Ignored: season.Ignored})
	}
	for _, f := range files {
		detail.Files = append(detail.Files, fileOutput{Path: f.Path, Season: f.SeasonNumber, Size: f.SizeBytes, Quality: f.Quality})
	}

	w := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(w, detail)
	}

	fmt.Fprintf(w, "%s (ID %d, TVDB %s)\n", s.Title, s.ID, formatID(s.TVDBID))
	fmt.Fprintf(w, "  Path:       %s\n", s.Path)
	fmt.Fprintf(w, "  Metadata:   %s\n", formatWhen(s.LastInfoSync))
	fmt.Fprintf(w, "  Disk scan:  %s\n", formatWhen(s.LastDiskSync))

	if len(detail.SeasonList) > 0 {
		rows := make([][]string, 0, len(detail.SeasonList))
		for _, season := range detail.SeasonList {
			state := "monitored"
			if season.Ignored {
				state = "ignored"
			}
			rows = append(rows, []string{strconv.Itoa(season.Number), state})
		}
		fmt.Fprintln(w, renderTable([]string{"Season", "State"}, rows, []columnAlignment{alignRight}))
	}
	if len(detail.Files) > 0 {
		rows := make([][]string, 0, len(detail.Files))
		for _, f := range detail.Files {
			rows = append(rows, []string{strconv.Itoa(f.Season), filepath.Base(f.Path), f.Quality, humanize.Bytes(uint64(max(f.Size, 0)))})
		}
		fmt.Fprintln(w, renderTable([]string{"Season", "File", "Quality", "Size"}, rows, []columnAlignment{alignRight, alignLeft, alignLeft, alignRight}))
	}
	return nil
}

func runSeriesAdd(cmd *cobra.Command, _ []string) error {
	title, _ := cmd.Flags().GetString("title")
	tvdbID, _ := cmd.Flags().GetInt64("tvdb-id")
	path, _ := cmd.Flags().GetString("path")

	if title == "" && tvdbID == 0 {
		return errors.New("--title or --tvdb-id is required")
	}

	app, cfg, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()

	if title == "" {
		found, err := app.Meta.Series(cmd.Context(), tvdbID)
		if err != nil {
			return fmt.Errorf("look up TVDB %d: %w", tvdbID, err)
		}
		title = found.Name
	}
	if path == "" {
		root := cfg.Libraries.Series.Root
		folder := organizer.SanitizeFilename(title)
		if folder == "" {
			return fmt.Errorf("cannot derive a folder name from %q, pass --path", title)
		}
		path = filepath.Join(root, folder)
		if err := organizer.ValidatePath(path, root); err != nil {
			return err
		}
	}

	s := &library.Series{Title: title, Path: path}
	if tvdbID != 0 {
		s.TVDBID = &tvdbID
	}
	if err := app.Store.AddSeries(s); err != nil {
		if errors.Is(err, library.ErrDuplicate) {
			return fmt.Errorf("series with TVDB ID %d already exists", tvdbID)
		}
		return err
	}

	w := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(w, seriesOutput{ID: s.ID, TVDBID: s.TVDBID, Title: s.Title, Path: s.Path})
	}
	fmt.Fprintf(w, "Added %s (ID %d) at %s\n", s.Title, s.ID, s.Path)
	return nil
}

func runSeriesLookup(cmd *cobra.Command, args []string) error {
	app, _, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()

	results, err := app.Meta.Search(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(w, results)
	}
	if len(results) == 0 {
		fmt.Fprintln(w, "No matches.")
		return nil
	}
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		year := ""
		if r.Year > 0 {
			year = strconv.Itoa(r.Year)
		}
		rows = append(rows, []string{strconv.FormatInt(r.ID, 10), r.Name, year, r.Network})
	}
	fmt.Fprintln(w, renderTable([]string{"TVDB", "Name", "Year", "Network"}, rows, []columnAlignment{alignRight}))
	return nil
}
