package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vmunix/arrsync/internal/progress"
)

var searchCmd = &cobra.Command{
	Use:   "search [series-id]",
	Short: "Search indexers for the wanted seasons of a series",
	Long: `Search every configured indexer for each season of a series that is
not ignored. Without a series ID every series is searched.

Examples:
  arrsync search 12
  arrsync search`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearchCmd,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearchCmd(cmd *cobra.Command, args []string) error {
	var seriesID int64
	if len(args) == 1 {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid series ID %q", args[0])
		}
		seriesID = id
	}

	app, _, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()

	var n *progress.Notification
	if len(args) == 1 {
		n, err = app.SearchSeries(cmd.Context(), seriesID)
	} else {
		n, err = app.SearchAll(cmd.Context())
	}
	return reportRun(cmd, n, err)
}

// reportRun prints a notification in the selected format and passes err through.
func reportRun(cmd *cobra.Command, n *progress.Notification, err error) error {
	if n == nil {
		return err
	}
	w := cmd.OutOrStdout()
	if jsonOutput {
		if perr := printJSON(w, n.Snapshot()); perr != nil {
			return perr
		}
		return err
	}
	printRun(w, n)
	return err
}
