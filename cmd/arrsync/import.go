package main

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vmunix/arrsync/internal/jobs"
	"github.com/vmunix/arrsync/internal/progress"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Refresh metadata, scan disk and apply the ignore policy for every series",
	Long: `Run the series import pipeline once.

For each series, in catalog order: refresh metadata from TheTVDB, scan the
series folder, refresh scene numbering and ignore seasons without files.
A failing series is reported and the run moves on to the next one.

Examples:
  arrsync import
  arrsync import --new-only`,
	Args: cobra.NoArgs,
	RunE: runImportCmd,
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().Bool("new-only", false, "Only series that never completed a metadata sync")
}

type importFailure struct {
	SeriesID int64  `json:"series_id"`
	Step     string `json:"step"`
	Error    string `json:"error"`
}

type importOutput struct {
	Run       progress.Snapshot `json:"run"`
	Attempted int               `json:"attempted"`
	Succeeded int               `json:"succeeded"`
	Failed    int               `json:"failed"`
	Failures  []importFailure   `json:"failures,omitempty"`
}

func runImportCmd(cmd *cobra.Command, _ []string) error {
	onlyNew, _ := cmd.Flags().GetBool("new-only")

	app, cfg, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()

	return withLock(cfg, func() error {
		report, n, err := app.Import(cmd.Context(), jobs.ImportOptions{OnlyNew: onlyNew})
		if report == nil {
			return err
		}

		out := importOutput{
			Run:       n.Snapshot(),
			Attempted: report.Attempted,
			Succeeded: report.Succeeded,
			Failed:    report.Failed,
		}
		for id, f := range report.Failures {
			out.Failures = append(out.Failures, importFailure{SeriesID: id, Step: f.Step, Error: f.Err.Error()})
		}
		slices.SortFunc(out.Failures, func(a, b importFailure) int { return cmp.Compare(a.SeriesID, b.SeriesID) })

		w := cmd.OutOrStdout()
		if jsonOutput {
			if perr := printJSON(w, out); perr != nil {
				return perr
			}
			return err
		}

		printRun(w, n)
		fmt.Fprintf(w, "Attempted %d, succeeded %d, failed %d\n", out.Attempted, out.Succeeded, out.Failed)
		if len(out.Failures) > 0 {
			rows := make([][]string, 0, len(out.Failures))
			for _, f := range out.Failures {
				rows = append(rows, []string{strconv.FormatInt(f.SeriesID, 10), f.Step, f.Error})
			}
			fmt.Fprintln(w, renderTable([]string{"Series", "Step", "Error"}, rows, []columnAlignment{alignRight}))
		}
		return err
	})
}
