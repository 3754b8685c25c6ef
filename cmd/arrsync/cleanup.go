package main

import (
	"github.com/spf13/cobra"
)

var cleanupCmd = &cobra.Command{
	Use:   "cleanup [folder]",
	Short: "Move known episode files out of the drop folder",
	Long: `Move every file in the drop folder that the catalog already knows to its
canonical location in the series folder. Unknown files are left alone.
Without a folder argument the configured drop_folder is cleaned.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCleanupCmd,
}

func init() {
	rootCmd.AddCommand(cleanupCmd)
}

func runCleanupCmd(cmd *cobra.Command, args []string) error {
	var folder string
	if len(args) == 1 {
		folder = args[0]
	}

	app, _, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()

	n, err := app.CleanUp(cmd.Context(), folder)
	return reportRun(cmd, n, err)
}
