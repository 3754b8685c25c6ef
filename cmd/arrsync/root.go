package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	configPath string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "arrsync",
	Short: "Keep a TV library in sync with its metadata, disk and indexers",
	Long: `arrsync - TV library sync

Refreshes series metadata from TheTVDB, reconciles the catalog with the
files on disk, ignores seasons you never collected and searches your
indexers for the rest.

Run 'arrsync serve' to run the jobs on their configured schedule.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: discovered)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("arrsync {{.Version}}\n")
}
