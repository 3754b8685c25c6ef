package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vmunix/arrsync/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the import, search and clean-up jobs on their schedules",
	Args:  cobra.NoArgs,
	RunE:  runServeCmd,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServeCmd(cmd *cobra.Command, _ []string) error {
	app, cfg, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := server.NewLogger(cmd.ErrOrStderr(), cfg.Server.LogLevel)
	log.Info("arrsync starting", "version", version, "database", cfg.Database.Path)
	return server.NewRunner(app, cfg.Schedule, cfg.Server.LockFile, log).Run(ctx)
}
