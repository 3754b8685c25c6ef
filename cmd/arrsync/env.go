package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/arrsync/internal/config"
	"github.com/vmunix/arrsync/internal/server"
)

func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		var err error
		if path, err = config.Discover(); err != nil {
			return nil, fmt.Errorf("%w (run 'arrsync init' to create one)", err)
		}
	}
	return config.Load(path)
}

// openApp loads the config and wires the app, logging to stderr.
func openApp(cmd *cobra.Command) (*server.App, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	log := server.NewLogger(cmd.ErrOrStderr(), cfg.Server.LogLevel)
	app, err := server.Open(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	return app, cfg, nil
}

// withLock runs fn while holding the process lock.
func withLock(cfg *config.Config, fn func() error) error {
	lock, err := server.AcquireLock(cfg.Server.LockFile)
	if err != nil {
		return err
	}
	defer func() { _ = lock.Unlock() }()
	return fn()
}
