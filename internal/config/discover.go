// internal/config/discover.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnvConfig names the variable that overrides discovery.
const EnvConfig = "ARRSYNC_CONFIG"

// DefaultPath is the per-user config location.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./config.toml"
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "arrsync", "config.toml")
}

// Discover locates the config file. $ARRSYNC_CONFIG wins; otherwise the first
// existing of ./config.toml, DefaultPath() and /etc/arrsync/config.toml.
func Discover() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		if _, err := os.Stat(p); err != nil {
			return "", fmt.Errorf("%s=%s: %w", EnvConfig, p, err)
		}
		return p, nil
	}

	candidates := []string{"./config.toml", DefaultPath(), "/etc/arrsync/config.toml"}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("no config file found (looked in %s)", strings.Join(candidates, ", "))
}
