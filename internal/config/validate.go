// internal/config/validate.go
package config

import (
	"fmt"

	"github.com/robfig/cron/v3"
)

var validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate returns one message per problem; nil means the config is usable.
func (c *Config) Validate() []string {
	var errs []string

	if !validLogLevels[c.Server.LogLevel] {
		errs = append(errs, fmt.Sprintf("server.log_level: must be one of debug, info, warn, error; got %q", c.Server.LogLevel))
	}
	if c.Libraries.Series.Root == "" {
		errs = append(errs, "libraries.series.root: required")
	}
	if c.Database.Path == "" {
		errs = append(errs, "database.path: required")
	}

	for _, name := range c.IndexerNames() {
		idx := c.Indexers[name]
		if idx == nil || idx.URL == "" {
			errs = append(errs, fmt.Sprintf("indexers.%s.url: required", name))
		}
		if idx == nil || idx.APIKey == "" {
			errs = append(errs, fmt.Sprintf("indexers.%s.api_key: required", name))
		}
	}

	for _, s := range []struct{ key, spec string }{
		{"import", c.Schedule.Import},
		{"search", c.Schedule.Search},
		{"cleanup", c.Schedule.Cleanup},
	} {
		if s.spec == "" {
			continue
		}
		if _, err := cron.ParseStandard(s.spec); err != nil {
			errs = append(errs, fmt.Sprintf("schedule.%s: %v", s.key, err))
		}
	}
	if c.Schedule.Cleanup != "" && c.Libraries.Series.DropFolder == "" {
		errs = append(errs, "schedule.cleanup: requires libraries.series.drop_folder")
	}

	return errs
}
