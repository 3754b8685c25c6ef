// Package config loads the arrsync TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration.
type Config struct {
	Server    ServerConfig              `toml:"server"`
	Database  DatabaseConfig            `toml:"database"`
	Libraries LibrariesConfig           `toml:"libraries"`
	Metadata  MetadataConfig            `toml:"metadata"`
	Scene     SceneConfig               `toml:"scene"`
	Indexers  map[string]*IndexerConfig `toml:"indexers"`
	Schedule  ScheduleConfig            `toml:"schedule"`
}

type ServerConfig struct {
	LogLevel string `toml:"log_level"`
	LockFile string `toml:"lock_file"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

type LibrariesConfig struct {
	Series SeriesLibraryConfig `toml:"series"`
}

type SeriesLibraryConfig struct {
	Root       string `toml:"root"`
	Naming     string `toml:"naming"`
	DropFolder string `toml:"drop_folder"`
}

type MetadataConfig struct {
	TVDB TVDBConfig `toml:"tvdb"`
}

type TVDBConfig struct {
	APIKey string `toml:"api_key"`
	URL    string `toml:"url"`
}

type SceneConfig struct {
	Enabled bool   `toml:"enabled"`
	URL     string `toml:"url"`
}

type IndexerConfig struct {
	URL    string `toml:"url"`
	APIKey string `toml:"api_key"`
}

// ScheduleConfig holds cron specs. An empty spec disables the job.
type ScheduleConfig struct {
	Import  string `toml:"import"`
	Search  string `toml:"search"`
	Cleanup string `toml:"cleanup"`
}

// Defaults for keys absent from the file.
const (
	DefaultLogLevel        = "info"
	DefaultDatabasePath    = "./data/arrsync.db"
	DefaultImportSchedule  = "0 */6 * * *"
	DefaultSearchSchedule  = "0 4 * * *"
	DefaultCleanupSchedule = "*/15 * * * *"
)

// IndexerNames returns the configured indexer names in sorted order.
func (c *Config) IndexerNames() []string {
	names := make([]string, 0, len(c.Indexers))
	for name := range c.Indexers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Load reads, substitutes, decodes and validates the file at path.
// Unresolved variables and validation failures come back as *ConfigError.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))
	if len(missing) > 0 {
		return nil, &ConfigError{Path: path, Missing: missing}
	}

	var cfg Config
	md, err := toml.Decode(content, &cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyDefaults(md)

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &ConfigError{Path: path, Errors: errs}
	}
	return &cfg, nil
}

func (c *Config) applyDefaults(md toml.MetaData) {
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = DefaultLogLevel
	}
	if c.Database.Path == "" {
		c.Database.Path = DefaultDatabasePath
	}
	if c.Server.LockFile == "" {
		c.Server.LockFile = filepath.Join(filepath.Dir(c.Database.Path), "arrsync.lock")
	}
	// an explicit empty spec disables a job, so only absent keys get defaults
	if !md.IsDefined("schedule", "import") {
		c.Schedule.Import = DefaultImportSchedule
	}
	if !md.IsDefined("schedule", "search") {
		c.Schedule.Search = DefaultSearchSchedule
	}
	if !md.IsDefined("schedule", "cleanup") {
		c.Schedule.Cleanup = DefaultCleanupSchedule
	}
}

var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// substituteEnvVars replaces ${NAME} with the environment value and reports
// the names that are not set.
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	out := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		name := match[2 : len(match)-1]
		if v, ok := os.LookupEnv(name); ok {
			return v
		}
		if !slices.Contains(missing, name) {
			missing = append(missing, name)
		}
		return match
	})
	return out, missing
}
