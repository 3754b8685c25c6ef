package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/arrsync/internal/server"
)

// resetFlags restores every flag to its default so commands can run repeatedly.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out strings.Builder
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// writeConfig writes a minimal config into a temp dir and returns its path
// and the series root.
func writeConfig(t *testing.T, extra string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	root := filepath.Join(dir, "tv")
	content := fmt.Sprintf(`[server]
log_level = "error"

[database]
path = %q

[libraries.series]
root = %q

[schedule]
cleanup = ""
%s`, filepath.Join(dir, "data", "arrsync.db"), root, extra)
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path, root
}

func TestSeriesAddAndList(t *testing.T) {
	cfg, root := writeConfig(t, "")

	out, err := execute(t, "series", "add", "--title", "Lost: Missing Pieces", "--tvdb-id", "73739", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "Added Lost: Missing Pieces (ID 1)")

	out, err = execute(t, "series", "list", "--json", "--config", cfg)
	require.NoError(t, err)
	var listed []seriesOutput
	require.NoError(t, json.Unmarshal([]byte(out), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "Lost: Missing Pieces", listed[0].Title)
	assert.Equal(t, filepath.Join(root, "Lost Missing Pieces"), listed[0].Path)
	require.NotNil(t, listed[0].TVDBID)
	assert.Equal(t, int64(73739), *listed[0].TVDBID)

	out, err = execute(t, "series", "list", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "Lost: Missing Pieces")
	assert.Contains(t, out, "never")

	_, err = execute(t, "series", "add", "--title", "Lost", "--tvdb-id", "73739", "--config", cfg)
	assert.ErrorContains(t, err, "already exists")
}

func TestSeriesAdd_RequiresTitleOrID(t *testing.T) {
	cfg, _ := writeConfig(t, "")
	_, err := execute(t, "series", "add", "--config", cfg)
	assert.ErrorContains(t, err, "--title or --tvdb-id")
}

func TestSeriesShow(t *testing.T) {
	cfg, _ := writeConfig(t, "")
	_, err := execute(t, "series", "add", "--title", "Lost", "--path", "/srv/tv/Lost", "--config", cfg)
	require.NoError(t, err)

	out, err := execute(t, "series", "show", "1", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "Lost (ID 1, TVDB -)")
	assert.Contains(t, out, "/srv/tv/Lost")

	_, err = execute(t, "series", "show", "2", "--config", cfg)
	assert.Error(t, err)
}

func TestImport_EmptyCatalog(t *testing.T) {
	cfg, _ := writeConfig(t, "")

	out, err := execute(t, "import", "--json", "--config", cfg)
	require.NoError(t, err)
	var got importOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Zero(t, got.Attempted)
	assert.Equal(t, "Import new series", got.Run.Title)
}

func TestSearch_InvalidSeriesID(t *testing.T) {
	_, err := execute(t, "search", "abc")
	assert.ErrorContains(t, err, "invalid series ID")
}

func TestCleanup_WithoutDropFolder(t *testing.T) {
	cfg, _ := writeConfig(t, "")
	_, err := execute(t, "cleanup", "--config", cfg)
	assert.ErrorIs(t, err, server.ErrNoDropFolder)
}

func TestEvents_Empty(t *testing.T) {
	cfg, _ := writeConfig(t, "")
	out, err := execute(t, "events", "--json", "--config", cfg)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", out)
}

func TestInit_WritesOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arrsync", "config.toml")

	out, err := execute(t, "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)
	_, err = os.Stat(path)
	require.NoError(t, err)

	_, err = execute(t, "init", path)
	assert.Error(t, err)
}

func TestConfig_ReportsMissingFile(t *testing.T) {
	_, err := execute(t, "series", "list", "--config", filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorContains(t, err, "read config")
}
