package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-kit/log/level"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "GAME", cfg.DefaultType)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, ColorAuto, cfg.Color)
	assert.Empty(t, cfg.Namespaces)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "globwalk.yaml")
	content := `
namespaces:
  GAME: game
  DATA: /srv/data
default_type: DATA
log_level: debug
color: never
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"GAME": filepath.Join(dir, "game"),
		"DATA": "/srv/data",
	}, cfg.Namespaces)
	assert.Equal(t, "DATA", cfg.DefaultType)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, ColorNever, cfg.Color)
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "namespaces: [unclosed"},
		{"bad level", "log_level: loud"},
		{"bad color", "color: sometimes"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "globwalk.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0o644))

			_, err := LoadConfig(path)
			assert.Error(t, err)
		})
	}
}

func TestMergeWithFlags(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Namespaces["GAME"] = "/old"

	err := cfg.MergeWithFlags([]string{"GAME=/new", "LUA=/lua"}, "LUA", "error", true)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"GAME": "/new", "LUA": "/lua"}, cfg.Namespaces)
	assert.Equal(t, "LUA", cfg.DefaultType)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, ColorNever, cfg.Color)
}

func TestMergeWithFlagsKeepsUnsetValues(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.MergeWithFlags(nil, "", "", false))
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestMergeWithFlagsBadMount(t *testing.T) {
	for _, m := range []string{"GAME", "=dir", "GAME="} {
		cfg := DefaultConfig()
		assert.Error(t, cfg.MergeWithFlags([]string{m}, "", "", false), "mount %q", m)
	}
}

func TestLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.LogLevel = "info"

	logger := cfg.Logger(&buf)
	level.Debug(logger).Log("msg", "hidden")
	level.Info(logger).Log("msg", "shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestMount(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.Namespaces["GAME"] = dir

	ns, err := cfg.Mount(nil)
	require.NoError(t, err)
	_, ok := ns.Lookup("GAME")
	assert.True(t, ok)

	cfg.Namespaces["DATA"] = filepath.Join(dir, "missing")
	_, err = cfg.Mount(nil)
	assert.Error(t, err)
}
