package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	return dir
}

func writeRaw(t *testing.T, home, body string) {
	t.Helper()
	cfgDir := filepath.Join(home, ".notes")
	require.NoError(t, os.MkdirAll(cfgDir, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config"), []byte(body), 0600))
}

func TestSaveConfigCreatesDirectories(t *testing.T) {
	withHome(t)

	cfg := Default()
	require.NoError(t, cfg.Save())

	// Verify file exists and has correct permissions
	info, err := os.Stat(Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLoadConfigMissingReturnsDefaults(t *testing.T) {
	home := withHome(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultTheme(), cfg.Theme)
	assert.Equal(t, "svg", cfg.ExportFormat)
	assert.Equal(t, filepath.Join(home, ".notes", "notes.db"), cfg.StorePath)
	assert.Empty(t, cfg.LogFile)
}

func TestSaveLoadRoundtripWithAllFields(t *testing.T) {
	withHome(t)

	original := Config{
		Theme:        DefaultTheme(),
		ExportDir:    "/tmp/exports",
		ExportFormat: "png",
		DocumentURL:  "http://docs.local",
		APIKey:       "doc_verylongkeystring12345",
		StorePath:    "/tmp/notes.db",
		LogFile:      "/tmp/notes.log",
		LogLevel:     "debug",
	}
	original.Theme.Primary = "#112233"

	require.NoError(t, original.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, original, *loaded)
}

func TestLoadConfigPartialThemeKeepsDefaults(t *testing.T) {
	home := withHome(t)
	writeRaw(t, home, "theme:\n  primary: \"#000000\"\nexport_format: md\n")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "#000000", cfg.Theme.Primary)
	assert.Equal(t, DefaultTheme().Secondary, cfg.Theme.Secondary)
	assert.Equal(t, "md", cfg.ExportFormat)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigEmptyFile(t *testing.T) {
	home := withHome(t)
	writeRaw(t, home, "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, *Default(), *cfg)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	home := withHome(t)
	writeRaw(t, home, "invalid: yaml: content:")

	_, err := Load()
	assert.Error(t, err)
}

func TestConfigPermissionsStrictlyEnforced(t *testing.T) {
	withHome(t)

	cfg := Config{APIKey: "secret"}
	require.NoError(t, cfg.Save())

	// Try to make it world-readable
	require.NoError(t, os.Chmod(Path(), 0644))

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "permissions")
}

func TestPathReturnsCorrectLocation(t *testing.T) {
	path := Path()
	assert.Contains(t, path, ".notes")
	assert.Contains(t, path, "config")
}
