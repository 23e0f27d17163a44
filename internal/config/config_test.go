package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// Empty directory: no config file, defaults apply.
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "chorequest", cfg.App.Name)
	assert.Equal(t, 4, cfg.Daily.QuestCount)
	assert.Equal(t, 2, cfg.Daily.MaxResets)
	assert.Equal(t, 50, cfg.Level.MaxLevel)
	assert.Equal(t, 4800, cfg.Level.PointsForMax)
	assert.Equal(t, 5, cfg.Profiles.Max)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte("daily:\n  quest_count: 6\n  max_resets: 3\nstorage:\n  path: /tmp/cq-test/state.db\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.Daily.QuestCount)
	assert.Equal(t, 3, cfg.Daily.MaxResets)
	assert.Equal(t, "/tmp/cq-test/state.db", cfg.Storage.Path)
	// Untouched sections keep their defaults.
	assert.Equal(t, 50, cfg.Level.MaxLevel)
}

func TestStatePathExplicit(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{
		App:     AppConfig{Name: "chorequest"},
		Storage: StorageConfig{Path: filepath.Join(dir, "nested", "state.db")},
	}

	path, err := cfg.StatePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "nested", "state.db"), path)

	// Parent directory is created.
	_, err = os.Stat(filepath.Join(dir, "nested"))
	assert.NoError(t, err)
}
