package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "topic.yaml")
	writeFile(t, path, `
name: orders
capacity: 10
ttl: 5s
fanout: false
enable_reaper: true
reaper_interval: 1s
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "orders", cfg.Name)
	require.NotNil(t, cfg.Capacity)
	require.Equal(t, 10, *cfg.Capacity)
	require.Equal(t, 5*time.Second, cfg.TTL)
	require.True(t, cfg.EnableReaper)
	require.Equal(t, time.Second, cfg.ReaperInterval)
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "topic.toml")
	writeFile(t, path, `
name = "events"
fanout = true
ttl = 2000000000
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "events", cfg.Name)
	require.True(t, cfg.Fanout)
	require.Equal(t, 2*time.Second, cfg.TTL)
}

func TestLoadUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "topic.json")
	writeFile(t, path, `{}`)

	_, err := Load(path)
	require.ErrorIs(t, err, ErrUnsupportedExtension)
}

func TestApplyEnvOverrides(t *testing.T) {
	cap := 4
	cfg := &TopicConfig{Name: "orders", Capacity: &cap}

	err := ApplyEnvOverrides(cfg, []string{
		"FLOWTOPIC_NAME=renamed",
		"FLOWTOPIC_TTL=250ms",
		"FLOWTOPIC_FANOUT=true",
		"IRRELEVANT=ignored",
	})
	require.NoError(t, err)

	require.Equal(t, "renamed", cfg.Name)
	require.Equal(t, 250*time.Millisecond, cfg.TTL)
	require.True(t, cfg.Fanout)
}

func TestApplyEnvOverridesNoMatches(t *testing.T) {
	cfg := &TopicConfig{Name: "orders"}
	err := ApplyEnvOverrides(cfg, []string{"UNRELATED=1"})
	require.NoError(t, err)
	require.Equal(t, "orders", cfg.Name)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
