package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, "https://api.vectorengine.ai", cfg.DefaultEndpoint)
	assert.Equal(t, []string{"api.vectorengine.ai", "generativelanguage.googleapis.com"}, cfg.AllowedHosts)
	assert.Equal(t, "generativelanguage.googleapis.com", cfg.GeminiHost)
	assert.Equal(t, 120*time.Second, cfg.UpstreamTimeout())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultPort, cfg.Port)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"port: 9000\ndebug: true\nupstream_timeout_sec: 30\nallowed_hosts:\n  - stub.local\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Port)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 30*time.Second, cfg.UpstreamTimeout())
	assert.Equal(t, []string{"stub.local"}, cfg.AllowedHosts)
	// Unset fields still get defaults.
	assert.Equal(t, DefaultEndpoint, cfg.DefaultEndpoint)
}

func TestLoad_JSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"port": 7001, "gemini_host": "gemini.example"}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7001, cfg.Port)
	assert.Equal(t, "gemini.example", cfg.GeminiHost)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("GENRELAY_PORT", "7777")
	t.Setenv("GENRELAY_DEBUG", "true")
	t.Setenv("GENRELAY_ALLOWED_HOSTS", "a.example, b.example")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7777, cfg.Port)
	assert.True(t, cfg.Debug)
	assert.Equal(t, []string{"a.example", "b.example"}, cfg.AllowedHosts)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: [not an int"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
