package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loadIsolated points all config sources at a temp directory so tests
// never touch the real XDG tree.
func loadIsolated(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_STATE_HOME", dir)
	t.Setenv(envConfigPath, "")
	return dir
}

func writeConfigFile(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), FileModeFile))
	t.Setenv(envConfigPath, path)
}

func TestLoadDefaults(t *testing.T) {
	loadIsolated(t)
	Load()

	assert.Equal(t, 30, GetInt("poll_interval_seconds", 0))
	assert.Equal(t, 20, GetInt("page_limit", 0))
	assert.True(t, GetBool("desktop_alerts", false))
	assert.False(t, GetBool("logging_enabled", true))
	assert.Equal(t, "info", Get("logging_level", ""))
	assert.Empty(t, Get("server_url", ""))
}

func TestLoadFromFile(t *testing.T) {
	loadIsolated(t)
	writeConfigFile(t, `
server_url = "https://liftdesk.example.com"
token = "abc123"
poll_interval_seconds = 10
desktop_alerts = false
`)
	Load()

	assert.Equal(t, "https://liftdesk.example.com", Get("server_url", ""))
	assert.Equal(t, "abc123", Get("token", ""))
	assert.Equal(t, 10, GetInt("poll_interval_seconds", 0))
	assert.False(t, GetBool("desktop_alerts", true))
}

func TestEnvOverridesFile(t *testing.T) {
	loadIsolated(t)
	writeConfigFile(t, `server_url = "https://from-file.example.com"`)
	t.Setenv("LIFTRAY_SERVER_URL", "https://from-env.example.com")
	Load()

	assert.Equal(t, "https://from-env.example.com", Get("server_url", ""))
}

func TestValidationFallsBackToDefault(t *testing.T) {
	loadIsolated(t)
	writeConfigFile(t, `
poll_interval_seconds = -5
logging_level = "verbose"
`)
	Load()

	assert.Equal(t, 30, GetInt("poll_interval_seconds", 0))
	assert.Equal(t, "info", Get("logging_level", ""))
}

func TestServerURLNormalization(t *testing.T) {
	loadIsolated(t)
	writeConfigFile(t, `server_url = "https://liftdesk.example.com/"`)
	Load()

	assert.Equal(t, "https://liftdesk.example.com", Get("server_url", ""))
}

func TestInvalidServerURLRejected(t *testing.T) {
	loadIsolated(t)
	writeConfigFile(t, `server_url = "not a url"`)
	Load()

	assert.Empty(t, Get("server_url", ""))
}

func TestBoolNormalization(t *testing.T) {
	loadIsolated(t)
	t.Setenv("LIFTRAY_DESKTOP_ALERTS", "off")
	Load()

	assert.False(t, GetBool("desktop_alerts", true))
}

func TestCreatesSampleConfig(t *testing.T) {
	dir := loadIsolated(t)
	Load()

	sample := filepath.Join(dir, "liftray", "config.toml")
	data, err := os.ReadFile(sample)
	require.NoError(t, err)
	assert.Contains(t, string(data), "liftray configuration")
}

func TestGetBeforeLoad(t *testing.T) {
	mu.Lock()
	config = nil
	mu.Unlock()

	assert.Equal(t, "fallback", Get("server_url", "fallback"))
	assert.Equal(t, 7, GetInt("page_limit", 7))
}

func TestSet(t *testing.T) {
	loadIsolated(t)
	Load()

	Set("page_limit", "50")
	assert.Equal(t, 50, GetInt("page_limit", 0))
}
