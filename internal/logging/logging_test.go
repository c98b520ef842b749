package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liftops/liftray/internal/config"
)

func TestInit_Disabled(t *testing.T) {
	l, err := Init(Config{Enabled: false})
	require.NoError(t, err)

	// No-op logger accepts everything without side effects.
	l.Debug("d")
	l.Info("i", "k", "v")
	assert.NoError(t, l.Shutdown())
}

func TestInit_WritesJSONWithRedaction(t *testing.T) {
	stateDir := t.TempDir()
	config.Set("state_dir", stateDir)

	l, err := Init(Config{Enabled: true, Level: "debug", MaxFiles: 3, Command: "test", PID: 42})
	require.NoError(t, err)

	l.Info("signed in", "server", "https://example.com", "token", "super-secret")
	require.NoError(t, l.Shutdown())

	entries, err := os.ReadDir(filepath.Join(stateDir, "logs"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasPrefix(entries[0].Name(), "liftray_"))

	data, err := os.ReadFile(filepath.Join(stateDir, "logs", entries[0].Name()))
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.Split(strings.TrimSpace(string(data)), "\n")[0]), &entry))
	assert.Equal(t, "signed in", entry["msg"])
	assert.Equal(t, "[REDACTED]", entry["token"])
	assert.Equal(t, "https://example.com", entry["server"])
}

func TestWith_ChainsFields(t *testing.T) {
	stateDir := t.TempDir()
	config.Set("state_dir", stateDir)

	l, err := Init(Config{Enabled: true, Level: "info", MaxFiles: 3, Command: "test", PID: 1})
	require.NoError(t, err)

	l.With("session", "s1").Info("tick")
	require.NoError(t, l.Shutdown())

	entries, err := os.ReadDir(filepath.Join(stateDir, "logs"))
	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(stateDir, "logs", entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"session":"s1"`)
}

func TestRedactor(t *testing.T) {
	r := newRedactor()

	tests := []struct {
		name string
		key  string
		want bool
	}{
		{"token", "token", true},
		{"api_token", "api_token", true},
		{"authorization header", "authorization", true},
		{"plain field", "server", false},
		{"substring not segment", "tokenizer", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.isSensitive(tt.key))
		})
	}

	redacted := r.redact([]any{"token", "abc", "page", 2})
	assert.Equal(t, "[REDACTED]", redacted[1])
	assert.Equal(t, 2, redacted[3])
}

func TestRotate(t *testing.T) {
	dir := t.TempDir()
	names := []string{"liftray_a.log", "liftray_b.log", "liftray_c.log", "other.txt"}
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte("x"), 0600))
	}

	require.NoError(t, rotate(dir, 2))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	logs := 0
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".log") {
			logs++
		}
	}
	assert.Equal(t, 2, logs)
	// Unrelated files are untouched.
	_, err = os.Stat(filepath.Join(dir, "other.txt"))
	assert.NoError(t, err)
}

func TestRotateRemovesOldestFirst(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	for i, n := range []string{"liftray_old.log", "liftray_mid.log", "liftray_new.log"} {
		path := filepath.Join(dir, n)
		require.NoError(t, os.WriteFile(path, []byte("x"), 0600))
		ts := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(path, ts, ts))
	}

	require.NoError(t, rotate(dir, 1))

	_, err := os.Stat(filepath.Join(dir, "liftray_new.log"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "liftray_old.log"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "liftray_mid.log"))
	assert.True(t, os.IsNotExist(err))
}
