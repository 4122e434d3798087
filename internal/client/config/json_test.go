package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"server_url":      "http://www.example:9000",
		"request_timeout": "4s",
		"retry_delay":     250000000,
	})

	t.Run("loads from flags", func(t *testing.T) {
		cfg := &Config{DataDir: "keep"}
		parseJson(cfg, []string{"-config", pathFlag})

		assert.Equal(t, "http://www.example:9000", cfg.ServerURL)
		assert.Equal(t, 4*time.Second, cfg.RequestTimeout)
		assert.Equal(t, 250*time.Millisecond, cfg.RetryDelay)
		assert.Equal(t, "keep", cfg.DataDir, "absent keys leave values untouched")
	})

	t.Run("no flags → no changes", func(t *testing.T) {
		cfg := &Config{
			ServerURL:      "http://defaults:1234",
			RequestTimeout: 42 * time.Second,
		}
		parseJson(cfg, nil)

		assert.Equal(t, "http://defaults:1234", cfg.ServerURL)
		assert.Equal(t, 42*time.Second, cfg.RequestTimeout)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg, []string{"-c", bad}) })
	})

	t.Run("missing file → panics", func(t *testing.T) {
		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg, []string{"-c", filepath.Join(dir, "nope.json")}) })
	})
}
