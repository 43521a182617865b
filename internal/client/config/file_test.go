package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func writeTempJSON(t *testing.T, name string, data map[string]any) string {
	t.Helper()
	b, err := json.Marshal(data)
	require.NoError(t, err)
	return writeTemp(t, name, b)
}

func Test_parseFile(t *testing.T) {
	t.Run("json from -config", func(t *testing.T) {
		path := writeTempJSON(t, "cfg.json", map[string]any{
			"api_base_url":  "http://example:9000/api",
			"session_scope": "persistent",
			"message_limit": 10,
		})

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFile(cfg, []string{"-config", path})

		assert.Equal(t, "http://example:9000/api", cfg.APIBaseURL)
		assert.Equal(t, ScopePersistent, cfg.SessionScope)
		assert.Equal(t, 10, cfg.MessageLimit)
		assert.Equal(t, "peersphere.db", cfg.DBPath, "absent keys keep their value")
	})

	t.Run("yaml by extension", func(t *testing.T) {
		path := writeTemp(t, "cfg.yaml", []byte("api_base_url: https://ps.example/api\nlog_level: warn\n"))

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFile(cfg, []string{"-c", path})

		assert.Equal(t, "https://ps.example/api", cfg.APIBaseURL)
		assert.Equal(t, "warn", cfg.LogLevel)
	})

	t.Run("no flag, no changes", func(t *testing.T) {
		cfg := &Config{APIBaseURL: "http://defaults:1234", MessageLimit: 42}
		parseFile(cfg, []string{"-a", "ignored"})

		assert.Equal(t, "http://defaults:1234", cfg.APIBaseURL)
		assert.Equal(t, 42, cfg.MessageLimit)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := writeTemp(t, "bad.json", []byte(`{ this is not valid json`))
		require.Panics(t, func() { parseFile(&Config{}, []string{"-c", bad}) })
	})

	t.Run("missing file panics", func(t *testing.T) {
		require.Panics(t, func() { parseFile(&Config{}, []string{"-c", filepath.Join(t.TempDir(), "nope.json")}) })
	})
}
