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

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	t.Run("loads every field", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{
			"listen_addr":      "127.0.0.1:9000",
			"session_ttl":      "90s",
			"difficulty_field": "hardship",
			"psych_field":      "wellbeing",
			"psych_marker":     "Y",
			"cookie_secure":    true,
		})

		cfg := &Config{}
		require.NoError(t, parseJson(cfg, []string{"-config", path}))

		assert.Equal(t, "127.0.0.1:9000", cfg.ListenAddr)
		assert.Equal(t, 90*time.Second, cfg.SessionTTL)
		assert.Equal(t, "hardship", cfg.DifficultyField)
		assert.Equal(t, "wellbeing", cfg.PsychField)
		assert.Equal(t, "Y", cfg.PsychMarker)
		assert.True(t, cfg.CookieSecure)
	})

	t.Run("partial file keeps other values", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{"listen_addr": ":1234"})

		cfg := &Config{}
		cfg.LoadDefaults()
		require.NoError(t, parseJson(cfg, []string{"-c", path}))

		assert.Equal(t, ":1234", cfg.ListenAddr)
		assert.Equal(t, 12*time.Hour, cfg.SessionTTL)
		assert.Equal(t, "yes", cfg.PsychMarker)
	})

	t.Run("no config flag → no changes", func(t *testing.T) {
		cfg := &Config{ListenAddr: "defaults:1234"}
		require.NoError(t, parseJson(cfg, []string{"-a", "x"}))
		assert.Equal(t, "defaults:1234", cfg.ListenAddr)
	})

	t.Run("invalid JSON → error", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		cfg := &Config{}
		require.Error(t, parseJson(cfg, []string{"-c", bad}))
	})

	t.Run("missing file → error", func(t *testing.T) {
		cfg := &Config{}
		require.Error(t, parseJson(cfg, []string{"-c", filepath.Join(t.TempDir(), "nope.json")}))
	})
}

func TestLoad_JSONThenEnvThenFlags(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"listen_addr": "127.0.0.1:9000",
		"session_ttl": "90s",
	})

	env := fullEnv()
	cfg, err := Load([]string{"-c", path}, envMap(env))
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.ListenAddr)
	assert.Equal(t, 90*time.Second, cfg.SessionTTL)

	env[EnvPort] = "8181"
	cfg, err = Load([]string{"-c", path}, envMap(env))
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:8181", cfg.ListenAddr)

	cfg, err = Load([]string{"-c", path, "-a", ":7777"}, envMap(env))
	require.NoError(t, err)
	assert.Equal(t, ":7777", cfg.ListenAddr)
}
