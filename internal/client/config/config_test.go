package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8000", c.ServerURL)
	assert.Empty(t, c.Username)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
}

func TestLoad_NoArgs(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	want := &Config{}
	want.LoadDefaults()
	assert.Empty(t, cmp.Diff(want, cfg))
}

func TestLoad_Precedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cli.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"server_url": "http://json:1",
		"username": "from-json",
		"request_timeout": "3s"
	}`), 0o600))

	cfg, err := Load([]string{"-c", path, "-a", "https://flag:2"})
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff(&Config{
		ServerURL:      "https://flag:2",
		Username:       "from-json",
		RequestTimeout: 3 * time.Second,
	}, cfg))
}

func TestLoad_Errors(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"server_url":`), 0o600))

	tests := []struct {
		name string
		args []string
	}{
		{name: "missing file", args: []string{"-c", filepath.Join(t.TempDir(), "nope.json")}},
		{name: "broken json", args: []string{"-c", bad}},
		{name: "non numeric timeout", args: []string{"-t", "soon"}},
		{name: "zero timeout", args: []string{"-t", "0"}},
		{name: "no scheme", args: []string{"-a", "127.0.0.1:8000"}},
		{name: "ftp scheme", args: []string{"-a", "ftp://host"}},
		{name: "no host", args: []string{"-a", "http://"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.args)
			assert.Error(t, err)
		})
	}
}
