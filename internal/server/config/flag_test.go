package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		start    Config
		expected Config
		wantErr  bool
	}{
		{
			name:     "address and ttl",
			args:     []string{"-a", "127.0.0.1:9090", "-t", "30"},
			start:    Config{ListenAddr: ":8000", SessionTTL: time.Hour},
			expected: Config{ListenAddr: "127.0.0.1:9090", SessionTTL: 30 * time.Minute},
		},
		{
			name:     "ttl untouched when flag absent",
			args:     []string{"-a", ":1"},
			start:    Config{ListenAddr: ":8000", SessionTTL: 90 * time.Second},
			expected: Config{ListenAddr: ":1", SessionTTL: 90 * time.Second},
		},
		{
			name:     "foreign flags ignored",
			args:     []string{"-c", "cfg.json", "-x"},
			start:    Config{ListenAddr: ":8000"},
			expected: Config{ListenAddr: ":8000"},
		},
		{
			name:    "non numeric ttl",
			args:    []string{"-t", "soon"},
			start:   Config{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.start
			err := parseFlags(&cfg, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}
