package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"-a", "http://10.0.0.5:8080/api", "-d", "/tmp/ps.db", "-s", "persistent", "-l", "debug", "-m", "20"},
			expected: &Config{
				APIBaseURL:   "http://10.0.0.5:8080/api",
				DBPath:       "/tmp/ps.db",
				SessionScope: ScopePersistent,
				LogLevel:     "debug",
				MessageLimit: 20,
			},
		},
		{
			name: "foreign flags ignored",
			args: []string{"-c", "x.json", "-a", "http://h/api"},
			expected: &Config{
				APIBaseURL:   "http://h/api",
				DBPath:       "peersphere.db",
				SessionScope: ScopeTab,
				LogLevel:     "info",
				MessageLimit: 50,
			},
		},
		{name: "incorrect message limit", args: []string{"-m", "abc"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.LoadDefaults()

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(cfg, tt.args) })
				return
			}
			require.NotPanics(t, func() { parseFlags(cfg, tt.args) })
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}
