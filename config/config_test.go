package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tailored-agentic-units/livedata/config"
)

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	assert.False(t, cfg.Value.NullSafe)
	assert.Equal(t, 500*time.Millisecond, cfg.Value.DebounceDelay)
	assert.Equal(t, 500*time.Millisecond, cfg.Value.ThrottleDelay)
	assert.Equal(t, "noop", cfg.Value.Observer)
	assert.Equal(t, "loop", cfg.Value.Dispatcher)
	assert.Equal(t, "noop", cfg.Validity.Observer)
	assert.Equal(t, "loop", cfg.Validity.Dispatcher)
	assert.Equal(t, "loop", cfg.Dispatch.Name)
}

func TestConfig_Merge(t *testing.T) {
	cfg := config.DefaultConfig()

	cfg.Merge(&config.Config{
		Value: config.ValueConfig{
			NullSafe:      true,
			DebounceDelay: 50 * time.Millisecond,
			Observer:      "slog",
		},
		Validity: config.ValidityConfig{Dispatcher: "inline"},
		Dispatch: config.DispatchConfig{Name: "ui"},
	})

	assert.True(t, cfg.Value.NullSafe)
	assert.Equal(t, 50*time.Millisecond, cfg.Value.DebounceDelay)
	assert.Equal(t, 500*time.Millisecond, cfg.Value.ThrottleDelay)
	assert.Equal(t, "slog", cfg.Value.Observer)
	assert.Equal(t, "loop", cfg.Value.Dispatcher)
	assert.Equal(t, "inline", cfg.Validity.Dispatcher)
	assert.Equal(t, "ui", cfg.Dispatch.Name)
	assert.Equal(t, "noop", cfg.Dispatch.Observer)
}

func TestConfig_Merge_ZeroValuesPreserveDefaults(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Merge(&config.Config{})

	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "json",
			file: "livedata.json",
			content: `{
				"value": {"null_safe": true, "debounce_delay": 100000000, "observer": "slog"},
				"validity": {"dispatcher": "inline"}
			}`,
		},
		{
			name: "yaml",
			file: "livedata.yaml",
			content: `
value:
  null_safe: true
  debounce_delay: 100ms
  observer: slog
validity:
  dispatcher: inline
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			cfg, err := config.LoadConfig(path)
			require.NoError(t, err)

			assert.True(t, cfg.Value.NullSafe)
			assert.Equal(t, 100*time.Millisecond, cfg.Value.DebounceDelay)
			assert.Equal(t, config.DefaultDelay, cfg.Value.ThrottleDelay)
			assert.Equal(t, "slog", cfg.Value.Observer)
			assert.Equal(t, "loop", cfg.Value.Dispatcher)
			assert.Equal(t, "inline", cfg.Validity.Dispatcher)
		})
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := config.LoadConfig(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	toml := filepath.Join(dir, "livedata.toml")
	require.NoError(t, os.WriteFile(toml, []byte("x = 1"), 0644))
	_, err = config.LoadConfig(toml)
	assert.True(t, errors.Is(err, config.ErrUnsupportedFormat))

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte("{"), 0644))
	_, err = config.LoadConfig(broken)
	assert.Error(t, err)
}

func TestDecode(t *testing.T) {
	cfg, err := config.Decode(map[string]any{
		"value": map[string]any{
			"null_safe":      true,
			"throttle_delay": "250ms",
		},
		"dispatch": map[string]any{
			"name":     "ui",
			"observer": "slog",
		},
	})
	require.NoError(t, err)

	assert.True(t, cfg.Value.NullSafe)
	assert.Equal(t, 250*time.Millisecond, cfg.Value.ThrottleDelay)
	assert.Equal(t, config.DefaultDelay, cfg.Value.DebounceDelay)
	assert.Equal(t, "ui", cfg.Dispatch.Name)
	assert.Equal(t, "slog", cfg.Dispatch.Observer)
}

func TestDecode_UnknownField(t *testing.T) {
	_, err := config.Decode(map[string]any{
		"value": map[string]any{"nullsafe": true},
	})
	assert.Error(t, err)
}
