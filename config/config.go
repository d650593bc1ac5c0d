package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned by LoadConfig for unknown file extensions.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Config groups the configuration of every livedata component.
type Config struct {
	Value    ValueConfig    `json:"value" yaml:"value" mapstructure:"value"`
	Validity ValidityConfig `json:"validity" yaml:"validity" mapstructure:"validity"`
	Dispatch DispatchConfig `json:"dispatch" yaml:"dispatch" mapstructure:"dispatch"`
}

// DefaultConfig returns a Config with defaults for all components.
func DefaultConfig() Config {
	return Config{
		Value:    DefaultValueConfig(),
		Validity: DefaultValidityConfig(),
		Dispatch: DefaultDispatchConfig(),
	}
}

// Merge applies non-zero values from source into c, delegating to each
// component's Merge method.
func (c *Config) Merge(source *Config) {
	c.Value.Merge(&source.Value)
	c.Validity.Merge(&source.Validity)
	c.Dispatch.Merge(&source.Dispatch)
}

// LoadConfig reads a JSON or YAML config file, merges it with defaults, and
// returns the resulting Config. The format is chosen by file extension.
// Durations are nanoseconds in JSON and duration strings ("250ms") in YAML.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded Config
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".json":
		if err := json.Unmarshal(data, &loaded); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &loaded); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	cfg := DefaultConfig()
	cfg.Merge(&loaded)
	return &cfg, nil
}

// Decode converts a generic map (for example a section of a host
// application's own config) into a Config merged with defaults. Duration
// fields accept strings such as "250ms".
func Decode(raw map[string]any) (*Config, error) {
	var loaded Config

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  mapstructure.StringToTimeDurationHookFunc(),
		ErrorUnused: true,
		Result:      &loaded,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg := DefaultConfig()
	cfg.Merge(&loaded)
	return &cfg, nil
}
