package config

import "time"

// DefaultDelay is the debounce and throttle window used when a registration
// does not supply its own.
const DefaultDelay = 500 * time.Millisecond

// ValueConfig configures a value.Value.
type ValueConfig struct {
	// NullSafe suppresses notifications for falsy values (see package truthy).
	NullSafe bool `json:"null_safe" yaml:"null_safe" mapstructure:"null_safe"`

	// Default windows for ObserveDebounced and ObserveThrottled when they are
	// called with a non-positive delay.
	DebounceDelay time.Duration `json:"debounce_delay" yaml:"debounce_delay" mapstructure:"debounce_delay"`
	ThrottleDelay time.Duration `json:"throttle_delay" yaml:"throttle_delay" mapstructure:"throttle_delay"`

	// Observer and Dispatcher are registry names.
	Observer   string `json:"observer" yaml:"observer" mapstructure:"observer"`
	Dispatcher string `json:"dispatcher" yaml:"dispatcher" mapstructure:"dispatcher"`
}

// DefaultValueConfig returns a non-null-safe config with 500ms windows, the
// "noop" observer and the shared "loop" dispatcher.
func DefaultValueConfig() ValueConfig {
	return ValueConfig{
		NullSafe:      false,
		DebounceDelay: DefaultDelay,
		ThrottleDelay: DefaultDelay,
		Observer:      "noop",
		Dispatcher:    "loop",
	}
}

func (c *ValueConfig) Merge(source *ValueConfig) {
	if source.NullSafe {
		c.NullSafe = source.NullSafe
	}

	if source.DebounceDelay > 0 {
		c.DebounceDelay = source.DebounceDelay
	}

	if source.ThrottleDelay > 0 {
		c.ThrottleDelay = source.ThrottleDelay
	}

	if source.Observer != "" {
		c.Observer = source.Observer
	}

	if source.Dispatcher != "" {
		c.Dispatcher = source.Dispatcher
	}
}
