package config

// ValidityConfig configures a validity.Map.
type ValidityConfig struct {
	Observer   string `json:"observer" yaml:"observer" mapstructure:"observer"`
	Dispatcher string `json:"dispatcher" yaml:"dispatcher" mapstructure:"dispatcher"`
}

// DefaultValidityConfig returns the "noop" observer and the shared "loop"
// dispatcher.
func DefaultValidityConfig() ValidityConfig {
	return ValidityConfig{
		Observer:   "noop",
		Dispatcher: "loop",
	}
}

func (c *ValidityConfig) Merge(source *ValidityConfig) {
	if source.Observer != "" {
		c.Observer = source.Observer
	}

	if source.Dispatcher != "" {
		c.Dispatcher = source.Dispatcher
	}
}
