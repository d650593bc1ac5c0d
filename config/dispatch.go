package config

// DispatchConfig configures a dispatch.EventLoop or dispatch.Queue.
type DispatchConfig struct {
	// Name identifies the dispatcher in telemetry.
	Name string `json:"name" yaml:"name" mapstructure:"name"`

	// Observer receives dispatch.panic and dispatch.dropped events.
	Observer string `json:"observer" yaml:"observer" mapstructure:"observer"`
}

// DefaultDispatchConfig returns a config named "loop" reporting to "noop".
func DefaultDispatchConfig() DispatchConfig {
	return DispatchConfig{
		Name:     "loop",
		Observer: "noop",
	}
}

func (c *DispatchConfig) Merge(source *DispatchConfig) {
	if source.Name != "" {
		c.Name = source.Name
	}

	if source.Observer != "" {
		c.Observer = source.Observer
	}
}
