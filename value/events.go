package value

import "github.com/tailored-agentic-units/livedata/observability"

const (
	EventCreate     observability.EventType = "value.create"
	EventSet        observability.EventType = "value.set"
	EventSuppressed observability.EventType = "value.suppressed"
	EventObserve    observability.EventType = "value.observe"
	EventReplay     observability.EventType = "value.replay"
)

// Registry names used in event data.
const (
	registryImmediate = "immediate"
	registryDebounced = "debounced"
	registryThrottled = "throttled"
)
