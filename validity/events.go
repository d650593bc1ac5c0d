package validity

import "github.com/tailored-agentic-units/livedata/observability"

const (
	EventCreate  observability.EventType = "validity.create"
	EventSet     observability.EventType = "validity.set"
	EventObserve observability.EventType = "validity.observe"
)
