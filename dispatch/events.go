package dispatch

import "github.com/tailored-agentic-units/livedata/observability"

const (
	EventPanic   observability.EventType = "dispatch.panic"
	EventDropped observability.EventType = "dispatch.dropped"
)
