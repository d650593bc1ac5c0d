package observability

import "context"

// NoOpObserver discards all events. It is what the "noop" registry entry and
// the empty observer name resolve to.
type NoOpObserver struct{}

func (NoOpObserver) OnEvent(ctx context.Context, event Event) {}
