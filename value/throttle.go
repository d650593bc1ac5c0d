package value

import (
	"sync"
	"time"

	"github.com/tailored-agentic-units/livedata/dispatch"
)

// throttler dispatches fn for the first invoke of each window and drops the
// rest. The window opens when a call is accepted.
type throttler[T any] struct {
	fn         func(T)
	delay      time.Duration
	dispatcher dispatch.Dispatcher

	mu      sync.Mutex
	cooling bool
}

func newThrottler[T any](fn func(T), delay time.Duration, d dispatch.Dispatcher) *throttler[T] {
	return &throttler[T]{fn: fn, delay: delay, dispatcher: d}
}

// invoke reports whether v was accepted.
func (t *throttler[T]) invoke(v T) bool {
	t.mu.Lock()
	if t.cooling {
		t.mu.Unlock()
		return false
	}
	t.cooling = true
	t.mu.Unlock()

	fn := t.fn
	t.dispatcher.Dispatch(func() { fn(v) })
	time.AfterFunc(t.delay, t.release)
	return true
}

func (t *throttler[T]) release() {
	t.mu.Lock()
	t.cooling = false
	t.mu.Unlock()
}
