package value

import (
	"sync"
	"time"

	"github.com/tailored-agentic-units/livedata/dispatch"
)

// debouncer delays fn until delay has passed without another invoke, then
// dispatches it with the last value seen.
type debouncer[T any] struct {
	fn         func(T)
	delay      time.Duration
	dispatcher dispatch.Dispatcher

	mu    sync.Mutex
	timer *time.Timer
	last  T
	seq   uint64
}

func newDebouncer[T any](fn func(T), delay time.Duration, d dispatch.Dispatcher) *debouncer[T] {
	return &debouncer[T]{fn: fn, delay: delay, dispatcher: d}
}

func (d *debouncer[T]) invoke(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.last = v
	d.seq++
	seq := d.seq

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() { d.fire(seq) })
}

// fire ignores timers that were superseded after they had already started
// running, which Stop cannot prevent.
func (d *debouncer[T]) fire(seq uint64) {
	d.mu.Lock()
	if seq != d.seq {
		d.mu.Unlock()
		return
	}
	v := d.last
	d.timer = nil
	d.mu.Unlock()

	fn := d.fn
	d.dispatcher.Dispatch(func() { fn(v) })
}
