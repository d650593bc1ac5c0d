package dispatch

import (
	"context"
	"fmt"

	"github.com/tailored-agentic-units/livedata/observability"
)

// Task is a unit of deferred work, typically one observer invocation.
type Task func()

// Dispatcher schedules tasks without blocking on their completion.
type Dispatcher interface {
	Dispatch(task Task)
}

// run executes task, converting a panic into metrics and an EventPanic.
func run(source string, task Task, observer observability.Observer, metrics *Metrics) {
	defer func() {
		metrics.RecordExecuted()
		if r := recover(); r != nil {
			metrics.RecordPanic()
			observer.OnEvent(context.Background(), observability.NewEvent(
				EventPanic,
				observability.LevelError,
				source,
				map[string]any{"panic": fmt.Sprint(r)},
			))
		}
	}()

	task()
}

// Inline runs tasks synchronously on the dispatching goroutine.
type Inline struct {
	observer observability.Observer
	metrics  *Metrics
}

// NewInline creates an Inline dispatcher reporting panics to observer. A nil
// observer discards them.
func NewInline(observer observability.Observer) *Inline {
	if observer == nil {
		observer = observability.NoOpObserver{}
	}
	return &Inline{
		observer: observer,
		metrics:  NewMetrics(),
	}
}

func (d *Inline) Dispatch(task Task) {
	if task == nil {
		return
	}
	d.metrics.RecordDispatched()
	run("dispatch/inline", task, d.observer, d.metrics)
}

func (d *Inline) Metrics() MetricsSnapshot {
	return d.metrics.Snapshot()
}
