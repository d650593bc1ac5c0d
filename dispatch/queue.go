package dispatch

import (
	"fmt"
	"sync"

	"github.com/tailored-agentic-units/livedata/config"
	"github.com/tailored-agentic-units/livedata/observability"
)

// Queue holds tasks until the host calls Drain.
type Queue struct {
	source   string
	observer observability.Observer
	metrics  *Metrics

	mu       sync.Mutex
	tasks    []Task
	draining bool
}

func NewQueue(cfg config.DispatchConfig) (*Queue, error) {
	observer, err := observability.GetObserver(cfg.Observer)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve observer: %w", err)
	}

	return &Queue{
		source:   "dispatch/" + cfg.Name,
		observer: observer,
		metrics:  NewMetrics(),
	}, nil
}

func (q *Queue) Dispatch(task Task) {
	if task == nil {
		return
	}

	q.mu.Lock()
	q.tasks = append(q.tasks, task)
	q.mu.Unlock()

	q.metrics.RecordDispatched()
}

// Drain runs queued tasks in FIFO order until the queue is empty, including
// tasks dispatched by the tasks themselves, and returns how many ran. A
// nested call from inside a task returns 0.
func (q *Queue) Drain() int {
	q.mu.Lock()
	if q.draining {
		q.mu.Unlock()
		return 0
	}
	q.draining = true
	q.mu.Unlock()

	ran := 0
	for {
		q.mu.Lock()
		if len(q.tasks) == 0 {
			q.draining = false
			q.mu.Unlock()
			return ran
		}
		task := q.tasks[0]
		q.tasks[0] = nil
		q.tasks = q.tasks[1:]
		q.mu.Unlock()

		run(q.source, task, q.observer, q.metrics)
		ran++
	}
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

func (q *Queue) Metrics() MetricsSnapshot {
	return q.metrics.Snapshot()
}
