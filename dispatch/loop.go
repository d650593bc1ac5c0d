package dispatch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tailored-agentic-units/livedata/config"
	"github.com/tailored-agentic-units/livedata/observability"
)

// EventLoop runs tasks one at a time, in dispatch order, on a single
// goroutine. Dispatch never blocks: the queue is unbounded.
type EventLoop struct {
	name     string
	source   string
	observer observability.Observer
	metrics  *Metrics

	mu     sync.Mutex
	queue  []Task
	closed bool
	wake   chan struct{}

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

// NewEventLoop starts a loop that runs until ctx is cancelled or Shutdown is
// called.
func NewEventLoop(ctx context.Context, cfg config.DispatchConfig) (*EventLoop, error) {
	observer, err := observability.GetObserver(cfg.Observer)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve observer: %w", err)
	}

	loopCtx, cancel := context.WithCancel(ctx)

	l := &EventLoop{
		name:     cfg.Name,
		source:   "dispatch/" + cfg.Name,
		observer: observer,
		metrics:  NewMetrics(),
		wake:     make(chan struct{}, 1),
		ctx:      loopCtx,
		cancel:   cancel,
		done:     make(chan struct{}),
	}

	go l.run()

	return l, nil
}

func (l *EventLoop) Dispatch(task Task) {
	if task == nil {
		return
	}

	if !l.enqueue(task) {
		l.metrics.RecordDropped()
		l.observer.OnEvent(l.ctx, observability.NewEvent(
			EventDropped,
			observability.LevelWarning,
			l.source,
			map[string]any{"reason": "closed"},
		))
		return
	}
	l.metrics.RecordDispatched()
}

// Wait blocks until every task dispatched before the call has run.
func (l *EventLoop) Wait(ctx context.Context) error {
	reached := make(chan struct{})
	if !l.enqueue(func() { close(reached) }) {
		return ErrClosed
	}

	select {
	case <-reached:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-l.done:
		select {
		case <-reached:
			return nil
		default:
			return ErrClosed
		}
	}
}

// Shutdown stops accepting tasks, lets the loop finish the queued ones and
// waits up to timeout for it to exit.
func (l *EventLoop) Shutdown(timeout time.Duration) error {
	l.mu.Lock()
	l.closed = true
	l.mu.Unlock()
	l.signal()

	select {
	case <-l.done:
		l.cancel()
		return nil
	case <-time.After(timeout):
		l.cancel()
		return fmt.Errorf("event loop %s shutdown timeout after %v", l.name, timeout)
	}
}

func (l *EventLoop) Metrics() MetricsSnapshot {
	return l.metrics.Snapshot()
}

// Pending reports the number of queued tasks.
func (l *EventLoop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

func (l *EventLoop) enqueue(task Task) bool {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return false
	}
	l.queue = append(l.queue, task)
	l.mu.Unlock()

	l.signal()
	return true
}

func (l *EventLoop) signal() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// next pops the head of the queue. exit is true once the loop is closed and
// drained.
func (l *EventLoop) next() (task Task, exit bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.queue) == 0 {
		return nil, l.closed
	}

	task = l.queue[0]
	l.queue[0] = nil
	l.queue = l.queue[1:]
	return task, false
}

func (l *EventLoop) run() {
	defer close(l.done)

	for {
		if l.ctx.Err() != nil {
			l.abandon()
			return
		}

		task, exit := l.next()
		if exit {
			return
		}
		if task != nil {
			run(l.source, task, l.observer, l.metrics)
			continue
		}

		select {
		case <-l.ctx.Done():
		case <-l.wake:
		}
	}
}

// abandon drops whatever is still queued when the parent context ends.
func (l *EventLoop) abandon() {
	l.mu.Lock()
	l.closed = true
	dropped := len(l.queue)
	l.queue = nil
	l.mu.Unlock()

	for range dropped {
		l.metrics.RecordDropped()
	}
	if dropped > 0 {
		l.observer.OnEvent(context.Background(), observability.NewEvent(
			EventDropped,
			observability.LevelWarning,
			l.source,
			map[string]any{"reason": "cancelled", "tasks": dropped},
		))
	}
}
