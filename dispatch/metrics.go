package dispatch

import "sync/atomic"

type MetricsSnapshot struct {
	Dispatched int64
	Executed   int64
	Panicked   int64
	Dropped    int64
}

type Metrics struct {
	dispatched atomic.Int64
	executed   atomic.Int64
	panicked   atomic.Int64
	dropped    atomic.Int64
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) RecordDispatched() {
	m.dispatched.Add(1)
}

func (m *Metrics) RecordExecuted() {
	m.executed.Add(1)
}

func (m *Metrics) RecordPanic() {
	m.panicked.Add(1)
}

func (m *Metrics) RecordDropped() {
	m.dropped.Add(1)
}

func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Dispatched: m.dispatched.Load(),
		Executed:   m.executed.Load(),
		Panicked:   m.panicked.Load(),
		Dropped:    m.dropped.Load(),
	}
}
