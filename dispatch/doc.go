// Package dispatch runs observer callbacks as fire-and-forget tasks.
//
// Values and validity maps never call observers on the goroutine that
// changed them. They hand each invocation to a Dispatcher, which decides
// where and when it runs:
//
//   - EventLoop: one goroutine drains an unbounded FIFO queue. All callbacks
//     of every value sharing a loop run one at a time, in the order they were
//     dispatched. This is the default ("loop").
//   - Queue: tasks accumulate until the host application calls Drain, for
//     hosts that already own a main loop.
//   - Inline: the task runs immediately on the caller's goroutine ("inline").
//
// Every dispatcher runs each task under recover. A panicking observer is
// counted, reported as an EventPanic at LevelError, and cannot stop sibling
// tasks from running.
//
// Dispatchers are resolved by name through Get so that configs stay plain
// data:
//
//	q, _ := dispatch.NewQueue(config.DispatchConfig{Name: "ui"})
//	dispatch.Register("ui", q)
//	cfg := config.DefaultValueConfig()
//	cfg.Dispatcher = "ui"
package dispatch
