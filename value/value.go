package value

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tailored-agentic-units/livedata/config"
	"github.com/tailored-agentic-units/livedata/dispatch"
	"github.com/tailored-agentic-units/livedata/observability"
	"github.com/tailored-agentic-units/livedata/truthy"
)

// Value is an observable container for a value of type T. All methods are
// safe for concurrent use. Notifications for Sets racing on different
// goroutines may be delivered in either order.
type Value[T any] struct {
	id     string
	source string

	nullSafe      bool
	debounceDelay time.Duration
	throttleDelay time.Duration

	observer   observability.Observer
	dispatcher dispatch.Dispatcher
	replayer   *dispatch.Inline

	// writeMu serializes writers so Mutate reads and stores atomically.
	writeMu sync.Mutex

	mu          sync.RWMutex
	value       T
	initialized bool
	immediate   []func(T)
	debounced   []*debouncer[T]
	throttled   []*throttler[T]
}

// Counts reports the size of each observer registry.
type Counts struct {
	Immediate int
	Debounced int
	Throttled int
}

// New creates an uninitialized Value. cfg is merged onto
// config.DefaultValueConfig, so a zero config is valid.
func New[T any](cfg config.ValueConfig) (*Value[T], error) {
	var zero T
	return newValue(zero, false, cfg)
}

// Of creates a Value holding initial. The Value is initialized even when
// initial is nil or zero.
func Of[T any](initial T, cfg config.ValueConfig) (*Value[T], error) {
	return newValue(initial, true, cfg)
}

func newValue[T any](initial T, initialized bool, cfg config.ValueConfig) (*Value[T], error) {
	merged := config.DefaultValueConfig()
	merged.Merge(&cfg)

	observer, err := observability.GetObserver(merged.Observer)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve observer: %w", err)
	}

	dispatcher, err := dispatch.Get(merged.Dispatcher)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve dispatcher: %w", err)
	}

	id := uuid.Must(uuid.NewV7()).String()
	v := &Value[T]{
		id:            id,
		source:        "value/" + id,
		nullSafe:      merged.NullSafe,
		debounceDelay: merged.DebounceDelay,
		throttleDelay: merged.ThrottleDelay,
		observer:      observer,
		dispatcher:    dispatcher,
		replayer:      dispatch.NewInline(observer),
		value:         initial,
		initialized:   initialized,
	}

	v.emit(EventCreate, map[string]any{
		"null_safe":   v.nullSafe,
		"initialized": initialized,
		"dispatcher":  merged.Dispatcher,
	})

	return v, nil
}

// ID returns the identifier used as the source of this Value's events.
func (v *Value[T]) ID() string {
	return v.id
}

// IsInitialized reports whether a value was ever set, at construction or
// through Set. Once true it stays true.
func (v *Value[T]) IsInitialized() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.initialized
}

// Get returns the current value and whether it was ever set.
func (v *Value[T]) Get() (T, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.value, v.initialized
}

// Set stores next, marks the Value initialized and notifies observers
// unless the Value is null-safe and next is falsy. Set does not wait for
// observers to run.
func (v *Value[T]) Set(next T) {
	v.writeMu.Lock()
	v.store(next)
	v.writeMu.Unlock()

	v.notify(next)
}

// Mutate sets the Value to fn applied to the current value and returns v.
// fn runs while other writers are held off; it may call Get but must not
// call Set or Mutate on the same Value. If fn panics the Value is left
// unchanged and the panic propagates to the caller.
func (v *Value[T]) Mutate(fn func(T) T) *Value[T] {
	next := v.apply(fn)
	v.notify(next)
	return v
}

func (v *Value[T]) apply(fn func(T) T) T {
	v.writeMu.Lock()
	defer v.writeMu.Unlock()

	current, _ := v.Get()
	next := fn(current)
	v.store(next)
	return next
}

// Observe registers fn to be called with every accepted value.
func (v *Value[T]) Observe(fn func(T)) {
	if fn == nil {
		return
	}

	v.mu.Lock()
	v.immediate = append(v.immediate, fn)
	current, initialized := v.value, v.initialized
	v.mu.Unlock()

	v.emit(EventObserve, map[string]any{"registry": registryImmediate})

	if initialized && v.accepts(current) {
		v.emit(EventReplay, map[string]any{"registry": registryImmediate})
		v.replayer.Dispatch(func() { fn(current) })
	}
}

// ObserveDebounced registers fn behind its own debounce timer. A
// non-positive delay uses the configured debounce delay, so a zero-length
// window cannot be requested; use Observe instead.
func (v *Value[T]) ObserveDebounced(fn func(T), delay time.Duration) {
	if fn == nil {
		return
	}
	if delay <= 0 {
		delay = v.debounceDelay
	}

	d := newDebouncer(fn, delay, v.dispatcher)

	v.mu.Lock()
	v.debounced = append(v.debounced, d)
	current, initialized := v.value, v.initialized
	v.mu.Unlock()

	v.emit(EventObserve, map[string]any{"registry": registryDebounced, "delay": delay})

	if initialized && v.accepts(current) {
		v.emit(EventReplay, map[string]any{"registry": registryDebounced})
		d.invoke(current)
	}
}

// ObserveThrottled registers fn behind its own throttle window. A
// non-positive delay uses the configured throttle delay, so a zero-length
// window cannot be requested; use Observe instead.
func (v *Value[T]) ObserveThrottled(fn func(T), delay time.Duration) {
	if fn == nil {
		return
	}
	if delay <= 0 {
		delay = v.throttleDelay
	}

	t := newThrottler(fn, delay, v.dispatcher)

	v.mu.Lock()
	v.throttled = append(v.throttled, t)
	current, initialized := v.value, v.initialized
	v.mu.Unlock()

	v.emit(EventObserve, map[string]any{"registry": registryThrottled, "delay": delay})

	if initialized && v.accepts(current) {
		v.emit(EventReplay, map[string]any{"registry": registryThrottled})
		t.invoke(current)
	}
}

// Observers reports how many observers each registry holds.
func (v *Value[T]) Observers() Counts {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return Counts{
		Immediate: len(v.immediate),
		Debounced: len(v.debounced),
		Throttled: len(v.throttled),
	}
}

func (v *Value[T]) store(next T) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.value = next
	v.initialized = true
}

// accepts is the null-safety gate.
func (v *Value[T]) accepts(x T) bool {
	return !v.nullSafe || truthy.Of(x)
}

func (v *Value[T]) notify(next T) {
	if !v.accepts(next) {
		v.emit(EventSuppressed, nil)
		return
	}

	v.mu.RLock()
	immediate := slices.Clone(v.immediate)
	debounced := slices.Clone(v.debounced)
	throttled := slices.Clone(v.throttled)
	v.mu.RUnlock()

	for _, fn := range immediate {
		v.dispatcher.Dispatch(func() { fn(next) })
	}

	for _, d := range debounced {
		d.invoke(next)
	}

	accepted := 0
	for _, t := range throttled {
		if t.invoke(next) {
			accepted++
		}
	}

	v.emit(EventSet, map[string]any{
		registryImmediate:    len(immediate),
		registryDebounced:    len(debounced),
		registryThrottled:    len(throttled),
		"throttled_accepted": accepted,
	})
}

func (v *Value[T]) emit(eventType observability.EventType, data map[string]any) {
	v.observer.OnEvent(context.Background(), observability.NewEvent(
		eventType,
		observability.LevelVerbose,
		v.source,
		data,
	))
}
