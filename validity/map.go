// Package validity provides Map, a set of named boolean flags whose
// conjunction is observable.
//
// A form might track one flag per field and enable its submit button only
// when every field is valid:
//
//	fields, _ := validity.New(config.DefaultValidityConfig(), "email", "password")
//	fields.Observe(func(valid bool, _ *validity.Map[string]) {
//	    submit.SetEnabled(valid)
//	})
//	fields.Set("email", true)    // observers receive false
//	fields.Set("password", true) // observers receive true
//
// Keys are never removed; Set only adds or overwrites.
package validity

import (
	"context"
	"fmt"
	"iter"
	"slices"
	"sync"

	"github.com/google/uuid"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/tailored-agentic-units/livedata/config"
	"github.com/tailored-agentic-units/livedata/dispatch"
	"github.com/tailored-agentic-units/livedata/observability"
	"github.com/tailored-agentic-units/livedata/truthy"
)

// Map holds validity flags keyed by K. It is valid when it has at least one
// key and every flag is true. All methods are safe for concurrent use.
type Map[K comparable] struct {
	id     string
	source string

	observer   observability.Observer
	dispatcher dispatch.Dispatcher

	mu        sync.RWMutex
	entries   map[K]bool
	order     []K
	observers []func(valid bool, m *Map[K])
}

// New creates a Map with each of keys set to false.
func New[K comparable](cfg config.ValidityConfig, keys ...K) (*Map[K], error) {
	merged := config.DefaultValidityConfig()
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
	m := &Map[K]{
		id:         id,
		source:     "validity/" + id,
		observer:   observer,
		dispatcher: dispatcher,
		entries:    make(map[K]bool, len(keys)),
	}

	m.emit(EventCreate, map[string]any{"keys": len(keys)})

	for _, key := range keys {
		m.Set(key, false)
	}

	return m, nil
}

// ID returns the identifier used as the source of this Map's events.
func (m *Map[K]) ID() string {
	return m.id
}

// Set stores valid under key and dispatches every observer with the
// overall validity as of this call. It returns m for chaining.
func (m *Map[K]) Set(key K, valid bool) *Map[K] {
	m.mu.Lock()
	if _, exists := m.entries[key]; !exists {
		m.order = append(m.order, key)
	}
	m.entries[key] = valid
	overall := m.isValid()
	observers := slices.Clone(m.observers)
	m.mu.Unlock()

	for _, fn := range observers {
		m.dispatcher.Dispatch(func() { fn(overall, m) })
	}

	m.emit(EventSet, map[string]any{
		"key":       fmt.Sprint(key),
		"valid":     valid,
		"overall":   overall,
		"observers": len(observers),
	})

	return m
}

// SetTruthy stores whether v is truthy (see package truthy) under key.
func (m *Map[K]) SetTruthy(key K, v any) *Map[K] {
	return m.Set(key, truthy.Of(v))
}

// Get returns the flag stored under key and whether key exists.
func (m *Map[K]) Get(key K) (bool, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	valid, exists := m.entries[key]
	return valid, exists
}

// Keys returns a fresh iterator over the keys in insertion order. The
// iterator reads the map as it goes, so keys added during iteration are
// visited.
func (m *Map[K]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for i := 0; ; i++ {
			m.mu.RLock()
			if i >= len(m.order) {
				m.mu.RUnlock()
				return
			}
			key := m.order[i]
			m.mu.RUnlock()

			if !yield(key) {
				return
			}
		}
	}
}

// All returns a fresh iterator over keys and flags in insertion order.
func (m *Map[K]) All() iter.Seq2[K, bool] {
	return func(yield func(K, bool) bool) {
		for key := range m.Keys() {
			valid, _ := m.Get(key)
			if !yield(key, valid) {
				return
			}
		}
	}
}

func (m *Map[K]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Observe registers fn to be called after every Set.
func (m *Map[K]) Observe(fn func(valid bool, m *Map[K])) {
	if fn == nil {
		return
	}

	m.mu.Lock()
	m.observers = append(m.observers, fn)
	count := len(m.observers)
	m.mu.Unlock()

	m.emit(EventObserve, map[string]any{"observers": count})
}

// IsValid reports whether the map is non-empty and every flag is true.
func (m *Map[K]) IsValid() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.isValid()
}

// Struct renders the map as a protobuf Struct of the form
// {"valid": bool, "entries": {key: bool, ...}}. Keys are formatted with
// fmt.Sprint.
func (m *Map[K]) Struct() (*structpb.Struct, error) {
	m.mu.RLock()
	entries := make(map[string]any, len(m.entries))
	for key, valid := range m.entries {
		entries[fmt.Sprint(key)] = valid
	}
	valid := m.isValid()
	m.mu.RUnlock()

	s, err := structpb.NewStruct(map[string]any{
		"valid":   valid,
		"entries": entries,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build validity struct: %w", err)
	}
	return s, nil
}

func (m *Map[K]) isValid() bool {
	if len(m.entries) == 0 {
		return false
	}
	for _, valid := range m.entries {
		if !valid {
			return false
		}
	}
	return true
}

func (m *Map[K]) emit(eventType observability.EventType, data map[string]any) {
	m.observer.OnEvent(context.Background(), observability.NewEvent(
		eventType,
		observability.LevelVerbose,
		m.source,
		data,
	))
}
