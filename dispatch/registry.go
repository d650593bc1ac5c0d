package dispatch

import (
	"context"
	"fmt"
	"sync"

	"github.com/tailored-agentic-units/livedata/config"
)

// DefaultName is the registry name of the shared event loop.
const DefaultName = "loop"

var (
	dispatchers = map[string]Dispatcher{
		"inline": NewInline(nil),
	}
	mutex sync.RWMutex

	defaultOnce sync.Once
	defaultLoop *EventLoop
)

// Default returns the process-wide event loop, starting it on first use.
func Default() *EventLoop {
	defaultOnce.Do(func() {
		loop, err := NewEventLoop(context.Background(), config.DefaultDispatchConfig())
		if err != nil {
			panic(err)
		}
		defaultLoop = loop
	})
	return defaultLoop
}

// Get returns a registered dispatcher by name. The empty name and
// DefaultName resolve to Default unless something else was registered under
// DefaultName.
func Get(name string) (Dispatcher, error) {
	if name == "" {
		name = DefaultName
	}

	mutex.RLock()
	d, exists := dispatchers[name]
	mutex.RUnlock()

	if exists {
		return d, nil
	}
	if name == DefaultName {
		return Default(), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownDispatcher, name)
}

// Register adds or replaces a named dispatcher.
func Register(name string, d Dispatcher) {
	mutex.Lock()
	defer mutex.Unlock()

	dispatchers[name] = d
}

// Unregister removes a named dispatcher. Values already constructed keep
// the dispatcher they resolved.
func Unregister(name string) {
	mutex.Lock()
	defer mutex.Unlock()

	delete(dispatchers, name)
}
