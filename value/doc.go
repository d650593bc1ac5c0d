// Package value provides Value, an observable container for a single value.
//
// A Value holds its current value, remembers whether one was ever set, and
// notifies three independent observer registries on every Set:
//
//   - immediate observers, dispatched once per accepted Set
//   - debounced observers, each with its own timer: a burst of Sets collapses
//     into one call carrying the last value, delay after the last Set
//   - throttled observers, each with its own cooldown: the first Set in a
//     window is delivered at once, the rest of the window is dropped
//
// Callbacks never run on the goroutine calling Set. They are handed to the
// dispatcher named in the config (the shared event loop by default), so Set
// never waits for observers and a panicking observer cannot disturb others.
//
// # Null safety
//
// A null-safe Value suppresses all three registries when the new value is
// falsy according to package truthy (nil, zero numbers, "", false, nil
// slices and maps, ...). The value is still stored and the Value still
// becomes initialized.
//
// # Late observers
//
// Registering on an initialized Value replays the current value to the new
// observer, subject to the null-safety rule. Immediate observers receive the
// replay synchronously, before Observe returns. Debounced and throttled
// observers receive it through their own wrapper, so a throttled observer
// registered on an initialized Value is called at once and starts in
// cooldown.
//
// # Example
//
//	count, _ := value.Of(5, config.DefaultValueConfig())
//	count.Observe(func(n int) { fmt.Println("count:", n) })
//	count.Set(10)
//	count.Mutate(func(n int) int { return n + 1 })
package value
