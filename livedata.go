// Package livedata is the entry point for the livedata primitives: an
// observable value (package value) and an observable validity map (package
// validity). The constructors here use the default configuration: no
// telemetry and the shared event loop from package dispatch.
//
// Use the value and validity packages directly for custom configuration.
package livedata

import (
	"github.com/tailored-agentic-units/livedata/config"
	"github.com/tailored-agentic-units/livedata/validity"
	"github.com/tailored-agentic-units/livedata/value"
)

// Version of the livedata module.
const Version = "1.0.0"

// NewValue creates an uninitialized Value.
func NewValue[T any](nullSafe bool) *value.Value[T] {
	cfg := config.DefaultValueConfig()
	cfg.NullSafe = nullSafe
	return must(value.New[T](cfg))
}

// Make creates a Value holding v.
func Make[T any](v T, nullSafe bool) *value.Value[T] {
	cfg := config.DefaultValueConfig()
	cfg.NullSafe = nullSafe
	return must(value.Of(v, cfg))
}

// NewValidityMap creates a validity Map with each of keys set to false.
func NewValidityMap[K comparable](keys ...K) *validity.Map[K] {
	return must(validity.New(config.DefaultValidityConfig(), keys...))
}

// must panics on errors that the default configuration cannot produce.
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
