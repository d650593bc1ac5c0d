// Package truthy defines when a Go value counts as "no value". Null-safe
// values suppress notifications for such values, and validity maps coerce
// arbitrary inputs to strict booleans with the same rule.
//
// The following are falsy:
//   - untyped nil
//   - false
//   - zero of every integer, unsigned, float and complex kind, and float NaN
//   - the empty string
//   - nil pointers, maps, slices, channels, funcs and interfaces
//
// A value implementing Truther decides for itself. Everything else, including
// non-nil empty slices and maps and any struct, is truthy.
package truthy

import (
	"math"
	"reflect"
)

// Truther lets a type override the default rule.
type Truther interface {
	Truthy() bool
}

// Of reports whether v is truthy.
func Of(v any) bool {
	if v == nil {
		return false
	}

	rv := reflect.ValueOf(v)
	if t, ok := v.(Truther); ok {
		if rv.Kind() == reflect.Pointer && rv.IsNil() {
			return false
		}
		return t.Truthy()
	}

	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Complex64, reflect.Complex128:
		return rv.Complex() != 0
	case reflect.String:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return !rv.IsNil()
	default:
		return true
	}
}
