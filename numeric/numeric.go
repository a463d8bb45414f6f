// Package numeric provides type constraints covering the built-in numeric
// types, together with a text codec that formats and parses values of any
// constrained type the way the built-in type itself would.
package numeric

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"golang.org/x/exp/constraints"
)

// ErrNotNumeric is returned when a value's kind falls outside the numeric
// kinds. It is unreachable through the exported generic functions, whose
// constraints admit only numeric types, but is reported rather than panicked
// so callers see a regular error if the invariant is ever broken.
var ErrNotNumeric = errors.New("not a numeric kind")

type (
	// Signed is any built-in signed integer type.
	Signed interface {
		constraints.Signed
	}

	// Unsigned is any built-in unsigned integer type.
	Unsigned interface {
		constraints.Unsigned
	}

	// Integer is any built-in integer type, signed or unsigned.
	Integer interface {
		constraints.Integer
	}

	// Float is any built-in floating-point type.
	Float interface {
		constraints.Float
	}

	// Number is any built-in integer or floating-point type.
	Number interface {
		constraints.Integer | constraints.Float
	}
)

// Format renders value as text exactly the way the underlying built-in type
// renders: integers in base 10, floats in the shortest representation that
// parses back to the same value.
func Format[T Number](value T) string {
	return fmt.Sprintf("%v", value)
}

// Parse reads a value of type T from its text representation. The accepted
// syntax is exactly what the underlying built-in type accepts: base-10
// integers for integer types, Go floating-point syntax for float types.
// Errors come straight from strconv, as they would when parsing the raw type.
func Parse[T Number](text string) (T, error) {
	var zero T

	typ := reflect.TypeOf(zero)

	switch typ.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		parsed, err := strconv.ParseInt(text, 10, typ.Bits())

		return T(parsed), err
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		parsed, err := strconv.ParseUint(text, 10, typ.Bits())

		return T(parsed), err
	case reflect.Float32, reflect.Float64:
		parsed, err := strconv.ParseFloat(text, typ.Bits())

		return T(parsed), err
	default:
		return zero, fmt.Errorf("%w: %v", ErrNotNumeric, typ.Kind())
	}
}
