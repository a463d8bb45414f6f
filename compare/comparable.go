// Package compare defines the comparison contracts satisfied by tagged
// numeric values, together with small helpers for working with them
// generically.
package compare

// Comparable is a generic interface for types that can compare themselves for
// equality. Types implementing this interface must provide their own Equals
// method that determines whether two values are equal according to the type's
// semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Ordered extends Comparable with a strict ordering. Equals and LessThan are
// the two primitives an ordering is built from; every other comparison
// (greater-than, at-most, at-least) must be derived from these two so the
// full set stays mutually consistent.
type Ordered[T any] interface {
	Comparable[T]

	LessThan(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// Less reports whether a orders strictly before b, delegating to the LessThan
// method of the first argument.
func Less[T any](a Ordered[T], b T) bool {
	return a.LessThan(b)
}

// Min returns the smaller of a and b. When the two are equal, a is returned.
func Min[T Ordered[T]](a, b T) T {
	if b.LessThan(a) {
		return b
	}

	return a
}

// Max returns the larger of a and b. When the two are equal, a is returned.
func Max[T Ordered[T]](a, b T) T {
	if a.LessThan(b) {
		return b
	}

	return a
}

// Clamp limits value to the inclusive range [low, high].
// The result is unspecified when high orders before low.
func Clamp[T Ordered[T]](value, low, high T) T {
	if value.LessThan(low) {
		return low
	}

	if high.LessThan(value) {
		return high
	}

	return value
}
