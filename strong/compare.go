package strong

import (
	"github.com/amp-labs/strongnum/compare"
)

// Equals reports whether v and rhs hold the same underlying value. Together
// with LessThan it is one of the two comparison primitives; every other
// comparison method is derived from these two, never from the underlying
// operators directly, so the full set stays mutually consistent.
func (v Value[Tag, T]) Equals(rhs Value[Tag, T]) bool {
	return v.value == rhs.value
}

// LessThan reports whether v orders strictly before rhs.
func (v Value[Tag, T]) LessThan(rhs Value[Tag, T]) bool {
	return v.value < rhs.value
}

// NotEquals is the negation of Equals.
func (v Value[Tag, T]) NotEquals(rhs Value[Tag, T]) bool {
	return !v.Equals(rhs)
}

// GreaterThan reports whether v orders strictly after rhs.
func (v Value[Tag, T]) GreaterThan(rhs Value[Tag, T]) bool {
	return rhs.LessThan(v)
}

// AtMost reports whether v orders before or equal to rhs.
func (v Value[Tag, T]) AtMost(rhs Value[Tag, T]) bool {
	return !rhs.LessThan(v)
}

// AtLeast reports whether v orders after or equal to rhs.
func (v Value[Tag, T]) AtLeast(rhs Value[Tag, T]) bool {
	return !v.LessThan(rhs)
}

// Compare returns -1, 0, or 1 depending on whether v orders before, equal
// to, or after rhs. It makes Value usable with slices.SortFunc and friends.
func (v Value[Tag, T]) Compare(rhs Value[Tag, T]) int {
	switch {
	case v.LessThan(rhs):
		return -1
	case rhs.LessThan(v):
		return 1
	default:
		return 0
	}
}

// EqualsBase reports whether the underlying value equals the raw value.
//
// Comparison against raw values is allowed for every operator, in both
// effective operand orders, through these named methods. Spelling out the
// method name keeps the crossing between tagged and raw values as deliberate
// as extraction through Base is.
func (v Value[Tag, T]) EqualsBase(raw T) bool {
	return v.value == raw
}

// LessThanBase reports whether the underlying value orders strictly before
// the raw value.
func (v Value[Tag, T]) LessThanBase(raw T) bool {
	return v.value < raw
}

// NotEqualsBase is the negation of EqualsBase.
func (v Value[Tag, T]) NotEqualsBase(raw T) bool {
	return !v.EqualsBase(raw)
}

// GreaterThanBase reports whether the underlying value orders strictly after
// the raw value.
func (v Value[Tag, T]) GreaterThanBase(raw T) bool {
	return raw < v.value
}

// AtMostBase reports whether the underlying value orders before or equal to
// the raw value.
func (v Value[Tag, T]) AtMostBase(raw T) bool {
	return !v.GreaterThanBase(raw)
}

// AtLeastBase reports whether the underlying value orders after or equal to
// the raw value.
func (v Value[Tag, T]) AtLeastBase(raw T) bool {
	return !v.LessThanBase(raw)
}

// assertTag exists only for the compile-time interface checks below.
type assertTag struct{}

var (
	_ compare.Comparable[Value[assertTag, int]]  = Value[assertTag, int]{}
	_ compare.Ordered[Value[assertTag, float64]] = Value[assertTag, float64]{}
)
