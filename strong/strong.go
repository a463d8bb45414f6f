// Package strong provides a generic wrapper that gives a numeric value a
// distinct compile-time identity, so that semantically different quantities
// sharing the same representation cannot be mixed by accident.
//
// A tag is any marker type, usually an empty struct. Each (tag, underlying)
// pair produces its own named type: two values wrapped with different tags
// cannot be assigned, added, or compared to one another, and the type checker
// rejects the attempt before the program runs. Nothing is stored or checked
// at runtime; the wrapper holds exactly the one underlying value.
//
//	type meters struct{}
//	type seconds struct{}
//
//	type Distance = strong.Value[meters, float64]
//	type Duration = strong.Value[seconds, float64]
//
//	d := strong.New[meters](3.0)
//	t := strong.New[seconds](3.0)
//
//	d.Add(strong.New[meters](4.0)) // fine
//	d.Add(t)                       // does not compile
//	var raw float64 = d            // does not compile; use d.Base()
//
// Construction goes through New and extraction through Base, in both cases
// deliberately: the underlying field is unexported, so there is no implicit
// path between the wrapper and the raw type in either direction.
package strong

import (
	"github.com/amp-labs/strongnum/numeric"
)

// Value binds a single value of the underlying type T to the phantom marker
// type Tag. The tag exists only in the type system; a Value is exactly as
// wide as its underlying value and copies like one.
type Value[Tag any, T numeric.Number] struct {
	value T
}

// New wraps raw in a Value carrying the given tag. This is the only way to
// construct a Value from a raw number.
func New[Tag any, T numeric.Number](raw T) Value[Tag, T] {
	return Value[Tag, T]{value: raw}
}

// Base returns the underlying value. This is the only way back to the raw
// type, so every crossing between tagged and untagged code is visible at the
// call site.
func (v Value[Tag, T]) Base() T {
	return v.value
}

// BaseRef returns a pointer to the underlying value, allowing it to be
// mutated in place.
func (v *Value[Tag, T]) BaseRef() *T {
	return &v.value
}

// AddAssign adds rhs to the receiver and returns the receiver.
func (v *Value[Tag, T]) AddAssign(rhs Value[Tag, T]) *Value[Tag, T] {
	v.value += rhs.value

	return v
}

// Add returns the sum of v and rhs. Defined as copy, AddAssign, return, so
// the two forms cannot disagree.
func (v Value[Tag, T]) Add(rhs Value[Tag, T]) Value[Tag, T] {
	v.AddAssign(rhs)

	return v
}

// SubAssign subtracts rhs from the receiver and returns the receiver.
func (v *Value[Tag, T]) SubAssign(rhs Value[Tag, T]) *Value[Tag, T] {
	v.value -= rhs.value

	return v
}

// Sub returns the difference of v and rhs.
func (v Value[Tag, T]) Sub(rhs Value[Tag, T]) Value[Tag, T] {
	v.SubAssign(rhs)

	return v
}

// MulAssign multiplies the receiver by rhs and returns the receiver.
func (v *Value[Tag, T]) MulAssign(rhs Value[Tag, T]) *Value[Tag, T] {
	v.value *= rhs.value

	return v
}

// Mul returns the product of v and rhs.
func (v Value[Tag, T]) Mul(rhs Value[Tag, T]) Value[Tag, T] {
	v.MulAssign(rhs)

	return v
}

// DivAssign divides the receiver by rhs and returns the receiver. Division
// behaves exactly as it does on the underlying type, including integer
// truncation and division by zero.
func (v *Value[Tag, T]) DivAssign(rhs Value[Tag, T]) *Value[Tag, T] {
	v.value /= rhs.value

	return v
}

// Div returns the quotient of v and rhs.
func (v Value[Tag, T]) Div(rhs Value[Tag, T]) Value[Tag, T] {
	v.DivAssign(rhs)

	return v
}

// MulBaseAssign scales the receiver by the raw scalar and returns the
// receiver.
func (v *Value[Tag, T]) MulBaseAssign(raw T) *Value[Tag, T] {
	v.value *= raw

	return v
}

// MulBase returns v scaled by the raw scalar.
func (v Value[Tag, T]) MulBase(raw T) Value[Tag, T] {
	v.MulBaseAssign(raw)

	return v
}

// DivBaseAssign divides the receiver by the raw scalar and returns the
// receiver.
func (v *Value[Tag, T]) DivBaseAssign(raw T) *Value[Tag, T] {
	v.value /= raw

	return v
}

// DivBase returns v divided by the raw scalar.
//
// The mirrored operation, raw divided by a tagged value, is deliberately not
// provided: it is not scalar multiplication. If the tag stands for a physical
// unit, raw/v carries the inverse unit, which this type cannot represent.
// Callers who want it must extract explicitly: raw / v.Base().
func (v Value[Tag, T]) DivBase(raw T) Value[Tag, T] {
	v.DivBaseAssign(raw)

	return v
}

// Scale returns v scaled by the raw scalar, with the scalar on the left.
// Scalar multiplication commutes: Scale(raw, v) equals v.MulBase(raw).
func Scale[Tag any, T numeric.Number](raw T, v Value[Tag, T]) Value[Tag, T] {
	return v.MulBase(raw)
}

// Incr increments the underlying value and returns the receiver.
func (v *Value[Tag, T]) Incr() *Value[Tag, T] {
	v.value++

	return v
}

// PostIncr increments the underlying value and returns a copy of the value
// as it was before the increment.
func (v *Value[Tag, T]) PostIncr() Value[Tag, T] {
	prior := *v

	v.Incr()

	return prior
}

// Decr decrements the underlying value and returns the receiver.
func (v *Value[Tag, T]) Decr() *Value[Tag, T] {
	v.value--

	return v
}

// PostDecr decrements the underlying value and returns a copy of the value
// as it was before the decrement.
func (v *Value[Tag, T]) PostDecr() Value[Tag, T] {
	prior := *v

	v.Decr()

	return prior
}
