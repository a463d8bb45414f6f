package strong_test

import (
	"testing"

	"github.com/amp-labs/strongnum/strong"
	"pgregory.net/rapid"
)

// The algebraic laws below hold for every pair of values of the same
// instantiation, so they are checked property-style rather than with
// hand-picked tables.

// TestAddSubInverse_Property proves (a+b)-b == a. Integer addition wraps, but
// wrapping is still invertible, so the law holds across the whole int range.
func TestAddSubInverse_Property(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		a := strong.New[counter](rapid.Int().Draw(rt, "a"))
		b := strong.New[counter](rapid.Int().Draw(rt, "b"))

		if got := a.Add(b).Sub(b); !got.Equals(a) {
			rt.Fatalf("(%v+%v)-%v = %v, want %v", a, b, b, got, a)
		}
	})
}

// TestMulDivInverse_Property proves (a*b)/b == a for non-zero b, on a range
// small enough that the product cannot overflow.
func TestMulDivInverse_Property(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		a := strong.New[counter](rapid.IntRange(-1000, 1000).Draw(rt, "a"))

		divisor := rapid.IntRange(-1000, 1000).Draw(rt, "b")
		if divisor == 0 {
			rt.Skip("zero divisor")
		}

		b := strong.New[counter](divisor)

		if got := a.Mul(b).Div(b); !got.Equals(a) {
			rt.Fatalf("(%v*%v)/%v = %v, want %v", a, b, b, got, a)
		}
	})
}

// TestScaleCommutes_Property proves scalar*v == v*scalar.
func TestScaleCommutes_Property(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		v := strong.New[meters](rapid.Float64Range(-1e12, 1e12).Draw(rt, "v"))
		scalar := rapid.Float64Range(-1e12, 1e12).Draw(rt, "scalar")

		left := strong.Scale(scalar, v)
		right := v.MulBase(scalar)

		if !left.Equals(right) {
			rt.Fatalf("%v*%v = %v but %v*%v = %v", scalar, v, left, v, scalar, right)
		}
	})
}

// TestOrderingConsistency_Property proves trichotomy and that the derived
// comparisons agree with the two primitives they are built from.
func TestOrderingConsistency_Property(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		a := strong.New[meters](rapid.Float64Range(-1e12, 1e12).Draw(rt, "a"))
		b := strong.New[meters](rapid.Float64Range(-1e12, 1e12).Draw(rt, "b"))

		holds := 0
		for _, ok := range []bool{a.LessThan(b), a.Equals(b), a.GreaterThan(b)} {
			if ok {
				holds++
			}
		}

		if holds != 1 {
			rt.Fatalf("trichotomy violated for %v and %v", a, b)
		}

		if a.AtMost(b) == a.GreaterThan(b) {
			rt.Fatalf("AtMost must be the negation of GreaterThan for %v and %v", a, b)
		}

		if a.AtLeast(b) == a.LessThan(b) {
			rt.Fatalf("AtLeast must be the negation of LessThan for %v and %v", a, b)
		}

		if a.NotEquals(b) == a.Equals(b) {
			rt.Fatalf("NotEquals must be the negation of Equals for %v and %v", a, b)
		}
	})
}

// TestPostIncrDecr_Property proves the post-forms return the prior value and
// move the instance by exactly one.
func TestPostIncrDecr_Property(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		start := rapid.IntRange(-1_000_000, 1_000_000).Draw(rt, "start")

		v := strong.New[counter](start)
		prior := v.PostIncr()

		if prior.Base() != start || v.Base() != start+1 {
			rt.Fatalf("PostIncr from %d: prior %d, now %d", start, prior.Base(), v.Base())
		}

		v = strong.New[counter](start)
		prior = v.PostDecr()

		if prior.Base() != start || v.Base() != start-1 {
			rt.Fatalf("PostDecr from %d: prior %d, now %d", start, prior.Base(), v.Base())
		}
	})
}

// TestTextRoundTrip_Property proves format-then-parse is the identity,
// matching the underlying type's own round-trip guarantee.
func TestTextRoundTrip_Property(t *testing.T) {
	t.Parallel()

	t.Run("int", func(t *testing.T) {
		t.Parallel()

		rapid.Check(t, func(rt *rapid.T) {
			v := strong.New[counter](rapid.Int().Draw(rt, "v"))

			parsed, err := strong.Parse[counter, int](v.String())
			if err != nil {
				rt.Fatalf("parsing %q: %v", v.String(), err)
			}

			if !parsed.Equals(v) {
				rt.Fatalf("round trip of %v through %q yielded %v", v, v.String(), parsed)
			}
		})
	})

	t.Run("float64", func(t *testing.T) {
		t.Parallel()

		rapid.Check(t, func(rt *rapid.T) {
			v := strong.New[meters](rapid.Float64Range(-1e300, 1e300).Draw(rt, "v"))

			parsed, err := strong.Parse[meters, float64](v.String())
			if err != nil {
				rt.Fatalf("parsing %q: %v", v.String(), err)
			}

			if !parsed.Equals(v) {
				rt.Fatalf("round trip of %v through %q yielded %v", v, v.String(), parsed)
			}
		})
	})
}
