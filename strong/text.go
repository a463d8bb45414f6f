package strong

import (
	"encoding"
	"fmt"

	"github.com/amp-labs/strongnum/numeric"
)

// String formats the value exactly as the underlying type would format
// itself, with no wrapper-specific decoration.
func (v Value[Tag, T]) String() string {
	return numeric.Format(v.value)
}

// MarshalText implements encoding.TextMarshaler. The output is the same text
// String returns, so a Value embeds in any text-based encoding as a plain
// scalar.
func (v Value[Tag, T]) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting exactly the
// syntax the underlying type accepts. Parse errors are strconv's, unchanged.
func (v *Value[Tag, T]) UnmarshalText(text []byte) error {
	parsed, err := numeric.Parse[T](string(text))
	if err != nil {
		return err
	}

	v.value = parsed

	return nil
}

// Parse reads a tagged value from its text representation. It is the parsing
// counterpart of New.
func Parse[Tag any, T numeric.Number](text string) (Value[Tag, T], error) {
	parsed, err := numeric.Parse[T](text)

	return Value[Tag, T]{value: parsed}, err
}

var (
	_ fmt.Stringer             = Value[assertTag, int]{}
	_ encoding.TextMarshaler   = Value[assertTag, int]{}
	_ encoding.TextUnmarshaler = (*Value[assertTag, int])(nil)
)
