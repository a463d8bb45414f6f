package strong

import (
	"fmt"
	"hash"
	"reflect"

	"github.com/amp-labs/strongnum/hashing"
	"github.com/amp-labs/strongnum/numeric"
)

// UpdateHash implements hashing.Hashable by writing the underlying value
// into h as eight big-endian bytes. Integers hash by their two's-complement
// bit pattern and floats by their IEEE 754 bit pattern, so the digest depends
// only on the value, never on a text rendering. The tag contributes nothing:
// it does not exist at runtime.
func (v Value[Tag, T]) UpdateHash(h hash.Hash) error {
	kind := reflect.TypeOf(v.value).Kind()

	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return hashing.WriteInt64(h, int64(v.value))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return hashing.WriteUint64(h, uint64(v.value))
	case reflect.Float32, reflect.Float64:
		return hashing.WriteFloat64(h, float64(v.value))
	default:
		return fmt.Errorf("%w: %v", numeric.ErrNotNumeric, kind)
	}
}

var _ hashing.Hashable = Value[assertTag, uint32]{}
