// Package hashing lets values feed themselves into a hash.Hash so they can
// key caches and participate in content hashes. Numeric payloads are written
// as fixed-width big-endian bytes, so the digest depends on the value alone
// and not on any text rendering of it.
package hashing

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"hash"
	"math"
)

// HashFunc is a function that takes a Hashable object
// and returns a string representation of its hash.
// As an example, the Sha256 function is a HashFunc.
// This lets us talk about hash functions in a generic way.
type HashFunc func(hashable Hashable) (string, error)

// Hashable is an interface that allows an object to update
// a hash.Hash with its contents. This is useful for hashing
// objects so that they can be easily compared.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

// Sha256 returns the SHA256 hash of the given Hashable
// as a hex-encoded string. If the Hashable fails to
// update the hash, an error is returned.
func Sha256(hashable Hashable) (string, error) {
	h := sha256.New()

	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	bts := h.Sum(nil)

	return hex.EncodeToString(bts), nil
}

// WriteUint64 writes value into h as eight big-endian bytes.
func WriteUint64(h hash.Hash, value uint64) error {
	var buf [8]byte

	binary.BigEndian.PutUint64(buf[:], value)

	_, err := h.Write(buf[:])

	return err
}

// WriteInt64 writes value into h as eight big-endian bytes,
// using the two's-complement bit pattern of the value.
func WriteInt64(h hash.Hash, value int64) error {
	return WriteUint64(h, uint64(value))
}

// WriteFloat64 writes value into h as eight big-endian bytes,
// using the IEEE 754 bit pattern of the value.
func WriteFloat64(h hash.Hash, value float64) error {
	return WriteUint64(h, math.Float64bits(value))
}
