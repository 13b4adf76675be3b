package hash

import "github.com/cespare/xxhash"

// XXHash is a pluggable Hasher backed by xxHash64. The xxhash package has
// no native seed parameter, so seed is mixed in by prepending its 8 little
// endian bytes to the encoded value before hashing — two sketches built
// with different seeds still get materially different hash streams even
// though the algorithm's own seeding input isn't exposed.
type XXHash[T any] struct{}

func (XXHash[T]) Hash(v T, seed uint64) uint64 {
	data := encodeBytes(v)
	buf := make([]byte, 8+len(data))
	copy(buf, uintBytes(seed))
	copy(buf[8:], data)
	return xxhash.Sum64(buf)
}
