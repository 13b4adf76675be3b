package hash

import farm "github.com/dgryski/go-farm"

// FarmHash is a pluggable Hasher backed by Google's FarmHash, via its
// native seeded entry point.
type FarmHash[T any] struct{}

func (FarmHash[T]) Hash(v T, seed uint64) uint64 {
	return farm.Hash64WithSeed(encodeBytes(v), seed)
}
