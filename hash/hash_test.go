package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestXXHashDeterministicAndSeedSensitive(t *testing.T) {
	h := XXHash[string]{}
	a := h.Hash("alpha", 1)
	b := h.Hash("alpha", 1)
	c := h.Hash("alpha", 2)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestFarmHashDeterministicAndSeedSensitive(t *testing.T) {
	h := FarmHash[string]{}
	a := h.Hash("alpha", 1)
	b := h.Hash("alpha", 1)
	c := h.Hash("alpha", 2)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestHashersDisagree(t *testing.T) {
	// different hash families shouldn't collide on a simple input; this
	// isn't a correctness proof, just a smoke check that the adapters
	// aren't accidentally all wired to the same function.
	m := Murmur3[string]{}.Hash("alpha", DefaultSeed)
	x := XXHash[string]{}.Hash("alpha", DefaultSeed)
	f := FarmHash[string]{}.Hash("alpha", DefaultSeed)

	assert.NotEqual(t, m, x)
	assert.NotEqual(t, m, f)
	assert.NotEqual(t, x, f)
}

func TestEncodeBytesIntegerVariants(t *testing.T) {
	assert.Equal(t, encodeBytes(int64(42)), encodeBytes(int(42)))
	assert.Equal(t, encodeBytes(uint64(42)), encodeBytes(uint(42)))
}
