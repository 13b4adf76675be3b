package hyperloglog

import (
	"testing"

	"github.com/arashbm/hyperloglog/hash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Merge_RejectsMismatchedSeeds(t *testing.T) {
	a, err := NewDefault[uint64](11, 20)
	require.NoError(t, err)
	b, err := New[uint64](11, 20, false, 1, a.hasher)
	require.NoError(t, err)

	err = a.Merge(b)
	assert.ErrorIs(t, err, ErrIncompatibleSeeds)
}

func Test_Merge_SparseSparse(t *testing.T) {
	a, err := NewDefault[uint64](18, 25)
	require.NoError(t, err)
	b, err := NewDefault[uint64](18, 25)
	require.NoError(t, err)

	for i := uint64(1); i <= 20; i++ {
		a.Insert(i)
	}
	for i := uint64(6); i <= 25; i++ {
		b.Insert(i)
	}

	require.NoError(t, a.Merge(b))

	e := a.Estimate()
	assert.Greater(t, e, 24.0)
	assert.Less(t, e, 26.0)
}

func Test_Merge_SelfMergeIsNoOp(t *testing.T) {
	a, err := NewDefault[uint64](18, 25)
	require.NoError(t, err)
	for i := uint64(1); i <= 100; i++ {
		a.Insert(i)
	}

	before := a.Estimate()
	require.NoError(t, a.Merge(a))
	after := a.Estimate()

	assert.Equal(t, before, after)
}

func Test_Merge_SparseIntoDense(t *testing.T) {
	dense, err := New[uint64](11, 20, true, 0x9E3779B97F4A7C15, hash.Murmur3[uint64]{})
	require.NoError(t, err)
	for i := uint64(1); i <= 50; i++ {
		dense.Insert(i)
	}

	sparse, err := NewDefault[uint64](11, 20)
	require.NoError(t, err)
	for i := uint64(40); i <= 80; i++ {
		sparse.Insert(i)
	}

	require.NoError(t, dense.Merge(sparse))
	assert.False(t, dense.IsSparse())

	e := dense.Estimate()
	assert.Greater(t, e, 70.0)
	assert.Less(t, e, 90.0)
}

func Test_Merge_DenseIntoSparsePromotesReceiver(t *testing.T) {
	sparse, err := NewDefault[uint64](11, 20)
	require.NoError(t, err)
	for i := uint64(1); i <= 10; i++ {
		sparse.Insert(i)
	}

	dense, err := New[uint64](11, 20, true, 0x9E3779B97F4A7C15, hash.Murmur3[uint64]{})
	require.NoError(t, err)
	for i := uint64(5); i <= 30; i++ {
		dense.Insert(i)
	}

	require.NoError(t, sparse.Merge(dense))
	assert.False(t, sparse.IsSparse())
}
