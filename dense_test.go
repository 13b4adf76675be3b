package hyperloglog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_DenseRepr_SetIfGreater_OnlyRaises(t *testing.T) {
	pr, err := newParams(4, 10)
	require.NoError(t, err)

	d := newDenseRepr(pr)
	d.setIfGreater(0, 5)
	assert.EqualValues(t, 5, d.registers[0])

	d.setIfGreater(0, 3)
	assert.EqualValues(t, 5, d.registers[0])

	d.setIfGreater(0, 9)
	assert.EqualValues(t, 9, d.registers[0])
}

func Test_DenseRepr_Merge_IsElementwiseMax(t *testing.T) {
	pr, err := newParams(4, 10)
	require.NoError(t, err)

	a := newDenseRepr(pr)
	b := newDenseRepr(pr)

	a.setIfGreater(0, 3)
	a.setIfGreater(1, 9)
	b.setIfGreater(0, 7)
	b.setIfGreater(1, 2)

	a.merge(b)

	assert.EqualValues(t, 7, a.registers[0])
	assert.EqualValues(t, 9, a.registers[1])
}

func Test_DenseRepr_SelfMerge_IsNoOp(t *testing.T) {
	pr, err := newParams(4, 10)
	require.NoError(t, err)

	a := newDenseRepr(pr)
	a.setIfGreater(0, 5)
	before := append([]byte(nil), a.registers...)

	a.merge(a)

	assert.Equal(t, before, a.registers)
}

func Test_DenseRepr_Clone_IsIndependent(t *testing.T) {
	pr, err := newParams(4, 10)
	require.NoError(t, err)

	a := newDenseRepr(pr)
	a.setIfGreater(0, 5)

	clone := a.clone()
	clone.registers[0] = 1

	assert.EqualValues(t, 5, a.registers[0])
}
