package kzg

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuwen01/gemini/iterable"
)

func TestDummyCommitterKey(t *testing.T) {
	ck, err := NewDummyCommitterKey(9)
	require.NoError(t, err)
	assert.Equal(t, 8, ck.Degree())
	assert.Len(t, ck.PowersOfG2, 4)

	_, _, g1, _ := bn254.Generators()
	powers := iterable.Collect(ck.PowersOfG)
	require.Len(t, powers, 9)
	for i := range powers {
		assert.True(t, powers[i].Equal(&g1))
		assert.True(t, powers[i].IsOnCurve())
	}

	_, err = NewDummyCommitterKey(0)
	assert.Error(t, err)
}
