package checker

import (
	"context"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuwen01/gemini/circuits/cubic"
	"github.com/yuwen01/gemini/iterable"
	"github.com/yuwen01/gemini/matrix"
	"github.com/yuwen01/gemini/relation"
)

func compileCubic(t *testing.T, x uint64) *relation.R1CS {
	t.Helper()
	r, err := relation.Compile(&cubic.Circuit{}, cubic.Assignment(x))
	require.NoError(t, err)
	return r
}

func TestCheckDummy(t *testing.T) {
	for _, n := range []int{1, 2, 17} {
		s, err := relation.Dummy(n)
		require.NoError(t, err)
		assert.NoError(t, CheckStream(context.Background(), s))
	}
	s, err := relation.DummyFromSeed(8, []byte("checker"))
	require.NoError(t, err)
	assert.NoError(t, CheckStream(context.Background(), s))
}

func TestCheckCubic(t *testing.T) {
	r := compileCubic(t, 7)
	assert.NoError(t, CheckStream(context.Background(), r.Stream()))
}

func TestCheckRepeat(t *testing.T) {
	r := compileCubic(t, 2)
	zs := make([][]fr.Element, 4)
	for k := range zs {
		zs[k] = compileCubic(t, uint64(10+k)).Z
	}
	s, err := relation.Repeat(r, len(zs), zs)
	require.NoError(t, err)
	assert.NoError(t, CheckStream(context.Background(), s))

	bad := make([]fr.Element, len(zs[2]))
	copy(bad, zs[2])
	bad[len(bad)-1].SetUint64(1)
	zs[2] = bad
	s, err = relation.Repeat(r, len(zs), zs)
	require.NoError(t, err)
	assert.ErrorIs(t, CheckStream(context.Background(), s), ErrUnsatisfied)
}

func TestCheckWrongZ(t *testing.T) {
	s, err := relation.Dummy(5)
	require.NoError(t, err)
	z := iterable.Collect(s.Z)
	z[3].Double(&z[3])
	s.Z = iterable.Slice[fr.Element](z)
	assert.ErrorIs(t, CheckStream(context.Background(), s), ErrUnsatisfied)
}

func TestCheckLengthMismatch(t *testing.T) {
	s, err := relation.Dummy(5)
	require.NoError(t, err)
	s.ZA, err = iterable.WithLen(s.ZA, 6)
	require.NoError(t, err)
	assert.ErrorIs(t, CheckStream(context.Background(), s), iterable.ErrLengthMismatch)
}

func TestCheckCanceled(t *testing.T) {
	s, err := relation.Dummy(5)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, CheckStream(ctx, s), context.Canceled)
}

func TestEval(t *testing.T) {
	e := fr.NewElement
	// [1 2 0]
	// [0 0 3]
	m := matrix.Sparse[fr.Element]{
		{{Col: 0, Val: e(1)}, {Col: 1, Val: e(2)}},
		{{Col: 2, Val: e(3)}},
	}
	z := []fr.Element{e(1), e(2), e(3)}
	want := []fr.Element{e(5), e(9)}
	ctx := context.Background()

	rowMaj := iterable.Reversed[matrix.Element[fr.Element]](m.Stream())
	got, err := EvalRowMajor(ctx, rowMaj, z, 2)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	colMaj := iterable.Reversed[matrix.Element[fr.Element]](m.Transpose(3).Stream())
	got, err = EvalColMajor(ctx, colMaj, z, 2)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = EvalRowMajor(ctx, rowMaj, z, 3)
	assert.ErrorIs(t, err, ErrMalformedStream)
	_, err = EvalRowMajor(ctx, rowMaj, z, 1)
	assert.ErrorIs(t, err, ErrMalformedStream)
	_, err = EvalColMajor(ctx, colMaj, z[:2], 2)
	assert.ErrorIs(t, err, ErrMalformedStream)
	_, err = EvalRowMajor(ctx, rowMaj, z[:2], 2)
	assert.ErrorIs(t, err, ErrMalformedStream)
}
