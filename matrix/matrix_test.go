package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElement(t *testing.T) {
	e := NewElement("v", 3)
	assert.False(t, e.IsEOL())
	v, col, ok := e.Entry()
	assert.True(t, ok)
	assert.Equal(t, "v", v)
	assert.Equal(t, 3, col)
	assert.Equal(t, "(v, 3)", e.String())

	_, col, _ = e.Shift(10).Entry()
	assert.Equal(t, 13, col)
	_, col, _ = e.Entry()
	assert.Equal(t, 3, col)

	eol := EOL[string]()
	assert.True(t, eol.IsEOL())
	_, _, ok = eol.Entry()
	assert.False(t, ok)
	assert.Equal(t, eol, eol.Shift(5))
	assert.Equal(t, "EOL", eol.String())
}

func TestSparse(t *testing.T) {
	// 3x2
	m := Sparse[int]{
		{{Col: 1, Val: 1}},
		{},
		{{Col: 0, Val: 2}, {Col: 1, Val: 3}},
	}
	assert.Equal(t, 3, m.NonZero())
	require.NoError(t, m.Validate(2))
	assert.Error(t, m.Validate(1))

	mt := m.Transpose(2)
	assert.Equal(t, Sparse[int]{
		{{Col: 2, Val: 2}},
		{{Col: 0, Val: 1}, {Col: 2, Val: 3}},
	}, mt)
	assert.Equal(t, m, mt.Transpose(3).withEmptyRows())

	assert.Equal(t, []Element[int]{
		EOL[int](), NewElement(1, 1),
		EOL[int](),
		EOL[int](), NewElement(3, 1), NewElement(2, 0),
	}, m.Stream())
	assert.Empty(t, Sparse[int]{}.Stream())
}

// withEmptyRows replaces nil rows by empty ones so transposed matrices
// compare equal to literals.
func (m Sparse[T]) withEmptyRows() Sparse[T] {
	for i := range m {
		if m[i] == nil {
			m[i] = []Term[T]{}
		}
	}
	return m
}
