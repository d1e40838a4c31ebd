package iterable

import (
	"math"

	"github.com/yuwen01/gemini/matrix"
)

// DiagonalMatrix streams the n×n matrix e·I from its last row to its first.
// Row i contributes Element(e, i) followed by EOL, so the stream has 2n items.
type DiagonalMatrix[T any] struct {
	e T
	n int
}

func NewDiagonalMatrix[T any](e T, n int) (DiagonalMatrix[T], error) {
	if n < 0 || n > math.MaxInt/2 {
		return DiagonalMatrix[T]{}, invalidf("diagonal matrix with %d rows", n)
	}
	return DiagonalMatrix[T]{e: e, n: n}, nil
}

func (d DiagonalMatrix[T]) Len() int {
	return 2 * d.n
}

func (d DiagonalMatrix[T]) Iter() Iterator[matrix.Element[T]] {
	return &diagonalIter[T]{e: d.e, k: 2 * d.n}
}

// k counts down the items left. An odd k closes row (k-1)/2, an even k
// emits the diagonal entry of row k/2-1.
type diagonalIter[T any] struct {
	e   T
	k   int
	cur matrix.Element[T]
}

func (it *diagonalIter[T]) Next() bool {
	if it.k == 0 {
		return false
	}
	if it.k%2 == 1 {
		it.k--
		it.cur = matrix.EOL[T]()
	} else {
		it.k--
		it.cur = matrix.NewElement(it.e, it.k>>1)
	}
	return true
}

func (it *diagonalIter[T]) Value() matrix.Element[T] {
	return it.cur
}
