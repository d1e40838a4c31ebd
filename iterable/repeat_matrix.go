package iterable

import (
	"math"

	"github.com/yuwen01/gemini/matrix"
)

// RepeatMatrix streams a block-diagonal matrix made of repeat copies of one
// sparse block. Copy k has its columns shifted by k*blockSize.
//
// The block is read from its last item to its first, so it must be given in
// the layout produced by matrix.Sparse.Stream. Copies are streamed from the
// last one (offset (repeat-1)*blockSize) down to the original (offset 0):
// the whole matrix comes out from its last row to its first.
type RepeatMatrix[T any] struct {
	m         []matrix.Element[T]
	repeat    int
	blockSize int
}

// NewRepeatMatrix copies m. When the block is repeated, every entry column
// must be below blockSize, otherwise copies would overlap.
func NewRepeatMatrix[T any](m []matrix.Element[T], repeat, blockSize int) (RepeatMatrix[T], error) {
	if repeat < 0 || blockSize < 0 {
		return RepeatMatrix[T]{}, invalidf("repeat %d, block size %d", repeat, blockSize)
	}
	if repeat > 0 && len(m) > math.MaxInt/repeat {
		return RepeatMatrix[T]{}, invalidf("%d items repeated %d times overflows", len(m), repeat)
	}
	maxCol := 0
	for i, e := range m {
		_, col, ok := e.Entry()
		if !ok {
			continue
		}
		if col < 0 || (repeat > 1 && col >= blockSize) {
			return RepeatMatrix[T]{}, invalidf("item %d: column %d does not fit block size %d", i, col, blockSize)
		}
		maxCol = max(maxCol, col)
	}
	// the last copy shifts columns by (repeat-1)*blockSize
	if repeat > 1 && blockSize > 0 && repeat-1 > (math.MaxInt-maxCol)/blockSize {
		return RepeatMatrix[T]{}, invalidf("repeat %d, block size %d: shifted columns overflow", repeat, blockSize)
	}
	return RepeatMatrix[T]{
		m:         append([]matrix.Element[T](nil), m...),
		repeat:    repeat,
		blockSize: blockSize,
	}, nil
}

func (r RepeatMatrix[T]) Len() int {
	return len(r.m) * r.repeat
}

func (r RepeatMatrix[T]) Iter() Iterator[matrix.Element[T]] {
	if len(r.m) == 0 {
		return &repeatMatrixIter[T]{}
	}
	return &repeatMatrixIter[T]{
		m:         r.m,
		repeat:    r.repeat,
		blockSize: r.blockSize,
	}
}

// repeat counts the copies still to start; once a copy is started it is also
// the offset multiplier of that copy. count is the number of items of the
// current copy still to read, 0 when the copy is exhausted.
type repeatMatrixIter[T any] struct {
	m         []matrix.Element[T]
	repeat    int
	count     int
	blockSize int
	cur       matrix.Element[T]
}

func (it *repeatMatrixIter[T]) Next() bool {
	if it.count == 0 && it.repeat == 0 {
		return false
	}
	if it.count == 0 {
		it.count = len(it.m)
		it.repeat--
	}
	it.count--
	it.cur = it.m[it.count].Shift(it.repeat * it.blockSize)
	return true
}

func (it *repeatMatrixIter[T]) Value() matrix.Element[T] {
	return it.cur
}
