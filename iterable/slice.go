package iterable

// Slice streams a borrowed slice from the first item to the last.
type Slice[T any] []T

func (s Slice[T]) Len() int {
	return len(s)
}

func (s Slice[T]) Iter() Iterator[T] {
	return &sliceIter[T]{s: s, i: -1}
}

type sliceIter[T any] struct {
	s []T
	i int
}

func (it *sliceIter[T]) Next() bool {
	if it.i+1 >= len(it.s) {
		it.i = len(it.s)
		return false
	}
	it.i++
	return true
}

func (it *sliceIter[T]) Value() T {
	return it.s[it.i]
}

// Reversed streams a borrowed slice from the last item to the first.
// Combined with matrix.Sparse.Stream it yields a matrix from its last row.
type Reversed[T any] []T

func (s Reversed[T]) Len() int {
	return len(s)
}

func (s Reversed[T]) Iter() Iterator[T] {
	return &reversedIter[T]{s: s, i: len(s)}
}

type reversedIter[T any] struct {
	s []T
	i int
}

func (it *reversedIter[T]) Next() bool {
	if it.i == 0 {
		return false
	}
	it.i--
	return true
}

func (it *reversedIter[T]) Value() T {
	return it.s[it.i]
}
