package iterable

// Constant repeats one element a fixed number of times.
type Constant[T any] struct {
	e   T
	len int
}

// NewConstant returns the stream yielding e exactly n times.
func NewConstant[T any](e T, n int) (Constant[T], error) {
	if n < 0 {
		return Constant[T]{}, invalidf("constant stream of length %d", n)
	}
	return Constant[T]{e: e, len: n}, nil
}

func (c Constant[T]) Len() int {
	return c.len
}

func (c Constant[T]) Iter() Iterator[T] {
	return &constantIter[T]{e: c.e, left: c.len}
}

type constantIter[T any] struct {
	e    T
	left int
}

func (it *constantIter[T]) Next() bool {
	if it.left == 0 {
		return false
	}
	it.left--
	return true
}

func (it *constantIter[T]) Value() T {
	return it.e
}
