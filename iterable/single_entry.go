package iterable

// SingleEntry is a vector of length n that is zero everywhere except at its
// last position, which holds e. The zero value of T must be the additive
// identity, as it is for fr.Element and the integer types.
type SingleEntry[T any] struct {
	e   T
	len int
}

// NewSingleEntry requires n >= 1: there is no last position otherwise.
func NewSingleEntry[T any](e T, n int) (SingleEntry[T], error) {
	if n < 1 {
		return SingleEntry[T]{}, invalidf("single entry stream of length %d", n)
	}
	return SingleEntry[T]{e: e, len: n}, nil
}

func (s SingleEntry[T]) Len() int {
	return s.len
}

func (s SingleEntry[T]) Iter() Iterator[T] {
	return &singleEntryIter[T]{e: s.e, left: s.len}
}

type singleEntryIter[T any] struct {
	e    T
	left int
}

func (it *singleEntryIter[T]) Next() bool {
	if it.left == 0 {
		return false
	}
	it.left--
	return true
}

func (it *singleEntryIter[T]) Value() T {
	if it.left == 0 {
		return it.e
	}
	var zero T
	return zero
}
