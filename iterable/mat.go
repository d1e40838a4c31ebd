package iterable

// Mat reports a caller-chosen length for a wrapped stream. Iter is delegated
// untouched, so a full traversal still yields whatever the wrapped stream
// yields: when the override differs from the true count the wrapper
// deliberately breaks the Len contract, and it is up to the caller to keep
// the two consistent (see Verify).
type Mat[T any] struct {
	s   Iterable[T]
	len int
}

func WithLen[T any](s Iterable[T], n int) (Mat[T], error) {
	if s == nil {
		return Mat[T]{}, invalidf("nil stream")
	}
	if n < 0 {
		return Mat[T]{}, invalidf("length override %d", n)
	}
	return Mat[T]{s: s, len: n}, nil
}

func (m Mat[T]) Len() int {
	return m.len
}

func (m Mat[T]) Iter() Iterator[T] {
	return m.s.Iter()
}
