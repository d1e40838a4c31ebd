// Package iterable streams vectors and sparse matrices to a prover as
// restartable lazy sequences instead of materialized slices.
//
// An Iterable is an immutable descriptor: Len reports how many items a full
// traversal yields and Iter hands out a fresh, independent Iterator each time
// it is called. Descriptors never store traversal progress, so several
// traversals of the same descriptor may run at once, on different goroutines,
// without locking. Iterators are single-use and must not be shared.
//
// Descriptors built over a caller's slice (Slice, Reversed, Repeat, Concat)
// borrow it: the slice must stay unchanged for as long as the descriptor or
// any of its iterators is in use.
package iterable

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameters is returned by constructors given parameters that
	// do not describe a well-formed sequence.
	ErrInvalidParameters = errors.New("iterable: invalid parameters")

	// ErrLengthMismatch is returned by Verify when a traversal does not yield
	// the declared number of items.
	ErrLengthMismatch = errors.New("iterable: length mismatch")
)

// Iterator is a forward-only cursor over one traversal.
// Next advances to the following item and reports whether there is one;
// Value returns the current item and is only valid after Next returned true.
type Iterator[T any] interface {
	Next() bool
	Value() T
}

// Iterable is a restartable sequence of known length.
type Iterable[T any] interface {
	// Len is the exact number of items yielded by a full traversal.
	// It never traverses the sequence.
	Len() int
	// Iter returns a new traversal positioned before the first item.
	Iter() Iterator[T]
}

func IsEmpty[T any](it Iterable[T]) bool {
	return it.Len() == 0
}

// Collect drives one traversal to the end and returns the items.
func Collect[T any](it Iterable[T]) []T {
	res := make([]T, 0, max(it.Len(), 0))
	for i := it.Iter(); i.Next(); {
		res = append(res, i.Value())
	}
	return res
}

// Count drives one traversal to the end and returns the number of items seen.
func Count[T any](it Iterable[T]) int {
	n := 0
	for i := it.Iter(); i.Next(); {
		n++
	}
	return n
}

// Verify checks that a full traversal yields exactly Len items.
func Verify[T any](it Iterable[T]) error {
	if n, l := Count(it), it.Len(); n != l {
		return fmt.Errorf("%w: declared %d, traversed %d", ErrLengthMismatch, l, n)
	}
	return nil
}

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameters, fmt.Sprintf(format, args...))
}
