package iterable

import "math"

// Repeat tiles a borrowed slice end-to-end a fixed number of times without
// copying it.
type Repeat[T any] struct {
	m      []T
	repeat int
}

func NewRepeat[T any](m []T, repeat int) (Repeat[T], error) {
	if repeat < 0 {
		return Repeat[T]{}, invalidf("repeat count %d", repeat)
	}
	if repeat > 0 && len(m) > math.MaxInt/repeat {
		return Repeat[T]{}, invalidf("%d items repeated %d times overflows", len(m), repeat)
	}
	return Repeat[T]{m: m, repeat: repeat}, nil
}

func (r Repeat[T]) Len() int {
	return len(r.m) * r.repeat
}

func (r Repeat[T]) Iter() Iterator[T] {
	return &repeatIter[T]{m: r.m, left: r.Len(), i: -1}
}

type repeatIter[T any] struct {
	m    []T
	left int
	i    int
}

func (it *repeatIter[T]) Next() bool {
	if it.left == 0 {
		return false
	}
	it.left--
	it.i++
	if it.i == len(it.m) {
		it.i = 0
	}
	return true
}

func (it *repeatIter[T]) Value() T {
	return it.m[it.i]
}
