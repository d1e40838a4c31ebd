package matrix

import "fmt"

// Element is one item of a row-major sparse matrix stream: either a nonzero
// entry of the current row or the end-of-line marker closing that row.
// The two variants can only be built with NewElement and EOL.
type Element[T any] struct {
	val T
	col int
	eol bool
}

// NewElement returns the entry v at column col of the row being streamed.
func NewElement[T any](v T, col int) Element[T] {
	return Element[T]{val: v, col: col}
}

// EOL returns the row terminator.
func EOL[T any]() Element[T] {
	return Element[T]{eol: true}
}

func (e Element[T]) IsEOL() bool {
	return e.eol
}

// Entry returns the value and column of an entry.
// ok is false for the row terminator.
func (e Element[T]) Entry() (v T, col int, ok bool) {
	if e.eol {
		return v, 0, false
	}
	return e.val, e.col, true
}

// Shift moves an entry off columns to the right. EOL is returned unchanged.
func (e Element[T]) Shift(off int) Element[T] {
	if e.eol {
		return e
	}
	e.col += off
	return e
}

func (e Element[T]) String() string {
	if e.eol {
		return "EOL"
	}
	return fmt.Sprintf("(%v, %d)", e.val, e.col)
}
