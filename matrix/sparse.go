package matrix

import "fmt"

// Term is a nonzero entry of a sparse row.
type Term[T any] struct {
	Col int
	Val T
}

// Sparse is a row-major sparse matrix. Rows keep their terms in insertion
// order; the order is preserved by every stream built from it.
type Sparse[T any] [][]Term[T]

// NonZero counts the terms of the matrix.
func (m Sparse[T]) NonZero() int {
	n := 0
	for _, row := range m {
		n += len(row)
	}
	return n
}

// Validate checks that every column index lies in [0, ncols).
func (m Sparse[T]) Validate(ncols int) error {
	for i, row := range m {
		for _, t := range row {
			if t.Col < 0 || t.Col >= ncols {
				return fmt.Errorf("row %d column %d out of range [0, %d)", i, t.Col, ncols)
			}
		}
	}
	return nil
}

// Transpose returns the column-major view of m as a Sparse matrix with ncols
// rows. Row i of the result lists, in increasing row order of m, the entries
// of column i; their Col field holds the original row index.
func (m Sparse[T]) Transpose(ncols int) Sparse[T] {
	res := make(Sparse[T], ncols)
	for i, row := range m {
		for _, t := range row {
			res[t.Col] = append(res[t.Col], Term[T]{Col: i, Val: t.Val})
		}
	}
	return res
}

// Stream lays m out for backward streaming: reading the result from its last
// item to its first visits the rows from the last to the first, each row's
// entries in order followed by one EOL. Concretely, row i is stored as an EOL
// followed by its entries in reverse order.
//
// This is the layout expected by iterable.Reversed and iterable.NewRepeatMatrix.
func (m Sparse[T]) Stream() []Element[T] {
	res := make([]Element[T], 0, len(m)+m.NonZero())
	for _, row := range m {
		res = append(res, EOL[T]())
		for j := len(row) - 1; j >= 0; j-- {
			res = append(res, NewElement(row[j].Val, row[j].Col))
		}
	}
	return res
}
