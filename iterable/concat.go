package iterable

// Concat chains borrowed rows into one flat stream, in row-major order and
// without separators. Rows may differ in length and may be empty.
type Concat[T any] struct {
	rows [][]T
}

func NewConcat[T any](rows [][]T) Concat[T] {
	return Concat[T]{rows: rows}
}

// Len is linear in the number of rows. Callers that know the total upfront
// can wrap the stream with WithLen.
func (c Concat[T]) Len() int {
	n := 0
	for _, row := range c.rows {
		n += len(row)
	}
	return n
}

func (c Concat[T]) Iter() Iterator[T] {
	return &concatIter[T]{rows: c.rows}
}

// col is the position of the next item in rows[row].
type concatIter[T any] struct {
	rows [][]T
	row  int
	col  int
	cur  T
}

func (it *concatIter[T]) Next() bool {
	for it.row < len(it.rows) {
		cur := it.rows[it.row]
		if it.col < len(cur) {
			it.cur = cur[it.col]
			it.col++
			return true
		}
		it.row++
		it.col = 0
	}
	return false
}

func (it *concatIter[T]) Value() T {
	return it.cur
}
