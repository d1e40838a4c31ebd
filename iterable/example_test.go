package iterable_test

import (
	"fmt"

	"github.com/yuwen01/gemini/iterable"
	"github.com/yuwen01/gemini/matrix"
)

func ExampleNewDiagonalMatrix() {
	d, _ := iterable.NewDiagonalMatrix("x", 2)
	fmt.Println(d.Len(), iterable.Collect[matrix.Element[string]](d))
	// Output: 4 [(x, 1) EOL (x, 0) EOL]
}

func ExampleNewRepeatMatrix() {
	block := matrix.Sparse[string]{{{Col: 0, Val: "a"}, {Col: 1, Val: "b"}}}
	m, _ := iterable.NewRepeatMatrix(block.Stream(), 2, 2)
	fmt.Println(iterable.Collect[matrix.Element[string]](m))
	// Output: [(a, 2) (b, 3) EOL (a, 0) (b, 1) EOL]
}

func ExampleWithLen() {
	c := iterable.NewConcat([][]int{{1, 2}, {}, {3}})
	m, _ := iterable.WithLen[int](c, 3)
	fmt.Println(m.Len(), iterable.Collect[int](m))
	// Output: 3 [1 2 3]
}

func ExampleVerify() {
	s := iterable.Slice[int]{1, 2, 3}
	m, _ := iterable.WithLen[int](s, 5)
	fmt.Println(iterable.Verify[int](m))
	// Output: iterable: length mismatch: declared 5, traversed 3
}
