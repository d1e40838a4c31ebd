package checker

import (
	"context"
	"errors"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/yuwen01/gemini/relation"
)

var ErrMalformedStream = errors.New("checker: malformed matrix stream")

// EvalRowMajor computes M·z from a row-major stream of M with nbRows rows.
// Rows arrive last first, each as its entries followed by an EOL.
func EvalRowMajor(ctx context.Context, m relation.MatrixStream, z []fr.Element, nbRows int) ([]fr.Element, error) {
	res := make([]fr.Element, nbRows)
	row := nbRows - 1
	var acc, t fr.Element
	for it := m.Iter(); it.Next(); {
		e := it.Value()
		if row < 0 {
			return nil, fmt.Errorf("%w: more than %d rows", ErrMalformedStream, nbRows)
		}
		if e.IsEOL() {
			res[row] = acc
			acc.SetZero()
			row--
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			continue
		}
		v, col, _ := e.Entry()
		if col < 0 || col >= len(z) {
			return nil, fmt.Errorf("%w: column %d out of %d", ErrMalformedStream, col, len(z))
		}
		t.Mul(&v, &z[col])
		acc.Add(&acc, &t)
	}
	if row != -1 {
		return nil, fmt.Errorf("%w: %d rows missing", ErrMalformedStream, row+1)
	}
	return res, nil
}

// EvalColMajor computes M·z from a column-major stream of M with nbRows rows:
// the rows of the transpose, last column first. Entries carry the row of M.
func EvalColMajor(ctx context.Context, m relation.MatrixStream, z []fr.Element, nbRows int) ([]fr.Element, error) {
	res := make([]fr.Element, nbRows)
	col := len(z) - 1
	var t fr.Element
	for it := m.Iter(); it.Next(); {
		e := it.Value()
		if col < 0 {
			return nil, fmt.Errorf("%w: more than %d columns", ErrMalformedStream, len(z))
		}
		if e.IsEOL() {
			col--
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			continue
		}
		v, row, _ := e.Entry()
		if row < 0 || row >= nbRows {
			return nil, fmt.Errorf("%w: row %d out of %d", ErrMalformedStream, row, nbRows)
		}
		t.Mul(&v, &z[col])
		res[row].Add(&res[row], &t)
	}
	if col != -1 {
		return nil, fmt.Errorf("%w: %d columns missing", ErrMalformedStream, col+1)
	}
	return res, nil
}
