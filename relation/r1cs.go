package relation

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/yuwen01/gemini/matrix"
)

var ErrInvalidInstance = errors.New("relation: invalid instance")

// R1CS is a materialized rank-1 constraint system together with a full
// assignment: (A·z) ∘ (B·z) = C·z.
//
// Z starts with the NbPublic public variables, the constant one included;
// the rest of Z is the witness.
type R1CS struct {
	A, B, C  matrix.Sparse[fr.Element]
	Z        []fr.Element
	NbPublic int
}

func (r *R1CS) NbConstraints() int {
	return len(r.A)
}

func (r *R1CS) NbVariables() int {
	return len(r.Z)
}

func (r *R1CS) Witness() []fr.Element {
	return r.Z[r.NbPublic:]
}

// NonZero is the largest number of nonzero entries among A, B and C.
func (r *R1CS) NonZero() int {
	return max(r.A.NonZero(), r.B.NonZero(), r.C.NonZero())
}

func (r *R1CS) Validate() error {
	if len(r.B) != len(r.A) || len(r.C) != len(r.A) {
		return fmt.Errorf("%w: matrices have %d, %d and %d rows", ErrInvalidInstance, len(r.A), len(r.B), len(r.C))
	}
	if r.NbPublic < 0 || r.NbPublic > len(r.Z) {
		return fmt.Errorf("%w: %d public variables out of %d", ErrInvalidInstance, r.NbPublic, len(r.Z))
	}
	for i, m := range []matrix.Sparse[fr.Element]{r.A, r.B, r.C} {
		if err := m.Validate(len(r.Z)); err != nil {
			return fmt.Errorf("%w: matrix %c: %v", ErrInvalidInstance, "ABC"[i], err)
		}
	}
	return nil
}

// IsSatisfied reports whether Z satisfies every constraint.
func (r *R1CS) IsSatisfied() bool {
	za := ProductMatrixVector(r.A, r.Z)
	zb := ProductMatrixVector(r.B, r.Z)
	zc := ProductMatrixVector(r.C, r.Z)
	var t fr.Element
	for i := range za {
		t.Mul(&za[i], &zb[i])
		if !t.Equal(&zc[i]) {
			return false
		}
	}
	return true
}

// ProductMatrixVector computes m·z. Columns of m must index into z.
func ProductMatrixVector(m matrix.Sparse[fr.Element], z []fr.Element) []fr.Element {
	res := make([]fr.Element, len(m))
	var t fr.Element
	for i, row := range m {
		for _, term := range row {
			t.Mul(&term.Val, &z[term.Col])
			res[i].Add(&res[i], &t)
		}
	}
	return res
}
