package relation

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/yuwen01/gemini/field"
	"github.com/yuwen01/gemini/iterable"
	"github.com/yuwen01/gemini/matrix"
)

// MatrixStream yields a sparse matrix from its last row to its first.
type MatrixStream = iterable.Iterable[matrix.Element[fr.Element]]

// VectorStream yields a vector from its first coordinate to its last.
type VectorStream = iterable.Iterable[fr.Element]

// Stream is an R1CS instance as seen by an elastic prover. Every matrix is
// given twice: row-major, and column-major (the rows of the transpose).
// ZA, ZB and ZC are A·Z, B·Z and C·Z.
type Stream struct {
	ARowMaj, BRowMaj, CRowMaj MatrixStream
	AColMaj, BColMaj, CColMaj MatrixStream

	Witness VectorStream
	Z       VectorStream
	ZA      VectorStream
	ZB      VectorStream
	ZC      VectorStream

	// NonZero bounds the number of nonzero entries of each matrix.
	NonZero int
	// JointLen is max(constraints, variables), the length the prover plans
	// its buffers for.
	JointLen int
}

// Stream exposes r through streams over its own storage. Only the layouts
// and the products A·Z, B·Z, C·Z are computed here.
func (r *R1CS) Stream() *Stream {
	nbVars := r.NbVariables()
	rowMaj := func(m matrix.Sparse[fr.Element]) MatrixStream {
		return iterable.Reversed[matrix.Element[fr.Element]](m.Stream())
	}
	colMaj := func(m matrix.Sparse[fr.Element]) MatrixStream {
		return iterable.Reversed[matrix.Element[fr.Element]](m.Transpose(nbVars).Stream())
	}
	return &Stream{
		ARowMaj:  rowMaj(r.A),
		BRowMaj:  rowMaj(r.B),
		CRowMaj:  rowMaj(r.C),
		AColMaj:  colMaj(r.A),
		BColMaj:  colMaj(r.B),
		CColMaj:  colMaj(r.C),
		Witness:  iterable.Slice[fr.Element](r.Witness()),
		Z:        iterable.Slice[fr.Element](r.Z),
		ZA:       iterable.Slice[fr.Element](ProductMatrixVector(r.A, r.Z)),
		ZB:       iterable.Slice[fr.Element](ProductMatrixVector(r.B, r.Z)),
		ZC:       iterable.Slice[fr.Element](ProductMatrixVector(r.C, r.Z)),
		NonZero:  r.NonZero(),
		JointLen: max(r.NbConstraints(), nbVars),
	}
}

// Repeat streams repeat independent instances of r's circuit as one
// block-diagonal system. zs[k] is the full assignment of instance k and
// replaces r.Z; the matrices are never copied per instance.
func Repeat(r *R1CS, repeat int, zs [][]fr.Element) (*Stream, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if repeat < 1 || len(zs) != repeat {
		return nil, fmt.Errorf("%w: %d assignments for %d repetitions", ErrInvalidInstance, len(zs), repeat)
	}
	nbCons, nbVars := r.NbConstraints(), r.NbVariables()
	witnesses := make([][]fr.Element, repeat)
	za := make([][]fr.Element, repeat)
	zb := make([][]fr.Element, repeat)
	zc := make([][]fr.Element, repeat)
	for k, z := range zs {
		if len(z) != nbVars {
			return nil, fmt.Errorf("%w: assignment %d has %d variables, want %d", ErrInvalidInstance, k, len(z), nbVars)
		}
		witnesses[k] = z[r.NbPublic:]
		za[k] = ProductMatrixVector(r.A, z)
		zb[k] = ProductMatrixVector(r.B, z)
		zc[k] = ProductMatrixVector(r.C, z)
	}

	s := &Stream{
		NonZero:  r.NonZero() * repeat,
		JointLen: max(nbCons, nbVars) * repeat,
	}
	var err error
	tiles := []struct {
		dst       *MatrixStream
		m         matrix.Sparse[fr.Element]
		blockSize int
	}{
		{&s.ARowMaj, r.A, nbVars},
		{&s.BRowMaj, r.B, nbVars},
		{&s.CRowMaj, r.C, nbVars},
		{&s.AColMaj, r.A.Transpose(nbVars), nbCons},
		{&s.BColMaj, r.B.Transpose(nbVars), nbCons},
		{&s.CColMaj, r.C.Transpose(nbVars), nbCons},
	}
	for _, tile := range tiles {
		if *tile.dst, err = iterable.NewRepeatMatrix(tile.m.Stream(), repeat, tile.blockSize); err != nil {
			return nil, err
		}
	}
	vectors := []struct {
		dst  *VectorStream
		rows [][]fr.Element
		len  int
	}{
		{&s.Witness, witnesses, (nbVars - r.NbPublic) * repeat},
		{&s.Z, zs, nbVars * repeat},
		{&s.ZA, za, nbCons * repeat},
		{&s.ZB, zb, nbCons * repeat},
		{&s.ZC, zc, nbCons * repeat},
	}
	for _, v := range vectors {
		if *v.dst, err = iterable.WithLen[fr.Element](iterable.NewConcat(v.rows), v.len); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Dummy is a synthetic satisfied instance of size n: every matrix is
// e⁻¹·I for a random e, Z is all e, so A·Z, B·Z and C·Z are all ones.
func Dummy(n int) (*Stream, error) {
	e, err := field.RandomNonZero()
	if err != nil {
		return nil, err
	}
	return dummy(n, e)
}

// DummyFromSeed is Dummy with e derived from seed, so that runs can be
// reproduced.
func DummyFromSeed(n int, seed []byte) (*Stream, error) {
	return dummy(n, field.FromSeed(seed))
}

func dummy(n int, e fr.Element) (*Stream, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: dummy instance of size %d", ErrInvalidInstance, n)
	}
	inv, ok := field.Inverse(e)
	if !ok {
		return nil, fmt.Errorf("%w: dummy instance over zero", ErrInvalidInstance)
	}
	diag, err := iterable.NewDiagonalMatrix(inv, n)
	if err != nil {
		return nil, err
	}
	z, err := iterable.NewConstant(e, n)
	if err != nil {
		return nil, err
	}
	witness, err := iterable.NewConstant(e, n-1)
	if err != nil {
		return nil, err
	}
	ones, err := iterable.NewConstant(fr.One(), n)
	if err != nil {
		return nil, err
	}
	return &Stream{
		ARowMaj:  diag,
		BRowMaj:  diag,
		CRowMaj:  diag,
		AColMaj:  diag,
		BColMaj:  diag,
		CColMaj:  diag,
		Witness:  witness,
		Z:        z,
		ZA:       ones,
		ZB:       ones,
		ZC:       ones,
		NonZero:  n,
		JointLen: n,
	}, nil
}
