package relation

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/constraint"
	cs_bn254 "github.com/consensys/gnark/constraint/bn254"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/consensys/gnark/logger"

	"github.com/yuwen01/gemini/matrix"
)

// Compile compiles circuit over the BN254 scalar field and solves it for
// assignment.
func Compile(circuit, assignment frontend.Circuit, opts ...frontend.CompileOption) (*R1CS, error) {
	ccs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, circuit, opts...)
	if err != nil {
		return nil, err
	}
	return FromConstraintSystem(ccs, assignment)
}

// Solve returns the full assignment of a compiled BN254 R1CS for the given
// circuit assignment, public variables first.
func Solve(ccs constraint.ConstraintSystem, assignment frontend.Circuit) ([]fr.Element, error) {
	sys, ok := ccs.(*cs_bn254.R1CS)
	if !ok {
		return nil, fmt.Errorf("%w: expected a BN254 R1CS, got %T", ErrInvalidInstance, ccs)
	}
	w, err := frontend.NewWitness(assignment, ecc.BN254.ScalarField())
	if err != nil {
		return nil, err
	}
	sol, err := sys.Solve(w)
	if err != nil {
		return nil, err
	}
	solution, ok := sol.(*cs_bn254.R1CSSolution)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected solution type %T", ErrInvalidInstance, sol)
	}
	return []fr.Element(solution.W), nil
}

// FromConstraintSystem extracts the matrices of a compiled BN254 R1CS and
// the full assignment solving it.
func FromConstraintSystem(ccs constraint.ConstraintSystem, assignment frontend.Circuit) (*R1CS, error) {
	z, err := Solve(ccs, assignment)
	if err != nil {
		return nil, err
	}
	sys := ccs.(*cs_bn254.R1CS)

	_, _, nbPublic := sys.GetNbVariables()
	res := &R1CS{
		Z:        z,
		NbPublic: nbPublic,
	}
	constraints := sys.GetR1Cs()
	res.A = make(matrix.Sparse[fr.Element], len(constraints))
	res.B = make(matrix.Sparse[fr.Element], len(constraints))
	res.C = make(matrix.Sparse[fr.Element], len(constraints))
	for i, c := range constraints {
		res.A[i] = linearExpressionToRow(sys, c.L)
		res.B[i] = linearExpressionToRow(sys, c.R)
		res.C[i] = linearExpressionToRow(sys, c.O)
	}
	if err := res.Validate(); err != nil {
		return nil, err
	}

	log := logger.Logger()
	log.Info().
		Int("nbConstraints", res.NbConstraints()).
		Int("nbVariables", res.NbVariables()).
		Int("nbPublic", res.NbPublic).
		Int("nonZero", res.NonZero()).
		Msg("relation extracted")
	return res, nil
}

func linearExpressionToRow(sys *cs_bn254.R1CS, l constraint.LinearExpression) []matrix.Term[fr.Element] {
	row := make([]matrix.Term[fr.Element], 0, len(l))
	for _, t := range l {
		c := sys.Coefficients[t.CID]
		if c.IsZero() {
			continue
		}
		row = append(row, matrix.Term[fr.Element]{Col: int(t.VID), Val: c})
	}
	return row
}
