// Package cubic is the smallest circuit worth streaming: it proves knowledge
// of x such that x³ + x + 5 = y.
package cubic

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/frontend"
)

type Circuit struct {
	X frontend.Variable
	Y frontend.Variable `gnark:",public"`
}

func (circuit *Circuit) Define(api frontend.API) error {
	x3 := api.Mul(circuit.X, circuit.X, circuit.X)
	api.AssertIsEqual(circuit.Y, api.Add(x3, circuit.X, 5))
	return nil
}

// Assignment returns a satisfying assignment for x.
func Assignment(x uint64) *Circuit {
	var fx, y, five fr.Element
	fx.SetUint64(x)
	five.SetUint64(5)
	y.Square(&fx).Mul(&y, &fx).Add(&y, &fx).Add(&y, &five)
	return &Circuit{X: x, Y: y.String()}
}
