// Package mimc proves knowledge of a MiMC preimage. It gives the repeated
// benchmarks a circuit with a few hundred constraints per instance.
package mimc

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	nativemimc "github.com/consensys/gnark-crypto/ecc/bn254/fr/mimc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/hash/mimc"
)

type Circuit struct {
	PreImage frontend.Variable
	Hash     frontend.Variable `gnark:",public"`
}

// Define declares the circuit's constraints
func (circuit *Circuit) Define(api frontend.API) error {
	h, err := mimc.NewMiMC(api)
	if err != nil {
		return err
	}
	h.Write(circuit.PreImage)
	api.AssertIsEqual(circuit.Hash, h.Sum())
	return nil
}

// Hash is the native MiMC hash of a single field element.
func Hash(preImage fr.Element) fr.Element {
	h := nativemimc.NewMiMC()
	b := preImage.Bytes()
	h.Write(b[:])
	var res fr.Element
	res.SetBytes(h.Sum(nil))
	return res
}

// Assignment returns a satisfying assignment for the given preimage.
func Assignment(preImage uint64) *Circuit {
	var x fr.Element
	x.SetUint64(preImage)
	y := Hash(x)
	return &Circuit{PreImage: x.String(), Hash: y.String()}
}
