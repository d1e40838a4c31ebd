package kzg

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254"

	"github.com/yuwen01/gemini/iterable"
)

// CommitterKeyStream is a KZG committer key whose G1 powers are streamed
// rather than held in memory.
type CommitterKeyStream struct {
	PowersOfG  iterable.Iterable[bn254.G1Affine]
	PowersOfG2 []bn254.G2Affine
}

// Degree is the largest degree the key can commit to.
func (ck *CommitterKeyStream) Degree() int {
	return ck.PowersOfG.Len() - 1
}

// NewDummyCommitterKey returns a key of n G1 powers all equal to the
// generator, together with four copies of the G2 generator. It only has the
// shape of a real key and must never be used for anything but benchmarks.
func NewDummyCommitterKey(n int) (*CommitterKeyStream, error) {
	if n < 1 {
		return nil, fmt.Errorf("kzg: committer key of size %d", n)
	}
	_, _, g1, g2 := bn254.Generators()
	powers, err := iterable.NewConstant(g1, n)
	if err != nil {
		return nil, err
	}
	return &CommitterKeyStream{
		PowersOfG:  powers,
		PowersOfG2: []bn254.G2Affine{g2, g2, g2, g2},
	}, nil
}
