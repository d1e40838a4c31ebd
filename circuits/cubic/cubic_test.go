package cubic

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/test"
	"github.com/stretchr/testify/assert"
)

func TestCircuit(t *testing.T) {
	assert.NoError(t, test.IsSolved(&Circuit{}, Assignment(3), ecc.BN254.ScalarField()))
	assert.NoError(t, test.IsSolved(&Circuit{}, &Circuit{X: 3, Y: 35}, ecc.BN254.ScalarField()))
	assert.Error(t, test.IsSolved(&Circuit{}, &Circuit{X: 3, Y: 36}, ecc.BN254.ScalarField()))
}
