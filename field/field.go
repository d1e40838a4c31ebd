package field

import (
	"encoding/binary"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"golang.org/x/crypto/blake2b"
)

// Element is a scalar of the BN254 curve. Its zero value is the additive
// identity.
type Element = fr.Element

// RandomNonZero samples a uniformly random invertible element.
func RandomNonZero() (Element, error) {
	var e Element
	for {
		if _, err := e.SetRandom(); err != nil {
			return e, fmt.Errorf("field: sample: %w", err)
		}
		if !e.IsZero() {
			return e, nil
		}
	}
}

// FromSeed derives an invertible element from seed, deterministically.
func FromSeed(seed []byte) Element {
	var e Element
	buf := make([]byte, 8, 8+len(seed))
	buf = append(buf, seed...)
	for ctr := uint64(0); ; ctr++ {
		binary.BigEndian.PutUint64(buf, ctr)
		h := blake2b.Sum512(buf)
		e.SetBytes(h[:])
		if !e.IsZero() {
			return e
		}
	}
}

func Inverse(e Element) (Element, bool) {
	if e.IsZero() {
		return e, false
	}
	var r Element
	r.Inverse(&e)
	return r, true
}
