package curve

import (
	"fmt"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Scalar is an element of the BN254 scalar field, encoded as a 32-byte
// big-endian integer reduced modulo the group order. A Scalar used as a
// private key is additionally required to be nonzero; both invariants are
// enforced at construction.
type Scalar [ScalarSize]byte

// NewScalar parses and validates a private-key scalar. It fails with
// ErrEncoding on a wrong length and ErrInvalidScalar when the value is
// zero or not reduced modulo the group order.
func NewScalar(b []byte) (Scalar, error) {
	var s Scalar
	if len(b) != ScalarSize {
		return s, fmt.Errorf("%w: scalar is %d bytes, want %d", ErrEncoding, len(b), ScalarSize)
	}
	v := new(big.Int).SetBytes(b)
	if v.Sign() == 0 || v.Cmp(fr.Modulus()) >= 0 {
		return s, ErrInvalidScalar
	}
	copy(s[:], b)
	return s, nil
}

// RandomScalar draws a uniformly random nonzero scalar from r by
// rejection sampling, so no modular bias is introduced.
func RandomScalar(r io.Reader) (Scalar, error) {
	var s Scalar
	for {
		if _, err := io.ReadFull(r, s[:]); err != nil {
			return Scalar{}, err
		}
		v := new(big.Int).SetBytes(s[:])
		if v.Sign() != 0 && v.Cmp(fr.Modulus()) < 0 {
			return s, nil
		}
	}
}

// Bytes returns the 32-byte big-endian encoding of s.
func (s Scalar) Bytes() []byte {
	out := make([]byte, ScalarSize)
	copy(out, s[:])
	return out
}

// BigInt returns s as a big integer.
func (s Scalar) BigInt() *big.Int {
	return new(big.Int).SetBytes(s[:])
}

// IsZero reports whether s is the zero scalar.
func (s Scalar) IsZero() bool {
	return allZero(s[:])
}
