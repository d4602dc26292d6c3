package curve

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
)

// G1 is a point of the base group in the host's uncompressed affine
// encoding: two 32-byte big-endian field limbs, x then y. The all-zero
// value is the point at infinity. G1 arithmetic beyond negation is
// performed by a host.Arithmetic implementation; this type only carries
// validated encodings across the protocol layer.
type G1 [G1Size]byte

// NewG1 parses and validates a G1 point. The length and limb checks fail
// with ErrEncoding before any arithmetic; a point failing the curve
// equation fails with ErrNotOnCurve. G1 has cofactor 1, so an on-curve
// point is always a subgroup member.
func NewG1(b []byte) (*G1, error) {
	if len(b) != G1Size {
		return nil, fmt.Errorf("%w: G1 point is %d bytes, want %d", ErrEncoding, len(b), G1Size)
	}
	var p G1
	copy(p[:], b)
	if p.IsInfinity() {
		return &p, nil
	}
	x, err := fpLimb(b[:32])
	if err != nil {
		return nil, err
	}
	y, err := fpLimb(b[32:])
	if err != nil {
		return nil, err
	}
	// y² = x³ + 3
	var lhs, rhs fp.Element
	lhs.Square(&y)
	rhs.Square(&x)
	rhs.Mul(&rhs, &x)
	rhs.Add(&rhs, &g1B)
	if !lhs.Equal(&rhs) {
		return nil, ErrNotOnCurve
	}
	return &p, nil
}

// G1FromCoords encodes an affine point from its coordinates. The caller
// guarantees the point satisfies the curve equation.
func G1FromCoords(x, y *fp.Element) *G1 {
	var p G1
	xb := x.Bytes()
	yb := y.Bytes()
	copy(p[:32], xb[:])
	copy(p[32:], yb[:])
	return &p
}

// G1Generator returns the base-group generator (1, 2).
func G1Generator() *G1 {
	var x, y fp.Element
	x.SetOne()
	y.SetUint64(2)
	return G1FromCoords(&x, &y)
}

// Bytes returns the 64-byte encoding of p.
func (p *G1) Bytes() []byte {
	out := make([]byte, G1Size)
	copy(out, p[:])
	return out
}

// IsInfinity reports whether p is the point at infinity.
func (p *G1) IsInfinity() bool {
	return allZero(p[:])
}

// Equal reports whether p and q encode the same point.
func (p *G1) Equal(q *G1) bool {
	return *p == *q
}

// Neg sets p to −x and returns it. Negation is the one G1 operation the
// host does not provide; it is a single base-field subtraction.
func (p *G1) Neg(x *G1) *G1 {
	if x.IsInfinity() {
		*p = G1{}
		return p
	}
	var y fp.Element
	y.SetBytes(x[32:])
	y.Neg(&y)
	copy(p[:32], x[:32])
	yb := y.Bytes()
	copy(p[32:], yb[:])
	return p
}
