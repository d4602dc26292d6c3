package curve

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/f3rmion/bls254/fp2"
)

// G2 is a point of the twist group in affine coordinates over Fp2. The
// zero value is the point at infinity. All G2 arithmetic is software; the
// host accelerates the base group only.
//
// The byte encoding is four 32-byte big-endian limbs in the precompile
// ABI order: x imaginary, x real, y imaginary, y real. The all-zero
// encoding is the point at infinity.
type G2 struct {
	X, Y fp2.Element
}

// NewG2 parses and validates a G2 point: length and limb canonicality
// (ErrEncoding), the twist curve equation (ErrNotOnCurve), and
// prime-order subgroup membership (ErrNotInSubGroup). The subgroup check
// is a software scalar multiplication by the group order; there is no
// accelerated shortcut for it on the twist.
func NewG2(b []byte) (*G2, error) {
	if len(b) != G2Size {
		return nil, fmt.Errorf("%w: G2 point is %d bytes, want %d", ErrEncoding, len(b), G2Size)
	}
	var p G2
	if allZero(b) {
		return &p, nil
	}
	var err error
	if p.X.A1, err = fpLimb(b[:32]); err != nil {
		return nil, err
	}
	if p.X.A0, err = fpLimb(b[32:64]); err != nil {
		return nil, err
	}
	if p.Y.A1, err = fpLimb(b[64:96]); err != nil {
		return nil, err
	}
	if p.Y.A0, err = fpLimb(b[96:]); err != nil {
		return nil, err
	}
	if !p.IsOnCurve() {
		return nil, ErrNotOnCurve
	}
	if !p.IsInSubGroup() {
		return nil, ErrNotInSubGroup
	}
	return &p, nil
}

// G2FromCoords builds an affine point from its coordinates. The caller
// guarantees the point satisfies the twist equation; subgroup membership
// is not implied.
func G2FromCoords(x, y *fp2.Element) *G2 {
	var p G2
	p.X.Set(x)
	p.Y.Set(y)
	return &p
}

// G2Generator returns the conventional twist-group generator.
func G2Generator() *G2 {
	return G2FromCoords(&g2GenX, &g2GenY)
}

// Bytes returns the 128-byte encoding of p, imaginary limbs first.
func (p *G2) Bytes() []byte {
	out := make([]byte, G2Size)
	if p.IsInfinity() {
		return out
	}
	limbs := [4][32]byte{p.X.A1.Bytes(), p.X.A0.Bytes(), p.Y.A1.Bytes(), p.Y.A0.Bytes()}
	for i := range limbs {
		copy(out[i*32:], limbs[i][:])
	}
	return out
}

// Set sets p to q and returns it.
func (p *G2) Set(q *G2) *G2 {
	p.X.Set(&q.X)
	p.Y.Set(&q.Y)
	return p
}

// Equal reports whether p and q are the same point.
func (p *G2) Equal(q *G2) bool {
	return p.X.Equal(&q.X) && p.Y.Equal(&q.Y)
}

// IsInfinity reports whether p is the point at infinity.
func (p *G2) IsInfinity() bool {
	return p.X.IsZero() && p.Y.IsZero()
}

// IsOnCurve reports whether p satisfies y² = x³ + b'. The point at
// infinity is considered on the curve.
func (p *G2) IsOnCurve() bool {
	if p.IsInfinity() {
		return true
	}
	var lhs, rhs fp2.Element
	lhs.Square(&p.Y)
	rhs.Square(&p.X)
	rhs.Mul(&rhs, &p.X)
	rhs.Add(&rhs, &g2B)
	return lhs.Equal(&rhs)
}

// IsInSubGroup reports whether [r]p is the identity, r being the group
// order.
func (p *G2) IsInSubGroup() bool {
	var t G2
	t.ScalarMul(p, fr.Modulus())
	return t.IsInfinity()
}

// Neg sets p to −q and returns it.
func (p *G2) Neg(q *G2) *G2 {
	p.X.Set(&q.X)
	p.Y.Neg(&q.Y)
	return p
}

// Add sets p to a+b using complete affine addition and returns it.
func (p *G2) Add(a, b *G2) *G2 {
	if a.IsInfinity() {
		return p.Set(b)
	}
	if b.IsInfinity() {
		return p.Set(a)
	}
	if a.X.Equal(&b.X) {
		var negY fp2.Element
		negY.Neg(&b.Y)
		if a.Y.Equal(&negY) {
			p.X.SetZero()
			p.Y.SetZero()
			return p
		}
		return p.Double(a)
	}
	// λ = (y2−y1)/(x2−x1); x3 = λ²−x1−x2; y3 = λ(x1−x3)−y1
	var lambda, t fp2.Element
	lambda.Sub(&b.Y, &a.Y)
	t.Sub(&b.X, &a.X)
	t.Inverse(&t)
	lambda.Mul(&lambda, &t)

	var x3, y3 fp2.Element
	x3.Square(&lambda)
	x3.Sub(&x3, &a.X)
	x3.Sub(&x3, &b.X)
	y3.Sub(&a.X, &x3)
	y3.Mul(&y3, &lambda)
	y3.Sub(&y3, &a.Y)

	p.X.Set(&x3)
	p.Y.Set(&y3)
	return p
}

// Double sets p to 2a and returns it.
func (p *G2) Double(a *G2) *G2 {
	if a.IsInfinity() || a.Y.IsZero() {
		p.X.SetZero()
		p.Y.SetZero()
		return p
	}
	// λ = 3x²/(2y); x3 = λ²−2x; y3 = λ(x−x3)−y
	var lambda, t fp2.Element
	lambda.Square(&a.X)
	t.Double(&lambda)
	lambda.Add(&lambda, &t)
	t.Double(&a.Y)
	t.Inverse(&t)
	lambda.Mul(&lambda, &t)

	var x3, y3 fp2.Element
	x3.Square(&lambda)
	t.Double(&a.X)
	x3.Sub(&x3, &t)
	y3.Sub(&a.X, &x3)
	y3.Mul(&y3, &lambda)
	y3.Sub(&y3, &a.Y)

	p.X.Set(&x3)
	p.Y.Set(&y3)
	return p
}

// ScalarMul sets p to [k]q and returns it. The scalar is interpreted as
// a non-negative integer; it is not required to be reduced.
func (p *G2) ScalarMul(q *G2, k *big.Int) *G2 {
	var acc g2Jac // infinity
	if !q.IsInfinity() && k.Sign() > 0 {
		for i := k.BitLen() - 1; i >= 0; i-- {
			acc.double()
			if k.Bit(i) == 1 {
				acc.addMixed(q)
			}
		}
	}
	acc.toAffine(p)
	return p
}

// ClearCofactor sets p to [h2]q, mapping an arbitrary twist point into
// the prime-order subgroup, and returns it. The twist cofactor is
// h2 = 2p − r.
func (p *G2) ClearCofactor(q *G2) *G2 {
	return p.ScalarMul(q, g2Cofactor)
}

// g2Jac is a Jacobian-coordinate twist point used internally for scalar
// multiplication, where repeated affine inversions would dominate. The
// zero value (Z = 0) is the point at infinity.
type g2Jac struct {
	X, Y, Z fp2.Element
}

// double sets j to 2j in place (dbl-2009-l, a = 0).
func (j *g2Jac) double() {
	if j.Z.IsZero() {
		return
	}
	var a, b, c, d, e, f, t fp2.Element
	a.Square(&j.X)
	b.Square(&j.Y)
	c.Square(&b)

	d.Add(&j.X, &b)
	d.Square(&d)
	d.Sub(&d, &a)
	d.Sub(&d, &c)
	d.Double(&d)

	e.Double(&a)
	e.Add(&e, &a)
	f.Square(&e)

	j.Z.Mul(&j.Z, &j.Y)
	j.Z.Double(&j.Z)

	j.X.Set(&f)
	t.Double(&d)
	j.X.Sub(&j.X, &t)

	j.Y.Sub(&d, &j.X)
	j.Y.Mul(&j.Y, &e)
	t.Double(&c)
	t.Double(&t)
	t.Double(&t)
	j.Y.Sub(&j.Y, &t)
}

// addMixed sets j to j+a for an affine a (madd-2007-bl).
func (j *g2Jac) addMixed(a *G2) {
	if a.IsInfinity() {
		return
	}
	if j.Z.IsZero() {
		j.X.Set(&a.X)
		j.Y.Set(&a.Y)
		j.Z.SetOne()
		return
	}
	var z1z1, u2, s2, h, hh, i, jj, rr, v, t fp2.Element
	z1z1.Square(&j.Z)
	u2.Mul(&a.X, &z1z1)
	s2.Mul(&a.Y, &j.Z)
	s2.Mul(&s2, &z1z1)

	h.Sub(&u2, &j.X)
	rr.Sub(&s2, &j.Y)
	if h.IsZero() {
		if rr.IsZero() {
			// same point: fall back to doubling
			j.double()
			return
		}
		// opposite points: infinity
		j.X.SetZero()
		j.Y.SetZero()
		j.Z.SetZero()
		return
	}
	rr.Double(&rr)

	hh.Square(&h)
	i.Double(&hh)
	i.Double(&i)
	jj.Mul(&h, &i)
	v.Mul(&j.X, &i)

	var x3, y3, z3 fp2.Element
	x3.Square(&rr)
	x3.Sub(&x3, &jj)
	t.Double(&v)
	x3.Sub(&x3, &t)

	y3.Sub(&v, &x3)
	y3.Mul(&y3, &rr)
	t.Mul(&j.Y, &jj)
	t.Double(&t)
	y3.Sub(&y3, &t)

	z3.Add(&j.Z, &h)
	z3.Square(&z3)
	z3.Sub(&z3, &z1z1)
	z3.Sub(&z3, &hh)

	j.X.Set(&x3)
	j.Y.Set(&y3)
	j.Z.Set(&z3)
}

// toAffine writes j into the affine point p.
func (j *g2Jac) toAffine(p *G2) {
	if j.Z.IsZero() {
		p.X.SetZero()
		p.Y.SetZero()
		return
	}
	var zinv, zinv2 fp2.Element
	zinv.Inverse(&j.Z)
	zinv2.Square(&zinv)
	p.X.Mul(&j.X, &zinv2)
	p.Y.Mul(&j.Y, &zinv2)
	p.Y.Mul(&p.Y, &zinv)
}
