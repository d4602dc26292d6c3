package fp2

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
)

// Element is an element a0 + a1·u of Fp2, with u² = −1.
type Element struct {
	A0, A1 fp.Element
}

// SetZero sets z to 0 and returns it.
func (z *Element) SetZero() *Element {
	z.A0.SetZero()
	z.A1.SetZero()
	return z
}

// SetOne sets z to 1 and returns it.
func (z *Element) SetOne() *Element {
	z.A0.SetOne()
	z.A1.SetZero()
	return z
}

// Set sets z to x and returns it.
func (z *Element) Set(x *Element) *Element {
	z.A0.Set(&x.A0)
	z.A1.Set(&x.A1)
	return z
}

// SetUint64 sets z to the base-field element v and returns it.
func (z *Element) SetUint64(v uint64) *Element {
	z.A0.SetUint64(v)
	z.A1.SetZero()
	return z
}

// Equal reports whether z equals x.
func (z *Element) Equal(x *Element) bool {
	return z.A0.Equal(&x.A0) && z.A1.Equal(&x.A1)
}

// IsZero reports whether z is zero.
func (z *Element) IsZero() bool {
	return z.A0.IsZero() && z.A1.IsZero()
}

// Add sets z to x+y and returns it.
func (z *Element) Add(x, y *Element) *Element {
	z.A0.Add(&x.A0, &y.A0)
	z.A1.Add(&x.A1, &y.A1)
	return z
}

// Sub sets z to x−y and returns it.
func (z *Element) Sub(x, y *Element) *Element {
	z.A0.Sub(&x.A0, &y.A0)
	z.A1.Sub(&x.A1, &y.A1)
	return z
}

// Neg sets z to −x and returns it.
func (z *Element) Neg(x *Element) *Element {
	z.A0.Neg(&x.A0)
	z.A1.Neg(&x.A1)
	return z
}

// Double sets z to 2x and returns it.
func (z *Element) Double(x *Element) *Element {
	z.A0.Double(&x.A0)
	z.A1.Double(&x.A1)
	return z
}

// Halve sets z to x/2 and returns it.
func (z *Element) Halve(x *Element) *Element {
	z.Set(x)
	z.A0.Halve()
	z.A1.Halve()
	return z
}

// Conjugate sets z to a0 − a1·u and returns it.
func (z *Element) Conjugate(x *Element) *Element {
	z.A0.Set(&x.A0)
	z.A1.Neg(&x.A1)
	return z
}

// Mul sets z to x·y and returns it.
//
// (a0 + a1·u)(b0 + b1·u) = (a0·b0 − a1·b1) + (a0·b1 + a1·b0)·u
func (z *Element) Mul(x, y *Element) *Element {
	var t0, t1, r0, r1 fp.Element
	t0.Mul(&x.A0, &y.A0)
	t1.Mul(&x.A1, &y.A1)
	r0.Sub(&t0, &t1)
	t0.Mul(&x.A0, &y.A1)
	t1.Mul(&x.A1, &y.A0)
	r1.Add(&t0, &t1)
	z.A0.Set(&r0)
	z.A1.Set(&r1)
	return z
}

// Square sets z to x² and returns it.
//
// (a0 + a1·u)² = (a0+a1)(a0−a1) + 2·a0·a1·u
func (z *Element) Square(x *Element) *Element {
	var s, d, m fp.Element
	s.Add(&x.A0, &x.A1)
	d.Sub(&x.A0, &x.A1)
	m.Mul(&x.A0, &x.A1)
	z.A0.Mul(&s, &d)
	z.A1.Double(&m)
	return z
}

// MulByFp sets z to c·x for a base-field scalar c and returns it.
func (z *Element) MulByFp(x *Element, c *fp.Element) *Element {
	z.A0.Mul(&x.A0, c)
	z.A1.Mul(&x.A1, c)
	return z
}

// Norm returns a0² + a1², the norm of z down to Fp.
func (z *Element) Norm() fp.Element {
	var n, t fp.Element
	n.Square(&z.A0)
	t.Square(&z.A1)
	n.Add(&n, &t)
	return n
}

// Inverse sets z to x⁻¹ and returns it. The inverse of zero is zero,
// matching the inv0 convention hash-to-curve relies on.
func (z *Element) Inverse(x *Element) *Element {
	n := x.Norm()
	n.Inverse(&n) // inv0: Inverse(0) = 0
	z.Conjugate(x)
	z.A0.Mul(&z.A0, &n)
	z.A1.Mul(&z.A1, &n)
	return z
}

// Legendre returns the Legendre symbol of z: 1 if z is a nonzero square,
// −1 if it is a non-residue, 0 if z is zero. An element of Fp2 is a
// square exactly when its norm is a square in Fp.
func (z *Element) Legendre() int {
	if z.IsZero() {
		return 0
	}
	n := z.Norm()
	return n.Legendre()
}

// Sqrt sets z to a square root of x and reports whether one exists,
// using the complex method valid for p ≡ 3 (mod 4). On failure z is
// left unspecified.
func (z *Element) Sqrt(x *Element) bool {
	if x.IsZero() {
		z.SetZero()
		return true
	}
	if x.A1.IsZero() {
		// x lies in Fp: either sqrt(a0), or sqrt(−a0)·u since (c·u)² = −c².
		var r fp.Element
		if r.Sqrt(&x.A0) != nil {
			z.A0.Set(&r)
			z.A1.SetZero()
			return true
		}
		var n fp.Element
		n.Neg(&x.A0)
		if r.Sqrt(&n) == nil {
			return false
		}
		z.A0.SetZero()
		z.A1.Set(&r)
		return true
	}

	var delta fp.Element
	n := x.Norm()
	if delta.Sqrt(&n) == nil {
		return false
	}

	// t = (a0 + δ)/2, falling back to (a0 − δ)/2 when the first choice
	// is a non-residue.
	var t fp.Element
	t.Add(&x.A0, &delta)
	t.Halve()
	if t.Legendre() == -1 {
		t.Sub(&x.A0, &delta)
		t.Halve()
	}

	var x0 fp.Element
	if x0.Sqrt(&t) == nil {
		return false
	}

	// x1 = a1 / (2·x0)
	var x1 fp.Element
	x1.Double(&x0)
	x1.Inverse(&x1)
	x1.Mul(&x1, &x.A1)

	z.A0.Set(&x0)
	z.A1.Set(&x1)
	return true
}

// Sgn0 returns the RFC 9380 sign of z for extension degree 2:
// the parity of a0, or the parity of a1 when a0 is zero.
func (z *Element) Sgn0() uint64 {
	s0 := lsb(&z.A0)
	if z.A0.IsZero() {
		return lsb(&z.A1)
	}
	return s0
}

func lsb(e *fp.Element) uint64 {
	b := e.Bytes()
	return uint64(b[len(b)-1] & 1)
}
