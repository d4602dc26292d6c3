package hash2curve

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"

	"github.com/f3rmion/bls254/curve"
	"github.com/f3rmion/bls254/fp2"
)

// Shallue–van de Woestijne constants (RFC 9380 §6.6.1) for the base
// curve and for the twist. BN254 has no registered ciphersuite, so Z is
// derived at initialization with the selection procedure of appendix
// H.1 instead of being hardcoded, and c3 is sign-normalized so the map
// is canonical.
type svdwFp struct {
	z, c1, c2, c3, c4 fp.Element
}

type svdwFp2 struct {
	z, c1, c2, c3, c4 fp2.Element
}

var (
	g1SVDW svdwFp
	g2SVDW svdwFp2
)

func init() {
	g1SVDW = findSVDWFp()
	g2SVDW = findSVDWFp2()
}

func fpIsSquare(e *fp.Element) bool { return e.Legendre() == 1 }

func fpSgn0(e *fp.Element) uint64 {
	b := e.Bytes()
	return uint64(b[len(b)-1] & 1)
}

// gFp evaluates g(x) = x³ + b on the base curve.
func gFp(x *fp.Element) fp.Element {
	b := curve.G1B()
	var r fp.Element
	r.Square(x)
	r.Mul(&r, x)
	r.Add(&r, &b)
	return r
}

// gFp2 evaluates g(x) = x³ + b' on the twist.
func gFp2(x *fp2.Element) fp2.Element {
	b := curve.G2B()
	var r fp2.Element
	r.Square(x)
	r.Mul(&r, x)
	r.Add(&r, &b)
	return r
}

// findSVDWFp searches increasing candidates Z, −Z for the first value
// meeting the RFC 9380 H.1 criteria: g(Z) ≠ 0, 3Z² ≠ 0, −3Z²/(4g(Z)) a
// nonzero square, and at least one of g(Z), g(−Z/2) a square. Legendre
// symbols stand in for is_square.
func findSVDWFp() svdwFp {
	for n := uint64(1); n < 1000; n++ {
		var pos, neg fp.Element
		pos.SetUint64(n)
		neg.Neg(&pos)
		for _, z := range []fp.Element{pos, neg} {
			gz := gFp(&z)
			if gz.IsZero() {
				continue
			}
			var h fp.Element
			h.Square(&z)
			var three fp.Element
			three.SetUint64(3)
			h.Mul(&h, &three)
			if h.IsZero() {
				continue
			}
			// −h/(4·g(Z)) must be a nonzero square.
			var q, four fp.Element
			four.SetUint64(4)
			q.Mul(&four, &gz)
			q.Inverse(&q)
			q.Mul(&q, &h)
			q.Neg(&q)
			if q.IsZero() || !fpIsSquare(&q) {
				continue
			}
			// at least one of g(Z), g(−Z/2) must be a square
			var mz2 fp.Element
			mz2.Neg(&z)
			mz2.Halve()
			gmz2 := gFp(&mz2)
			if !fpIsSquare(&gz) && !fpIsSquare(&gmz2) {
				continue
			}

			var c svdwFp
			c.z = z
			c.c1 = gz
			c.c2 = mz2 // −Z/2
			var t fp.Element
			t.Mul(&gz, &h)
			t.Neg(&t)
			if c.c3.Sqrt(&t) == nil {
				continue
			}
			if fpSgn0(&c.c3) == 1 {
				c.c3.Neg(&c.c3)
			}
			c.c4.Inverse(&h)
			c.c4.Mul(&c.c4, &gz)
			c.c4.Mul(&c.c4, &four)
			c.c4.Neg(&c.c4)
			return c
		}
	}
	panic("hash2curve: no SVDW Z for G1")
}

func findSVDWFp2() svdwFp2 {
	var candidates []fp2.Element
	for n := uint64(1); n < 100; n++ {
		var a, na fp.Element
		a.SetUint64(n)
		na.Neg(&a)
		candidates = append(candidates,
			fp2.Element{A0: a},
			fp2.Element{A0: na},
			fp2.Element{A1: a},
			fp2.Element{A1: na},
			fp2.Element{A0: a, A1: a},
			fp2.Element{A0: na, A1: na},
		)
	}
	var three, four fp2.Element
	three.SetUint64(3)
	four.SetUint64(4)
	for _, z := range candidates {
		gz := gFp2(&z)
		if gz.IsZero() {
			continue
		}
		var h fp2.Element
		h.Square(&z)
		h.Mul(&h, &three)
		if h.IsZero() {
			continue
		}
		var q fp2.Element
		q.Mul(&four, &gz)
		q.Inverse(&q)
		q.Mul(&q, &h)
		q.Neg(&q)
		if q.IsZero() || q.Legendre() != 1 {
			continue
		}
		var mz2 fp2.Element
		mz2.Neg(&z)
		mz2.Halve(&mz2)
		gmz2 := gFp2(&mz2)
		if gz.Legendre() != 1 && gmz2.Legendre() != 1 {
			continue
		}

		var c svdwFp2
		c.z.Set(&z)
		c.c1.Set(&gz)
		c.c2.Set(&mz2)
		var t fp2.Element
		t.Mul(&gz, &h)
		t.Neg(&t)
		if !c.c3.Sqrt(&t) {
			continue
		}
		if c.c3.Sgn0() == 1 {
			c.c3.Neg(&c.c3)
		}
		c.c4.Inverse(&h)
		c.c4.Mul(&c.c4, &gz)
		c.c4.Mul(&c.c4, &four)
		c.c4.Neg(&c.c4)
		return c
	}
	panic("hash2curve: no SVDW Z for G2")
}

// mapToCurveG1 is the SVDW map for the base curve (RFC 9380 §6.6.1,
// A = 0). It is total: every field element maps to an affine point.
func mapToCurveG1(u *fp.Element) (x, y fp.Element) {
	c := &g1SVDW
	var one, tv1, tv2, tv3, tv4 fp.Element
	one.SetOne()

	tv1.Square(u)
	tv1.Mul(&tv1, &c.c1)
	tv2.Add(&one, &tv1)
	tv1.Sub(&one, &tv1)
	tv3.Mul(&tv1, &tv2)
	tv3.Inverse(&tv3) // inv0
	tv4.Mul(u, &tv1)
	tv4.Mul(&tv4, &tv3)
	tv4.Mul(&tv4, &c.c3)

	var x1, x2, x3 fp.Element
	x1.Sub(&c.c2, &tv4)
	x2.Add(&c.c2, &tv4)
	x3.Square(&tv2)
	x3.Mul(&x3, &tv3)
	x3.Square(&x3)
	x3.Mul(&x3, &c.c4)
	x3.Add(&x3, &c.z)

	gx1 := gFp(&x1)
	gx2 := gFp(&x2)
	switch {
	case fpIsSquare(&gx1):
		x.Set(&x1)
	case fpIsSquare(&gx2):
		x.Set(&x2)
	default:
		x.Set(&x3)
	}
	gx := gFp(&x)
	if y.Sqrt(&gx) == nil {
		panic("hash2curve: SVDW output not on curve")
	}
	if fpSgn0(u) != fpSgn0(&y) {
		y.Neg(&y)
	}
	return x, y
}

// mapToCurveG2 is the SVDW map for the twist, over Fp2.
func mapToCurveG2(u *fp2.Element) (x, y fp2.Element) {
	c := &g2SVDW
	var one, tv1, tv2, tv3, tv4 fp2.Element
	one.SetOne()

	tv1.Square(u)
	tv1.Mul(&tv1, &c.c1)
	tv2.Add(&one, &tv1)
	tv1.Sub(&one, &tv1)
	tv3.Mul(&tv1, &tv2)
	tv3.Inverse(&tv3) // inv0
	tv4.Mul(u, &tv1)
	tv4.Mul(&tv4, &tv3)
	tv4.Mul(&tv4, &c.c3)

	var x1, x2, x3 fp2.Element
	x1.Sub(&c.c2, &tv4)
	x2.Add(&c.c2, &tv4)
	x3.Square(&tv2)
	x3.Mul(&x3, &tv3)
	x3.Square(&x3)
	x3.Mul(&x3, &c.c4)
	x3.Add(&x3, &c.z)

	gx1 := gFp2(&x1)
	gx2 := gFp2(&x2)
	switch {
	case gx1.Legendre() == 1:
		x.Set(&x1)
	case gx2.Legendre() == 1:
		x.Set(&x2)
	default:
		x.Set(&x3)
	}
	gx := gFp2(&x)
	if !y.Sqrt(&gx) {
		panic("hash2curve: SVDW output not on twist")
	}
	if u.Sgn0() != y.Sgn0() {
		y.Neg(&y)
	}
	return x, y
}
