package fp2

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
)

func randomElement(t *testing.T) Element {
	t.Helper()
	var e Element
	if _, err := e.A0.SetRandom(); err != nil {
		t.Fatal(err)
	}
	if _, err := e.A1.SetRandom(); err != nil {
		t.Fatal(err)
	}
	return e
}

func TestFieldAxioms(t *testing.T) {
	for i := 0; i < 100; i++ {
		a := randomElement(t)
		b := randomElement(t)
		c := randomElement(t)

		t.Run("AddCommutes", func(t *testing.T) {
			var l, r Element
			l.Add(&a, &b)
			r.Add(&b, &a)
			if !l.Equal(&r) {
				t.Fatal("a+b != b+a")
			}
		})

		t.Run("MulCommutes", func(t *testing.T) {
			var l, r Element
			l.Mul(&a, &b)
			r.Mul(&b, &a)
			if !l.Equal(&r) {
				t.Fatal("a*b != b*a")
			}
		})

		t.Run("MulAssociates", func(t *testing.T) {
			var ab, l, bc, r Element
			ab.Mul(&a, &b)
			l.Mul(&ab, &c)
			bc.Mul(&b, &c)
			r.Mul(&a, &bc)
			if !l.Equal(&r) {
				t.Fatal("(a*b)*c != a*(b*c)")
			}
		})

		t.Run("Distributes", func(t *testing.T) {
			var bc, l, ab, ac, r Element
			bc.Add(&b, &c)
			l.Mul(&a, &bc)
			ab.Mul(&a, &b)
			ac.Mul(&a, &c)
			r.Add(&ab, &ac)
			if !l.Equal(&r) {
				t.Fatal("a*(b+c) != a*b+a*c")
			}
		})

		t.Run("SubInvertsAdd", func(t *testing.T) {
			var s, r Element
			s.Add(&a, &b)
			r.Sub(&s, &b)
			if !r.Equal(&a) {
				t.Fatal("(a+b)-b != a")
			}
		})

		t.Run("SquareMatchesMul", func(t *testing.T) {
			var sq, mm Element
			sq.Square(&a)
			mm.Mul(&a, &a)
			if !sq.Equal(&mm) {
				t.Fatal("a^2 != a*a")
			}
		})

		t.Run("DoubleHalve", func(t *testing.T) {
			var d, h Element
			d.Double(&a)
			h.Halve(&d)
			if !h.Equal(&a) {
				t.Fatal("halve(double(a)) != a")
			}
		})
	}
}

func TestInverse(t *testing.T) {
	var one Element
	one.SetOne()

	for i := 0; i < 50; i++ {
		a := randomElement(t)
		if a.IsZero() {
			continue
		}
		var inv, prod Element
		inv.Inverse(&a)
		prod.Mul(&a, &inv)
		if !prod.Equal(&one) {
			t.Fatal("a * a^-1 != 1")
		}
	}

	t.Run("ZeroMapsToZero", func(t *testing.T) {
		var z, inv Element
		z.SetZero()
		inv.Inverse(&z)
		if !inv.IsZero() {
			t.Fatal("inv(0) != 0")
		}
	})
}

func TestConjugateNorm(t *testing.T) {
	for i := 0; i < 50; i++ {
		a := randomElement(t)

		// a * conj(a) must land on the base field and equal the norm.
		var conj, prod Element
		conj.Conjugate(&a)
		prod.Mul(&a, &conj)
		if !prod.A1.IsZero() {
			t.Fatal("a * conj(a) has nonzero imaginary part")
		}
		n := a.Norm()
		if !prod.A0.Equal(&n) {
			t.Fatal("a * conj(a) != norm(a)")
		}
	}
}

func TestSqrt(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			a := randomElement(t)
			var sq Element
			sq.Square(&a)

			var root Element
			if !root.Sqrt(&sq) {
				t.Fatal("square reported as non-residue")
			}
			var check Element
			check.Square(&root)
			if !check.Equal(&sq) {
				t.Fatal("sqrt(a^2)^2 != a^2")
			}
		}
	})

	t.Run("LegendreAgrees", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			a := randomElement(t)
			if a.IsZero() {
				continue
			}
			var root Element
			hasRoot := root.Sqrt(&a)
			isSquare := a.Legendre() == 1
			if hasRoot != isSquare {
				t.Fatalf("sqrt found=%v but legendre square=%v", hasRoot, isSquare)
			}
		}
	})

	t.Run("BaseFieldEmbedding", func(t *testing.T) {
		// An element with zero imaginary part that is a square in Fp
		// must have a square root here too.
		var a Element
		a.A0.SetUint64(4)
		var root Element
		if !root.Sqrt(&a) {
			t.Fatal("4 reported as non-residue")
		}
		var check Element
		check.Square(&root)
		if !check.Equal(&a) {
			t.Fatal("sqrt(4)^2 != 4")
		}
	})
}

func TestSgn0(t *testing.T) {
	var zero Element
	if zero.Sgn0() != 0 {
		t.Fatal("sgn0(0) != 0")
	}

	var one Element
	one.SetOne()
	if one.Sgn0() != 1 {
		t.Fatal("sgn0(1) != 1")
	}

	// sgn0 of an element and its negation differ unless the element has
	// no parity-relevant limbs.
	for i := 0; i < 50; i++ {
		a := randomElement(t)
		if a.IsZero() {
			continue
		}
		var n Element
		n.Neg(&a)
		if a.Sgn0() == n.Sgn0() {
			t.Fatal("sgn0(a) == sgn0(-a) for nonzero a")
		}
	}
}

func TestMulByFp(t *testing.T) {
	var c fp.Element
	c.SetUint64(7)
	a := randomElement(t)

	var viaMul, viaFp Element
	var cExt Element
	cExt.A0.Set(&c)
	viaMul.Mul(&a, &cExt)
	viaFp.MulByFp(&a, &c)
	if !viaMul.Equal(&viaFp) {
		t.Fatal("MulByFp disagrees with full multiplication")
	}
}
