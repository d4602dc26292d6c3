package host

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
)

// native implements Arithmetic in software with the same arithmetic the
// real precompiles run. It holds no state and is safe for concurrent use.
type native struct{}

// Native returns a software Arithmetic implementation. It is the default
// backend for every scheme in this module and the reference a runtime
// integration must agree with byte for byte.
func Native() Arithmetic { return native{} }

func (native) Add(p, q []byte) ([]byte, error) {
	a, err := decodeG1(p)
	if err != nil {
		return nil, err
	}
	b, err := decodeG1(q)
	if err != nil {
		return nil, err
	}
	var r bn254.G1Affine
	r.Add(&a, &b)
	return encodeG1(&r), nil
}

func (native) ScalarMul(p, k []byte) ([]byte, error) {
	a, err := decodeG1(p)
	if err != nil {
		return nil, err
	}
	if len(k) != ScalarSize {
		return nil, fmt.Errorf("%w: scalar is %d bytes, want %d", ErrInput, len(k), ScalarSize)
	}
	var r bn254.G1Affine
	r.ScalarMultiplication(&a, new(big.Int).SetBytes(k))
	return encodeG1(&r), nil
}

func (native) PairingCheck(input []byte) (bool, error) {
	if len(input)%PairSize != 0 {
		return false, fmt.Errorf("%w: pairing input is %d bytes, want a multiple of %d", ErrInput, len(input), PairSize)
	}
	var g1s []bn254.G1Affine
	var g2s []bn254.G2Affine
	for off := 0; off < len(input); off += PairSize {
		a, err := decodeG1(input[off : off+G1Size])
		if err != nil {
			return false, err
		}
		b, err := decodeG2(input[off+G1Size : off+PairSize])
		if err != nil {
			return false, err
		}
		// e(O, Q) = e(P, O) = 1 contributes nothing to the product.
		if a.IsInfinity() || b.IsInfinity() {
			continue
		}
		g1s = append(g1s, a)
		g2s = append(g2s, b)
	}
	if len(g1s) == 0 {
		return true, nil
	}
	ok, err := bn254.PairingCheck(g1s, g2s)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrArithmetic, err)
	}
	return ok, nil
}

// limb parses one canonical 32-byte big-endian base-field limb.
func limb(b []byte) (fp.Element, error) {
	var e fp.Element
	v := new(big.Int).SetBytes(b)
	if v.Cmp(fp.Modulus()) >= 0 {
		return e, fmt.Errorf("%w: coordinate limb not a canonical field element", ErrInput)
	}
	e.SetBigInt(v)
	return e, nil
}

func isZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}

func decodeG1(b []byte) (bn254.G1Affine, error) {
	var p bn254.G1Affine
	if len(b) != G1Size {
		return p, fmt.Errorf("%w: G1 point is %d bytes, want %d", ErrInput, len(b), G1Size)
	}
	if isZero(b) {
		return p, nil // point at infinity
	}
	var err error
	if p.X, err = limb(b[:32]); err != nil {
		return p, err
	}
	if p.Y, err = limb(b[32:]); err != nil {
		return p, err
	}
	if !p.IsOnCurve() {
		return p, ErrNotOnCurve
	}
	// G1 has cofactor 1: on-curve implies in-subgroup.
	return p, nil
}

func decodeG2(b []byte) (bn254.G2Affine, error) {
	var p bn254.G2Affine
	if len(b) != G2Size {
		return p, fmt.Errorf("%w: G2 point is %d bytes, want %d", ErrInput, len(b), G2Size)
	}
	if isZero(b) {
		return p, nil // point at infinity
	}
	var err error
	if p.X.A1, err = limb(b[:32]); err != nil {
		return p, err
	}
	if p.X.A0, err = limb(b[32:64]); err != nil {
		return p, err
	}
	if p.Y.A1, err = limb(b[64:96]); err != nil {
		return p, err
	}
	if p.Y.A0, err = limb(b[96:]); err != nil {
		return p, err
	}
	if !p.IsOnCurve() {
		return p, ErrNotOnCurve
	}
	if !p.IsInSubGroup() {
		return p, ErrNotInSubGroup
	}
	return p, nil
}

func encodeG1(p *bn254.G1Affine) []byte {
	out := make([]byte, G1Size)
	if p.IsInfinity() {
		return out
	}
	x := p.X.Bytes()
	y := p.Y.Bytes()
	copy(out[:32], x[:])
	copy(out[32:], y[:])
	return out
}
