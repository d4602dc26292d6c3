package curve

import (
	"errors"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/f3rmion/bls254/fp2"
	"github.com/f3rmion/bls254/host"
)

// Encoding widths, identical to the host ABI.
const (
	G1Size     = host.G1Size
	G2Size     = host.G2Size
	ScalarSize = host.ScalarSize
)

// Errors reported by decoding and validation.
var (
	// ErrEncoding reports a malformed byte encoding: wrong length or a
	// coordinate limb that is not a canonical field element. It is
	// always detected before any arithmetic runs.
	ErrEncoding = errors.New("curve: invalid encoding")
	// ErrNotOnCurve reports a point that fails the curve equation.
	ErrNotOnCurve = errors.New("curve: point not on curve")
	// ErrNotInSubGroup reports a point outside the prime-order subgroup.
	ErrNotInSubGroup = errors.New("curve: point not in subgroup")
	// ErrInvalidScalar reports a private-key scalar that is zero or not
	// reduced modulo the group order.
	ErrInvalidScalar = errors.New("curve: scalar is zero or not reduced")
)

var (
	g1B fp.Element // 3
	g2B fp2.Element // 3/(9+u), the twist curve coefficient

	g2GenX, g2GenY fp2.Element

	// g2Cofactor is #E'(Fp2)/r = 2p − r for BN curves.
	g2Cofactor *big.Int
)

func init() {
	g1B.SetUint64(3)

	// b' = 3/(9+u)
	var nine fp2.Element
	nine.SetUint64(9)
	nine.A1.SetOne()
	g2B.Inverse(&nine)
	var three fp2.Element
	three.SetUint64(3)
	g2B.Mul(&g2B, &three)

	g2GenX.A0.SetBigInt(mustBig("10857046999023057135944570762232829481370756359578518086990519993285655852781"))
	g2GenX.A1.SetBigInt(mustBig("11559732032986387107991004021392285783925812861821192530917403151452391805634"))
	g2GenY.A0.SetBigInt(mustBig("8495653923123431417604973247489272438418190587263600148770280649306958101930"))
	g2GenY.A1.SetBigInt(mustBig("4082367875863433681332203403145435568316851327593401208105741076214120093531"))

	g2Cofactor = new(big.Int).Lsh(fp.Modulus(), 1)
	g2Cofactor.Sub(g2Cofactor, fr.Modulus())
}

func mustBig(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("curve: bad integer literal")
	}
	return v
}

// G1B returns the G1 curve coefficient b = 3 of y² = x³ + b.
func G1B() fp.Element { return g1B }

// G2B returns the twist curve coefficient b' = 3/(9+u) of y² = x³ + b'.
func G2B() fp2.Element { return g2B }

// fpLimb parses one canonical 32-byte big-endian base-field limb.
func fpLimb(b []byte) (fp.Element, error) {
	var e fp.Element
	v := new(big.Int).SetBytes(b)
	if v.Cmp(fp.Modulus()) >= 0 {
		return e, ErrEncoding
	}
	e.SetBigInt(v)
	return e, nil
}

func allZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}
