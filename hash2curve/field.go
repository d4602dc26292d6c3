package hash2curve

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fp"

	"github.com/f3rmion/bls254/fp2"
)

// fieldLen is L = ceil((ceil(log2(p)) + k) / 8) for the 254-bit BN254
// base field at the k = 128 security target: reading 48 uniform bytes
// per element keeps the bias below 2⁻¹²⁸.
const fieldLen = 48

// HashToFp implements hash_to_field (RFC 9380 §5.2) for the base field,
// returning count independent uniform elements.
func HashToFp(e Expander, msg, dst []byte, count int) ([]fp.Element, error) {
	if e == nil {
		e = XMDSHA256{}
	}
	buf, err := e.Expand(msg, dst, count*fieldLen)
	if err != nil {
		return nil, err
	}
	out := make([]fp.Element, count)
	for i := range out {
		out[i] = reduceWide(buf[i*fieldLen : (i+1)*fieldLen])
	}
	return out, nil
}

// HashToFp2 implements hash_to_field for Fp2: each element consumes two
// base-field reductions, real limb first.
func HashToFp2(e Expander, msg, dst []byte, count int) ([]fp2.Element, error) {
	if e == nil {
		e = XMDSHA256{}
	}
	buf, err := e.Expand(msg, dst, count*2*fieldLen)
	if err != nil {
		return nil, err
	}
	out := make([]fp2.Element, count)
	for i := range out {
		out[i].A0 = reduceWide(buf[2*i*fieldLen : (2*i+1)*fieldLen])
		out[i].A1 = reduceWide(buf[(2*i+1)*fieldLen : (2*i+2)*fieldLen])
	}
	return out, nil
}

// reduceWide interprets b as a big-endian integer and reduces it into
// the base field.
func reduceWide(b []byte) fp.Element {
	v := new(big.Int).SetBytes(b)
	v.Mod(v, fp.Modulus())
	var e fp.Element
	e.SetBigInt(v)
	return e
}
