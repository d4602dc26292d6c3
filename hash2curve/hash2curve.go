package hash2curve

import (
	"github.com/f3rmion/bls254/curve"
	"github.com/f3rmion/bls254/host"
)

// HashToG1 hashes msg into the base group under dst, using the
// hash_to_curve random-oracle construction: two independent field
// elements are mapped to curve points and summed. The final addition is
// the only group operation involved, so it goes through the host; the
// result is always a subgroup member because G1 has cofactor 1.
//
// A nil Expander selects XMDSHA256.
func HashToG1(e Expander, arith host.Arithmetic, msg, dst []byte) (*curve.G1, error) {
	us, err := HashToFp(e, msg, dst, 2)
	if err != nil {
		return nil, err
	}
	x0, y0 := mapToCurveG1(&us[0])
	x1, y1 := mapToCurveG1(&us[1])
	q0 := curve.G1FromCoords(&x0, &y0)
	q1 := curve.G1FromCoords(&x1, &y1)
	sum, err := arith.Add(q0.Bytes(), q1.Bytes())
	if err != nil {
		return nil, err
	}
	return curve.NewG1(sum)
}

// HashToG2 hashes msg into the prime-order subgroup of the twist under
// dst. The map, the point addition, and the cofactor clearing all run in
// software; the cofactor multiplication is what guarantees the subgroup
// invariant and must never be skipped.
//
// A nil Expander selects XMDSHA256.
func HashToG2(e Expander, msg, dst []byte) (*curve.G2, error) {
	us, err := HashToFp2(e, msg, dst, 2)
	if err != nil {
		return nil, err
	}
	x0, y0 := mapToCurveG2(&us[0])
	x1, y1 := mapToCurveG2(&us[1])
	q0 := curve.G2FromCoords(&x0, &y0)
	q1 := curve.G2FromCoords(&x1, &y1)

	var sum curve.G2
	sum.Add(q0, q1)
	sum.ClearCofactor(&sum)
	return &sum, nil
}
