package host

import "errors"

// Byte widths of the encodings the host operates on.
const (
	// G1Size is the width of an uncompressed G1 point: two 32-byte
	// big-endian field limbs, x then y. The all-zero encoding is the
	// point at infinity.
	G1Size = 64
	// G2Size is the width of an uncompressed G2 point: four 32-byte
	// big-endian field limbs encoding the two Fp2 coordinates,
	// imaginary limb first (x_im, x_re, y_im, y_re).
	G2Size = 128
	// ScalarSize is the width of a big-endian scalar.
	ScalarSize = 32
	// PairSize is the width of one (G1, G2) pairing-check entry.
	PairSize = G1Size + G2Size
)

// Errors surfaced by host implementations.
var (
	// ErrInput reports a malformed input: wrong length or a coordinate
	// limb that is not a canonical field element.
	ErrInput = errors.New("host: malformed input")
	// ErrNotOnCurve reports a point that does not satisfy the curve
	// equation.
	ErrNotOnCurve = errors.New("host: point not on curve")
	// ErrNotInSubGroup reports a point on the curve but outside the
	// prime-order subgroup.
	ErrNotInSubGroup = errors.New("host: point not in subgroup")
	// ErrArithmetic reports any other backend failure, such as an
	// exhausted compute budget on a real runtime.
	ErrArithmetic = errors.New("host: arithmetic failure")
)

// Arithmetic is the accelerated-operation contract. Implementations must
// be safe for concurrent use and must validate their inputs exactly as
// the on-chain precompiles do: a malformed encoding or an invalid point
// fails the call, never produces a result.
type Arithmetic interface {
	// Add returns the sum of two G1 points, each and the result encoded
	// in G1Size bytes.
	Add(p, q []byte) ([]byte, error)

	// ScalarMul returns k·P for a G1 point P and a ScalarSize-byte
	// big-endian integer k. The scalar is interpreted modulo the group
	// order and is not required to be reduced.
	ScalarMul(p, k []byte) ([]byte, error)

	// PairingCheck evaluates the product of pairings over the (G1, G2)
	// pairs packed into input, PairSize bytes each, and reports whether
	// the product equals the multiplicative identity. An empty input
	// vacuously returns true.
	PairingCheck(input []byte) (bool, error)
}
