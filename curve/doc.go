// Package curve provides the BN254 domain model shared by every protocol
// in this module: scalars, G1 points in the host's fixed-width byte
// encoding, and a complete software implementation of the twist group G2.
//
// The split mirrors the host's capabilities. G1 values are kept in the
// 64-byte uncompressed encoding the precompiles consume, and the only G1
// operation implemented here is negation, which the host does not offer
// but which is a single base-field subtraction. All G2 arithmetic
// (addition, scalar multiplication, cofactor clearing, subgroup
// membership) runs in software over the fp2 package, because the host
// accelerates one group only. This software path is markedly slower than
// the host path; configurations that aggregate per call in G2 pay for it.
//
// Decoding is strict: a point enters the protocol layer only after its
// length and coordinate limbs are validated ([ErrEncoding]) and it is
// proven on-curve ([ErrNotOnCurve]) and, for G2, inside the prime-order
// subgroup ([ErrNotInSubGroup]). The all-zero encoding is the point at
// infinity: a valid additive identity, but rejected as a public key or
// signature by the scheme packages.
package curve
