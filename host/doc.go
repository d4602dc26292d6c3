// Package host defines the arithmetic contract a blockchain runtime
// exposes for the BN254 (alt-bn128) curve, and a native software
// implementation of that contract.
//
// Constrained execution environments accelerate exactly three operations,
// all restricted to the G1 subgroup and all speaking fixed-width
// big-endian byte encodings:
//
//   - point addition (two 64-byte G1 points in, one out)
//   - scalar multiplication (a 64-byte G1 point and a 32-byte scalar)
//   - pairing check (a list of 192-byte (G1, G2) pairs, answering whether
//     the product of pairings equals one)
//
// The [Arithmetic] interface mirrors this contract directly so that
// protocol code written against it runs identically off-chain (backed by
// [Native]) and on-chain (backed by the runtime's precompiles). There is
// no accelerated path for G2 group operations; callers needing them must
// use the software implementation in the curve package.
//
// Malformed encodings fail with [ErrInput], points off the curve or
// outside the prime-order subgroup with [ErrNotOnCurve] and
// [ErrNotInSubGroup], and any other backend failure with [ErrArithmetic].
// A host call either returns a result or fails atomically; no partial
// state is left behind.
package host
