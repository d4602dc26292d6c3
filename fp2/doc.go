// Package fp2 implements the quadratic extension field Fp2 = Fp[u]/(u²+1)
// over the BN254 base field.
//
// The host runtime accelerates arithmetic for G1 only; every operation on
// the twist group G2, whose coordinates live in Fp2, must therefore run in
// software. This package provides that field layer: limb arithmetic is
// delegated to gnark-crypto's fp.Element, while the extension-field
// structure (multiplication, inversion, square roots, quadratic-residue
// tests, the RFC 9380 sign function) is implemented here.
//
// All arithmetic methods use a mutable receiver pattern: they modify the
// receiver, store the result in it, and return it, allowing method
// chaining without allocations. Element values are safe to copy.
package fp2
