// Package minsig implements BLS signatures over BN254 with signatures in
// G1 and public keys in G2.
//
// This is the configuration recommended for precompile-constrained
// hosts: every per-message operation (hashing to the curve, signing,
// signature aggregation, the pairing inputs that change per call)
// stays in the host-accelerated base group, while the slower software
// twist arithmetic is confined to key derivation and key aggregation.
// The dual assignment (keys in G1, signatures in G2) lives in the minpk
// package; the two are deliberately separate packages rather than a
// runtime switch, because they have very different performance and risk
// profiles.
//
// Three verification protocols are provided:
//
//   - [Scheme.Verify] checks a single signature.
//   - [Scheme.FastAggregateVerify] checks one aggregated signature over a
//     common message against a set of public keys. It is only sound when
//     every key has a verified proof of possession on file;
//     [Scheme.FastAggregateVerifyRegistered] enforces that against a
//     registry. Without possession proofs an attacker can register a
//     rogue key derived from honest keys and forge aggregates.
//   - [Scheme.AugmentedVerify] needs no possession proofs: each signer
//     signs its own public-key encoding prepended to the message
//     ([Scheme.SignAugmented]), which binds identity into the hash at
//     the cost of one hash-to-curve per signer at verification time.
//
// Signing is deterministic: the same key and message always produce the
// same signature, so there is no per-signature randomness to mishandle.
//
// A cryptographic mismatch is reported as a false result, never an
// error; errors are reserved for malformed inputs and host failures.
package minsig
