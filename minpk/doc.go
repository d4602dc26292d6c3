// Package minpk implements BLS signatures over BN254 with public keys
// in the base group G1 and signatures in the twist group G2.
//
// This is the mirror instantiation of package minsig. Its 64-byte
// public keys are half the size of minsig's, which suits protocols that
// publish many keys and few signatures. The trade is performance:
// messages hash into the twist group and signatures aggregate there,
// and the twist group has no accelerated path, so signing and signature
// aggregation run entirely in software. Verification still reduces to a
// single accelerated pairing call.
//
// The verification equation, for signature sig on message msg under
// public key pk, is
//
//	e(pk, H(msg)) · e(−G1, sig) == 1
//
// The protocol surface mirrors minsig: plain signatures, proofs of
// possession with fast aggregate verification, and augmented signatures
// that bind the signer's key into the message. Group assignment is
// fixed at compile time; the two packages share no types.
package minpk
