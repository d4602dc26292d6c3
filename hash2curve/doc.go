// Package hash2curve maps arbitrary-length messages to BN254 curve
// points, deterministically and with output indistinguishable from a
// uniformly random group element.
//
// The construction follows RFC 9380: expand_message_xmd produces uniform
// bytes under a domain separation tag, hash_to_field reduces them into
// base-field (or Fp2) elements, the Shallue–van de Woestijne map sends
// two field elements to curve points, and their sum is the output. For
// the twist group the result is additionally multiplied by the cofactor
// so that it always lands in the prime-order subgroup; an output failing
// that guarantee would silently break protocol soundness, which makes
// the software G2 path the single highest-risk piece of the module.
//
// BN254 has no ciphersuite registered with the RFC, so the SVDW
// constants are derived at package initialization from the RFC's own
// selection procedure rather than taken from an external suite, and the
// domain separation tags used by the scheme packages are library-defined.
//
// The expansion hash is pluggable through [Expander]; [XMDSHA256] is the
// default and [XMDBlake2b] is provided for deployments standardized on
// BLAKE2b. A tag must match bit for bit between signer and verifier, or
// verification fails silently with a false result.
package hash2curve
