package minsig

import (
	"errors"

	"github.com/f3rmion/bls254/curve"
	"github.com/f3rmion/bls254/hash2curve"
	"github.com/f3rmion/bls254/host"
)

// Domain separation tags. BN254 has no ciphersuite registered with
// RFC 9380, so these are library-defined, in the IETF format. They must
// match bit for bit between signer and verifier, or verification fails
// with a false result rather than an error.
const (
	// DSTSign separates ordinary message signatures.
	DSTSign = "BLS_SIG_BN254G1_XMD:SHA-256_SVDW_RO_NUL_"
	// DSTPop separates proofs of possession, so a possession proof can
	// never be replayed as a message signature or vice versa.
	DSTPop = "BLS_POP_BN254G1_XMD:SHA-256_SVDW_RO_POP_"
	// DSTAug separates augmented signatures, which bind the signer's
	// public key into the signed message.
	DSTAug = "BLS_SIG_BN254G1_XMD:SHA-256_SVDW_RO_AUG_"
)

// Errors reported by the protocol layer. Verification mismatches are not
// errors; see the package documentation.
var (
	// ErrEmptyAggregation reports an aggregation over zero inputs.
	ErrEmptyAggregation = errors.New("minsig: empty aggregation input")
	// ErrDuplicateKey reports a signer set containing the same public
	// key twice; callers must deduplicate before verifying.
	ErrDuplicateKey = errors.New("minsig: duplicate public key in signer set")
	// ErrInvalidProof reports a proof of possession that does not verify.
	ErrInvalidProof = errors.New("minsig: proof of possession does not verify")
	// ErrUnregisteredKey reports a fast-aggregate signer set containing
	// a key with no admitted proof of possession.
	ErrUnregisteredKey = errors.New("minsig: public key has no registered proof of possession")
	// ErrInfinity reports the point at infinity offered as a public key
	// or signature; it is a valid additive identity but never a valid
	// protocol value.
	ErrInfinity = errors.New("minsig: point at infinity is not a valid key or signature")
	// ErrThreshold reports a signer set smaller than the required
	// threshold.
	ErrThreshold = errors.New("minsig: signer set below threshold")
)

// Scheme binds the protocol to an arithmetic backend and an expansion
// hash. The zero value is not usable; call New. A Scheme is stateless
// and safe for concurrent use.
type Scheme struct {
	arith  host.Arithmetic
	expand hash2curve.Expander
}

// New returns a scheme backed by arith and expand. A nil arith selects
// the native software backend; a nil expand selects SHA-256.
func New(arith host.Arithmetic, expand hash2curve.Expander) *Scheme {
	if arith == nil {
		arith = host.Native()
	}
	if expand == nil {
		expand = hash2curve.XMDSHA256{}
	}
	return &Scheme{arith: arith, expand: expand}
}

// negG2Gen is the negated twist generator, the constant second input of
// every verification pairing.
var negG2Gen []byte

func init() {
	var n curve.G2
	n.Neg(curve.G2Generator())
	negG2Gen = n.Bytes()
}
