package minpk

import (
	"errors"

	"github.com/f3rmion/bls254/curve"
	"github.com/f3rmion/bls254/hash2curve"
	"github.com/f3rmion/bls254/host"
)

// Domain separation tags for the G2 signature suite. Library-defined,
// in the IETF ciphersuite format; they must match bit for bit between
// signer and verifier.
const (
	// DSTSign separates ordinary message signatures.
	DSTSign = "BLS_SIG_BN254G2_XMD:SHA-256_SVDW_RO_NUL_"
	// DSTPop separates proofs of possession.
	DSTPop = "BLS_POP_BN254G2_XMD:SHA-256_SVDW_RO_POP_"
	// DSTAug separates augmented signatures.
	DSTAug = "BLS_SIG_BN254G2_XMD:SHA-256_SVDW_RO_AUG_"
)

// Errors reported by the protocol layer. Verification mismatches are not
// errors; see the package documentation.
var (
	// ErrEmptyAggregation reports an aggregation over zero inputs.
	ErrEmptyAggregation = errors.New("minpk: empty aggregation input")
	// ErrDuplicateKey reports a signer set containing the same public
	// key twice; callers must deduplicate before verifying.
	ErrDuplicateKey = errors.New("minpk: duplicate public key in signer set")
	// ErrInvalidProof reports a proof of possession that does not verify.
	ErrInvalidProof = errors.New("minpk: proof of possession does not verify")
	// ErrUnregisteredKey reports a fast-aggregate signer set containing
	// a key with no admitted proof of possession.
	ErrUnregisteredKey = errors.New("minpk: public key has no registered proof of possession")
	// ErrInfinity reports the point at infinity offered as a public key
	// or signature.
	ErrInfinity = errors.New("minpk: point at infinity is not a valid key or signature")
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

// negG1Gen is the negated base-group generator, the constant first
// input of every verification pairing's final pair.
var negG1Gen []byte

func init() {
	var n curve.G1
	n.Neg(curve.G1Generator())
	negG1Gen = n.Bytes()
}
