package minsig

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/f3rmion/bls254/hash2curve"
	"github.com/f3rmion/bls254/host"
)

// PublicKeyProvider resolves committee member indices to public keys.
// Implementations typically wrap an on-chain committee registry; lookups
// must be stable for the lifetime of a verification call.
type PublicKeyProvider interface {
	PublicKeyAt(index uint) (*PublicKey, error)
}

// SignerSet is a bitmap of committee member indices attached to an
// aggregated signature, so a verifier knows exactly which keys to hold
// the aggregate against. The bitmap form keeps the attribution compact
// for large committees.
type SignerSet struct {
	bits *bitset.BitSet
}

// NewSignerSet returns an empty signer set.
func NewSignerSet() *SignerSet {
	return &SignerSet{bits: bitset.New(0)}
}

// Add marks a committee index as having signed. Adding an index twice
// is a no-op, so the same signer can never be counted twice.
func (s *SignerSet) Add(index uint) {
	s.bits.Set(index)
}

// Contains reports whether a committee index is in the set.
func (s *SignerSet) Contains(index uint) bool {
	return s.bits.Test(index)
}

// Count returns the number of distinct signers in the set.
func (s *SignerSet) Count() uint {
	return s.bits.Count()
}

// Indices returns the signer indices in ascending order.
func (s *SignerSet) Indices() []uint {
	out := make([]uint, 0, s.bits.Count())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		out = append(out, i)
	}
	return out
}

// VerifyThreshold checks an attributed threshold signature: at least
// threshold committee members, identified by the signer set, must have
// signed msg, and sig must be exactly the aggregate of their partial
// signatures. The committee's keys are assumed to be possession-proven
// at registration, as with the fast-aggregate path. The message is
// hashed once and the statement is evaluated as a single pairing call
// over one pair per signer plus the aggregate.
func (s *Scheme) VerifyThreshold(msg []byte, signers *SignerSet, sig *Signature, keys PublicKeyProvider, threshold uint) (bool, error) {
	if signers == nil || signers.Count() == 0 {
		return false, ErrEmptyAggregation
	}
	if signers.Count() < threshold {
		return false, fmt.Errorf("%w: %d of %d", ErrThreshold, signers.Count(), threshold)
	}
	if sig.p.IsInfinity() {
		return false, ErrInfinity
	}

	h, err := hash2curve.HashToG1(s.expand, s.arith, msg, []byte(DSTSign))
	if err != nil {
		return false, err
	}

	indices := signers.Indices()
	input := make([]byte, 0, (len(indices)+1)*host.PairSize)
	for _, idx := range indices {
		pk, err := keys.PublicKeyAt(idx)
		if err != nil {
			return false, err
		}
		input = append(input, h.Bytes()...)
		input = append(input, pk.Bytes()...)
	}
	input = append(input, sig.Bytes()...)
	input = append(input, negG2Gen...)
	return s.arith.PairingCheck(input)
}
