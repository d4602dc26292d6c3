package minsig

import (
	"github.com/f3rmion/bls254/hash2curve"
	"github.com/f3rmion/bls254/host"
	"github.com/f3rmion/bls254/registry"
)

// Verify checks a single signature: e(H(msg), pk) · e(sig, −G2) == 1,
// evaluated as one combined pairing call. A false result means the
// signature does not verify; errors are reserved for malformed input
// and host failure.
func (s *Scheme) Verify(pk *PublicKey, msg []byte, sig *Signature) (bool, error) {
	return s.verifyWithTag(pk, msg, sig, []byte(DSTSign))
}

// VerifyPossession checks a proof of possession for pk. Registrars must
// accept a key for fast aggregation only after this returns true.
func (s *Scheme) VerifyPossession(pk *PublicKey, proof *Signature) (bool, error) {
	return s.verifyWithTag(pk, pk.Bytes(), proof, []byte(DSTPop))
}

// Register verifies a proof of possession and, on success, admits the
// key into reg. It fails with ErrInvalidProof when the proof does not
// verify; nothing is admitted in that case.
func (s *Scheme) Register(reg *registry.Registry, pk *PublicKey, proof *Signature) error {
	ok, err := s.VerifyPossession(pk, proof)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidProof
	}
	reg.Add(pk.Bytes())
	return nil
}

// FastAggregateVerify checks one aggregated signature over a common
// message: the public keys are aggregated in software and the result is
// verified as a single signature. Duplicate keys are rejected. This path
// is only sound when every key has a verified proof of possession on
// file; use FastAggregateVerifyRegistered to enforce that.
func (s *Scheme) FastAggregateVerify(pks []*PublicKey, msg []byte, sig *Signature) (bool, error) {
	if err := checkSignerSet(pks); err != nil {
		return false, err
	}
	apk, err := s.AggregatePublicKeys(pks)
	if err != nil {
		return false, err
	}
	return s.Verify(apk, msg, sig)
}

// FastAggregateVerifyRegistered is FastAggregateVerify gated on a
// registry: every key must have an admitted proof of possession, or the
// call fails with ErrUnregisteredKey before any pairing runs.
func (s *Scheme) FastAggregateVerifyRegistered(reg *registry.Registry, pks []*PublicKey, msg []byte, sig *Signature) (bool, error) {
	for _, pk := range pks {
		if !reg.Contains(pk.Bytes()) {
			return false, ErrUnregisteredKey
		}
	}
	return s.FastAggregateVerify(pks, msg, sig)
}

// AugmentedVerify checks an aggregate of augmented signatures without
// proofs of possession. Each signer is expected to have signed its own
// public-key encoding prepended to msg (SignAugmented); the verifier
// reconstructs every augmented message here, one hash-to-curve per
// signer, and evaluates the whole statement as a single pairing call
// over k+1 pairs. Because each hash input differs per signer, the
// per-signer pairs cannot be collapsed the way the fast path collapses
// them; that binding is what defeats rogue keys.
func (s *Scheme) AugmentedVerify(pks []*PublicKey, msg []byte, sig *Signature) (bool, error) {
	if err := checkSignerSet(pks); err != nil {
		return false, err
	}
	input := make([]byte, 0, (len(pks)+1)*host.PairSize)
	for _, pk := range pks {
		h, err := hash2curve.HashToG1(s.expand, s.arith, augment(pk.Bytes(), msg), []byte(DSTAug))
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

func (s *Scheme) verifyWithTag(pk *PublicKey, msg []byte, sig *Signature, dst []byte) (bool, error) {
	if pk.p.IsInfinity() || sig.p.IsInfinity() {
		return false, ErrInfinity
	}
	h, err := hash2curve.HashToG1(s.expand, s.arith, msg, dst)
	if err != nil {
		return false, err
	}
	input := make([]byte, 0, 2*host.PairSize)
	input = append(input, h.Bytes()...)
	input = append(input, pk.Bytes()...)
	input = append(input, sig.Bytes()...)
	input = append(input, negG2Gen...)
	return s.arith.PairingCheck(input)
}

// checkSignerSet rejects empty and duplicate-bearing signer sets. The
// quadratic scan matches realistic committee sizes; callers with large
// sets should deduplicate upstream.
func checkSignerSet(pks []*PublicKey) error {
	if len(pks) == 0 {
		return ErrEmptyAggregation
	}
	for i := range pks {
		for j := i + 1; j < len(pks); j++ {
			if pks[i].Equal(pks[j]) {
				return ErrDuplicateKey
			}
		}
	}
	return nil
}
