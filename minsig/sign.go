package minsig

import (
	"github.com/f3rmion/bls254/hash2curve"
)

// Sign produces the signature privateKey·H(msg). It is deterministic:
// the same key and message always yield the same bytes. The secret
// scalar multiplication runs on the host path.
func (s *Scheme) Sign(sk *PrivateKey, msg []byte) (*Signature, error) {
	return s.signWithTag(sk, msg, []byte(DSTSign))
}

// SignAugmented signs the signer's own public-key encoding prepended to
// msg, under the augmented domain tag. Verifiers reconstruct the same
// augmented message from the public key, which is what prevents
// rogue-key forgeries without a proof of possession.
func (s *Scheme) SignAugmented(sk *PrivateKey, msg []byte) (*Signature, error) {
	return s.signWithTag(sk, augment(sk.pk.Bytes(), msg), []byte(DSTAug))
}

// ProvePossession signs the signer's own public-key encoding under the
// possession domain tag. A registrar verifies this proof before
// admitting the key for fast-aggregate verification.
func (s *Scheme) ProvePossession(sk *PrivateKey) (*Signature, error) {
	return s.signWithTag(sk, sk.pk.Bytes(), []byte(DSTPop))
}

func (s *Scheme) signWithTag(sk *PrivateKey, msg, dst []byte) (*Signature, error) {
	h, err := hash2curve.HashToG1(s.expand, s.arith, msg, dst)
	if err != nil {
		return nil, err
	}
	out, err := s.arith.ScalarMul(h.Bytes(), sk.s.Bytes())
	if err != nil {
		return nil, err
	}
	var sig Signature
	copy(sig.p[:], out)
	return &sig, nil
}

// augment prepends the raw public-key encoding to the message. The
// convention is fixed: verifiers must build the identical byte string.
func augment(pk, msg []byte) []byte {
	m := make([]byte, 0, len(pk)+len(msg))
	m = append(m, pk...)
	m = append(m, msg...)
	return m
}
