package minpk

import (
	"io"

	"github.com/f3rmion/bls254/curve"
)

// PrivateKey is a signing key: a nonzero scalar and its cached public
// key. The scalar never leaves the signing operations.
type PrivateKey struct {
	s  curve.Scalar
	pk PublicKey
}

// PublicKey is a base-group point, derived as privateKey·G1.
type PublicKey struct {
	p curve.G1
}

// Signature is a twist-group point: an individual signature, an
// aggregate, or a proof of possession. Immutable once produced.
type Signature struct {
	p curve.G2
}

// GenerateKey draws a fresh key pair from r, which must be a
// cryptographically secure randomness source such as crypto/rand.Reader.
// The zero scalar is rejected by construction.
func (s *Scheme) GenerateKey(r io.Reader) (*PrivateKey, error) {
	sc, err := curve.RandomScalar(r)
	if err != nil {
		return nil, err
	}
	return s.PrivateKeyFromScalar(sc)
}

// PrivateKeyFromScalar derives the key pair of an existing scalar. The
// public key is a base-group multiplication of the generator on the
// host path.
func (s *Scheme) PrivateKeyFromScalar(sc curve.Scalar) (*PrivateKey, error) {
	if sc.IsZero() {
		return nil, curve.ErrInvalidScalar
	}
	out, err := s.arith.ScalarMul(curve.G1Generator().Bytes(), sc.Bytes())
	if err != nil {
		return nil, err
	}
	sk := &PrivateKey{s: sc}
	copy(sk.pk.p[:], out)
	return sk, nil
}

// PrivateKeyFromBytes parses a 32-byte big-endian scalar and derives its
// key pair. It fails with curve.ErrInvalidScalar when the scalar is zero
// or not reduced modulo the group order.
func (s *Scheme) PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	sc, err := curve.NewScalar(b)
	if err != nil {
		return nil, err
	}
	return s.PrivateKeyFromScalar(sc)
}

// PublicKey returns the public key derived at construction.
func (sk *PrivateKey) PublicKey() *PublicKey {
	pk := sk.pk
	return &pk
}

// Bytes returns the private scalar as 32 big-endian bytes. Handle with
// care; key storage is a caller concern.
func (sk *PrivateKey) Bytes() []byte {
	return sk.s.Bytes()
}

// PublicKeyFromBytes parses and validates a 64-byte public key,
// rejecting the point at infinity.
func PublicKeyFromBytes(b []byte) (*PublicKey, error) {
	p, err := curve.NewG1(b)
	if err != nil {
		return nil, err
	}
	if p.IsInfinity() {
		return nil, ErrInfinity
	}
	return &PublicKey{p: *p}, nil
}

// Bytes returns the 64-byte encoding of pk.
func (pk *PublicKey) Bytes() []byte {
	return pk.p.Bytes()
}

// Equal reports whether pk and other are the same key.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	return pk.p.Equal(&other.p)
}

// SignatureFromBytes parses and fully validates a 128-byte signature:
// encoding, curve membership, subgroup membership, and rejection of the
// point at infinity.
func SignatureFromBytes(b []byte) (*Signature, error) {
	p, err := curve.NewG2(b)
	if err != nil {
		return nil, err
	}
	if p.IsInfinity() {
		return nil, ErrInfinity
	}
	return &Signature{p: *p}, nil
}

// Bytes returns the 128-byte encoding of sig.
func (sig *Signature) Bytes() []byte {
	return sig.p.Bytes()
}

// Equal reports whether sig and other are the same signature.
func (sig *Signature) Equal(other *Signature) bool {
	return sig.p.Equal(&other.p)
}
