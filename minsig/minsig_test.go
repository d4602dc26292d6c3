package minsig

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"

	"github.com/f3rmion/bls254/curve"
	"github.com/f3rmion/bls254/hash2curve"
	"github.com/f3rmion/bls254/registry"
)

func testScheme(t *testing.T) *Scheme {
	t.Helper()
	return New(nil, nil)
}

func genKey(t *testing.T, s *Scheme) *PrivateKey {
	t.Helper()
	sk, err := s.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	return sk
}

func TestKeyLifecycle(t *testing.T) {
	s := testScheme(t)
	sk := genKey(t, s)

	t.Run("PrivateRoundTrip", func(t *testing.T) {
		sk2, err := s.PrivateKeyFromBytes(sk.Bytes())
		if err != nil {
			t.Fatal(err)
		}
		if !sk2.PublicKey().Equal(sk.PublicKey()) {
			t.Fatal("reparsed private key derives a different public key")
		}
	})

	t.Run("PublicRoundTrip", func(t *testing.T) {
		pk, err := PublicKeyFromBytes(sk.PublicKey().Bytes())
		if err != nil {
			t.Fatal(err)
		}
		if !pk.Equal(sk.PublicKey()) {
			t.Fatal("public key does not round trip")
		}
	})

	t.Run("ZeroScalar", func(t *testing.T) {
		if _, err := s.PrivateKeyFromBytes(make([]byte, 32)); !errors.Is(err, curve.ErrInvalidScalar) {
			t.Fatalf("got %v, want ErrInvalidScalar", err)
		}
	})

	t.Run("InfinityPublicKey", func(t *testing.T) {
		if _, err := PublicKeyFromBytes(make([]byte, curve.G2Size)); !errors.Is(err, ErrInfinity) {
			t.Fatalf("got %v, want ErrInfinity", err)
		}
	})

	t.Run("TruncatedPublicKey", func(t *testing.T) {
		if _, err := PublicKeyFromBytes(make([]byte, 127)); !errors.Is(err, curve.ErrEncoding) {
			t.Fatalf("got %v, want ErrEncoding", err)
		}
	})

	t.Run("TruncatedSignature", func(t *testing.T) {
		if _, err := SignatureFromBytes(make([]byte, 65)); !errors.Is(err, curve.ErrEncoding) {
			t.Fatalf("got %v, want ErrEncoding", err)
		}
	})
}

func TestSignVerify(t *testing.T) {
	s := testScheme(t)
	sk := genKey(t, s)
	msg := []byte("the quick brown fox")

	sig, err := s.Sign(sk, msg)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("Verifies", func(t *testing.T) {
		ok, err := s.Verify(sk.PublicKey(), msg, sig)
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			t.Fatal("valid signature rejected")
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		sig2, err := s.Sign(sk, msg)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(sig.Bytes(), sig2.Bytes()) {
			t.Fatal("signing the same message twice produced different signatures")
		}
	})

	t.Run("WrongMessage", func(t *testing.T) {
		ok, err := s.Verify(sk.PublicKey(), []byte("another message"), sig)
		if err != nil {
			t.Fatal(err)
		}
		if ok {
			t.Fatal("signature verified against a different message")
		}
	})

	t.Run("WrongKey", func(t *testing.T) {
		other := genKey(t, s)
		ok, err := s.Verify(other.PublicKey(), msg, sig)
		if err != nil {
			t.Fatal(err)
		}
		if ok {
			t.Fatal("signature verified under a different key")
		}
	})

	t.Run("SignatureRoundTrip", func(t *testing.T) {
		sig2, err := SignatureFromBytes(sig.Bytes())
		if err != nil {
			t.Fatal(err)
		}
		ok, err := s.Verify(sk.PublicKey(), msg, sig2)
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			t.Fatal("reparsed signature rejected")
		}
	})

	t.Run("InfinityInputs", func(t *testing.T) {
		var infSig Signature
		if _, err := s.Verify(sk.PublicKey(), msg, &infSig); !errors.Is(err, ErrInfinity) {
			t.Fatalf("got %v, want ErrInfinity", err)
		}
		var infPk PublicKey
		if _, err := s.Verify(&infPk, msg, sig); !errors.Is(err, ErrInfinity) {
			t.Fatalf("got %v, want ErrInfinity", err)
		}
	})

	t.Run("Blake2bScheme", func(t *testing.T) {
		sb := New(nil, hash2curve.XMDBlake2b{})
		sigB, err := sb.Sign(sk, msg)
		if err != nil {
			t.Fatal(err)
		}
		ok, err := sb.Verify(sk.PublicKey(), msg, sigB)
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			t.Fatal("valid BLAKE2b signature rejected")
		}
		// The two expanders must hash to different points.
		if bytes.Equal(sig.Bytes(), sigB.Bytes()) {
			t.Fatal("SHA-256 and BLAKE2b schemes produced the same signature")
		}
		// Cross-scheme verification must fail.
		ok, err = s.Verify(sk.PublicKey(), msg, sigB)
		if err != nil {
			t.Fatal(err)
		}
		if ok {
			t.Fatal("BLAKE2b signature verified under the SHA-256 scheme")
		}
	})
}

func TestProofOfPossession(t *testing.T) {
	s := testScheme(t)
	sk := genKey(t, s)

	proof, err := s.ProvePossession(sk)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("Verifies", func(t *testing.T) {
		ok, err := s.VerifyPossession(sk.PublicKey(), proof)
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			t.Fatal("valid possession proof rejected")
		}
	})

	t.Run("WrongKey", func(t *testing.T) {
		other := genKey(t, s)
		ok, err := s.VerifyPossession(other.PublicKey(), proof)
		if err != nil {
			t.Fatal(err)
		}
		if ok {
			t.Fatal("possession proof verified for a different key")
		}
	})

	t.Run("DomainsSeparated", func(t *testing.T) {
		// A possession proof is a signature on the key's own encoding,
		// but under a distinct tag: it must not verify as an ordinary
		// signature on those bytes.
		ok, err := s.Verify(sk.PublicKey(), sk.PublicKey().Bytes(), proof)
		if err != nil {
			t.Fatal(err)
		}
		if ok {
			t.Fatal("possession proof verified as an ordinary signature")
		}
	})

	t.Run("Register", func(t *testing.T) {
		reg := registry.New()
		if err := s.Register(reg, sk.PublicKey(), proof); err != nil {
			t.Fatal(err)
		}
		if !reg.Contains(sk.PublicKey().Bytes()) {
			t.Fatal("registered key not in registry")
		}

		// A bad proof must not be admitted.
		other := genKey(t, s)
		err := s.Register(reg, other.PublicKey(), proof)
		if !errors.Is(err, ErrInvalidProof) {
			t.Fatalf("got %v, want ErrInvalidProof", err)
		}
		if reg.Contains(other.PublicKey().Bytes()) {
			t.Fatal("key admitted on an invalid proof")
		}
	})
}

func TestAugmentedSignVerify(t *testing.T) {
	s := testScheme(t)
	sk := genKey(t, s)
	msg := []byte("augmented message")

	sig, err := s.SignAugmented(sk, msg)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("Verifies", func(t *testing.T) {
		ok, err := s.AugmentedVerify([]*PublicKey{sk.PublicKey()}, msg, sig)
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			t.Fatal("valid augmented signature rejected")
		}
	})

	t.Run("PlainSignatureRejected", func(t *testing.T) {
		plain, err := s.Sign(sk, msg)
		if err != nil {
			t.Fatal(err)
		}
		ok, err := s.AugmentedVerify([]*PublicKey{sk.PublicKey()}, msg, plain)
		if err != nil {
			t.Fatal(err)
		}
		if ok {
			t.Fatal("plain signature passed augmented verification")
		}
	})
}

// TestRogueKeyAttack plays the standard rogue public key attack: the
// attacker publishes R = [a]G2 - B for a victim key B and a scalar a of
// their choosing, making the aggregate key collapse to [a]G2, which the
// attacker controls. The unguarded fast-aggregate path accepts the
// forgery; the possession-gated path and the augmented path must not.
func TestRogueKeyAttack(t *testing.T) {
	s := testScheme(t)

	victim := genKey(t, s)

	// Attacker key material.
	a, err := curve.RandomScalar(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	attacker, err := s.PrivateKeyFromScalar(a)
	if err != nil {
		t.Fatal(err)
	}

	// R = [a]G2 - B.
	var rogue PublicKey
	var negB curve.G2
	negB.Neg(&victim.pk.p)
	rogue.p.Add(&attacker.pk.p, &negB)

	msg := []byte("release the funds")

	// The forged "aggregate" is just the attacker's own signature.
	forged, err := s.Sign(attacker, msg)
	if err != nil {
		t.Fatal(err)
	}

	pks := []*PublicKey{victim.PublicKey(), &rogue}

	t.Run("FastAggregateAcceptsForgery", func(t *testing.T) {
		ok, err := s.FastAggregateVerify(pks, msg, forged)
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			t.Fatal("attack construction broken: forgery did not pass the unguarded path")
		}
	})

	t.Run("RegisteredPathRejects", func(t *testing.T) {
		reg := registry.New()
		proof, err := s.ProvePossession(victim)
		if err != nil {
			t.Fatal(err)
		}
		if err := s.Register(reg, victim.PublicKey(), proof); err != nil {
			t.Fatal(err)
		}
		// The rogue key has no provable possession; it is not in the
		// registry and the gate fires.
		_, err = s.FastAggregateVerifyRegistered(reg, pks, msg, forged)
		if !errors.Is(err, ErrUnregisteredKey) {
			t.Fatalf("got %v, want ErrUnregisteredKey", err)
		}
	})

	t.Run("AugmentedPathRejects", func(t *testing.T) {
		ok, err := s.AugmentedVerify(pks, msg, forged)
		if err != nil {
			t.Fatal(err)
		}
		if ok {
			t.Fatal("forgery passed augmented verification")
		}
	})
}

// TestQuorumScenario walks the full committee flow end to end:
// registration with possession proofs, partial signatures over a common
// message, aggregation, and gated verification.
func TestQuorumScenario(t *testing.T) {
	s := testScheme(t)
	reg := registry.New()
	msg := []byte("transfer:1000")

	const n = 3
	keys := make([]*PrivateKey, n)
	pks := make([]*PublicKey, n)
	for i := range keys {
		keys[i] = genKey(t, s)
		pks[i] = keys[i].PublicKey()

		proof, err := s.ProvePossession(keys[i])
		if err != nil {
			t.Fatal(err)
		}
		if err := s.Register(reg, pks[i], proof); err != nil {
			t.Fatal(err)
		}
	}

	partials := make([]*Signature, n)
	for i, sk := range keys {
		sig, err := s.Sign(sk, msg)
		if err != nil {
			t.Fatal(err)
		}
		partials[i] = sig
	}

	agg, err := s.Aggregate(partials)
	if err != nil {
		t.Fatal(err)
	}

	ok, err := s.FastAggregateVerifyRegistered(reg, pks, msg, agg)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("valid quorum signature rejected")
	}

	t.Run("TamperedSignature", func(t *testing.T) {
		flipped := agg.Bytes()
		flipped[17] ^= 0x04
		bad, err := SignatureFromBytes(flipped)
		if err != nil {
			// The flip left the curve entirely; rejection at parse
			// time is also a failure to verify.
			return
		}
		ok, err := s.FastAggregateVerifyRegistered(reg, pks, msg, bad)
		if err != nil {
			t.Fatal(err)
		}
		if ok {
			t.Fatal("tampered aggregate verified")
		}
	})

	t.Run("TamperedMessage", func(t *testing.T) {
		ok, err := s.FastAggregateVerifyRegistered(reg, pks, []byte("transfer:9000"), agg)
		if err != nil {
			t.Fatal(err)
		}
		if ok {
			t.Fatal("tampered message verified")
		}
	})

	t.Run("MissingPartial", func(t *testing.T) {
		short, err := s.Aggregate(partials[:n-1])
		if err != nil {
			t.Fatal(err)
		}
		ok, err := s.FastAggregateVerifyRegistered(reg, pks, msg, short)
		if err != nil {
			t.Fatal(err)
		}
		if ok {
			t.Fatal("aggregate missing a partial verified against the full set")
		}
	})
}
