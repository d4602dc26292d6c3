package curve

import (
	"bytes"
	"crypto/rand"
	"errors"
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

func TestNewScalar(t *testing.T) {
	t.Run("WrongLength", func(t *testing.T) {
		if _, err := NewScalar(make([]byte, 31)); !errors.Is(err, ErrEncoding) {
			t.Fatalf("got %v, want ErrEncoding", err)
		}
		if _, err := NewScalar(make([]byte, 33)); !errors.Is(err, ErrEncoding) {
			t.Fatalf("got %v, want ErrEncoding", err)
		}
	})

	t.Run("Zero", func(t *testing.T) {
		if _, err := NewScalar(make([]byte, 32)); !errors.Is(err, ErrInvalidScalar) {
			t.Fatalf("got %v, want ErrInvalidScalar", err)
		}
	})

	t.Run("GroupOrder", func(t *testing.T) {
		var b [32]byte
		fr.Modulus().FillBytes(b[:])
		if _, err := NewScalar(b[:]); !errors.Is(err, ErrInvalidScalar) {
			t.Fatalf("got %v, want ErrInvalidScalar", err)
		}
	})

	t.Run("OrderMinusOne", func(t *testing.T) {
		m := fr.Modulus()
		m.Sub(m, one())
		var b [32]byte
		m.FillBytes(b[:])
		s, err := NewScalar(b[:])
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(s.Bytes(), b[:]) {
			t.Fatal("round trip changed the scalar")
		}
	})

	t.Run("One", func(t *testing.T) {
		var b [32]byte
		b[31] = 1
		s, err := NewScalar(b[:])
		if err != nil {
			t.Fatal(err)
		}
		if s.BigInt().Cmp(one()) != 0 {
			t.Fatal("scalar 1 does not round trip through BigInt")
		}
	})
}

func TestRandomScalar(t *testing.T) {
	seen := make(map[[32]byte]bool)
	for i := 0; i < 20; i++ {
		s, err := RandomScalar(rand.Reader)
		if err != nil {
			t.Fatal(err)
		}
		if s.IsZero() {
			t.Fatal("random scalar is zero")
		}
		if s.BigInt().Cmp(fr.Modulus()) >= 0 {
			t.Fatal("random scalar not reduced")
		}
		var key [32]byte
		copy(key[:], s.Bytes())
		if seen[key] {
			t.Fatal("random scalar repeated")
		}
		seen[key] = true
	}
}

func one() *big.Int { return big.NewInt(1) }
