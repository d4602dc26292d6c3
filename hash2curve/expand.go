package hash2curve

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"hash"

	"golang.org/x/crypto/blake2b"
)

// oversizedDSTPrefix is hashed together with any tag longer than 255
// bytes to reduce it, per RFC 9380 §5.3.3.
var oversizedDSTPrefix = []byte("H2C-OVERSIZED-DST-")

// ErrExpand reports invalid expand_message_xmd parameters.
var ErrExpand = errors.New("hash2curve: invalid expansion parameters")

// Expander produces lenInBytes uniform bytes from a message under a
// domain separation tag.
type Expander interface {
	Expand(msg, dst []byte, lenInBytes int) ([]byte, error)
}

// XMDSHA256 is expand_message_xmd instantiated with SHA-256, the default
// for every scheme in this module.
type XMDSHA256 struct{}

// Expand implements Expander.
func (XMDSHA256) Expand(msg, dst []byte, lenInBytes int) ([]byte, error) {
	return ExpandMsgXMD(sha256.New, msg, dst, lenInBytes)
}

// XMDBlake2b is expand_message_xmd instantiated with BLAKE2b-256, for
// deployments standardized on BLAKE2b.
type XMDBlake2b struct{}

// Expand implements Expander.
func (XMDBlake2b) Expand(msg, dst []byte, lenInBytes int) ([]byte, error) {
	return ExpandMsgXMD(func() hash.Hash {
		h, _ := blake2b.New256(nil)
		return h
	}, msg, dst, lenInBytes)
}

// ExpandMsgXMD implements expand_message_xmd from RFC 9380 §5.3.1 over
// an arbitrary Merkle–Damgård style hash constructor.
func ExpandMsgXMD(newHash func() hash.Hash, msg, dst []byte, lenInBytes int) ([]byte, error) {
	h := newHash()
	bLen := h.Size()
	rLen := h.BlockSize()

	if len(dst) == 0 {
		return nil, fmt.Errorf("%w: empty domain separation tag", ErrExpand)
	}
	if len(dst) > 255 {
		red := newHash()
		red.Write(oversizedDSTPrefix)
		red.Write(dst)
		dst = red.Sum(nil)
	}

	ell := (lenInBytes + bLen - 1) / bLen
	if ell > 255 || lenInBytes <= 0 || lenInBytes > 65535 {
		return nil, fmt.Errorf("%w: requested %d bytes", ErrExpand, lenInBytes)
	}

	dstPrime := append(append([]byte{}, dst...), byte(len(dst)))
	zPad := make([]byte, rLen)
	lib := []byte{byte(lenInBytes >> 8), byte(lenInBytes)}

	h.Reset()
	h.Write(zPad)
	h.Write(msg)
	h.Write(lib)
	h.Write([]byte{0})
	h.Write(dstPrime)
	b0 := h.Sum(nil)

	h.Reset()
	h.Write(b0)
	h.Write([]byte{1})
	h.Write(dstPrime)
	bi := h.Sum(nil)

	out := make([]byte, 0, ell*bLen)
	out = append(out, bi...)
	for i := 2; i <= ell; i++ {
		x := make([]byte, bLen)
		for j := range x {
			x[j] = b0[j] ^ bi[j]
		}
		h.Reset()
		h.Write(x)
		h.Write([]byte{byte(i)})
		h.Write(dstPrime)
		bi = h.Sum(nil)
		out = append(out, bi...)
	}
	return out[:lenInBytes], nil
}
