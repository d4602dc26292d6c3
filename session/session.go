package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/f3rmion/bls254/minsig"
)

// Errors reported by session coordination.
var (
	// ErrFinalized reports use of a session after Finalize.
	ErrFinalized = errors.New("session: already finalized")
	// ErrDuplicatePartial reports a second partial from the same member.
	ErrDuplicatePartial = errors.New("session: duplicate partial signature")
	// ErrBadPartial reports a partial that does not verify under its
	// member's public key.
	ErrBadPartial = errors.New("session: partial signature does not verify")
	// ErrNotReady reports Finalize before the threshold is met.
	ErrNotReady = errors.New("session: threshold not met")
)

// Session collects partial signatures over one message from one
// committee. It is safe for concurrent Receive calls; partials arriving
// over the network need no external locking.
type Session struct {
	scheme    *minsig.Scheme
	committee minsig.PublicKeyProvider
	msg       []byte
	threshold uint

	mu        sync.Mutex
	signers   *minsig.SignerSet
	partials  []*minsig.Signature
	finalized bool
}

// New opens a session for msg. Partials are verified against committee
// on receipt; Finalize succeeds once threshold distinct members have
// contributed.
func New(scheme *minsig.Scheme, committee minsig.PublicKeyProvider, msg []byte, threshold uint) (*Session, error) {
	if scheme == nil {
		return nil, errors.New("session: nil scheme")
	}
	if committee == nil {
		return nil, errors.New("session: nil committee")
	}
	if threshold == 0 {
		return nil, errors.New("session: threshold must be positive")
	}
	return &Session{
		scheme:    scheme,
		committee: committee,
		msg:       append([]byte(nil), msg...),
		threshold: threshold,
		signers:   minsig.NewSignerSet(),
	}, nil
}

// Receive verifies and records the partial signature of one committee
// member. A partial that fails verification is rejected with
// ErrBadPartial and leaves the session unchanged; a second partial from
// the same member is rejected with ErrDuplicatePartial.
func (s *Session) Receive(index uint, sig *minsig.Signature) error {
	pk, err := s.committee.PublicKeyAt(index)
	if err != nil {
		return fmt.Errorf("session: unknown committee member %d: %w", index, err)
	}
	ok, err := s.scheme.Verify(pk, s.msg, sig)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: member %d", ErrBadPartial, index)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.finalized {
		return ErrFinalized
	}
	if s.signers.Contains(index) {
		return fmt.Errorf("%w: member %d", ErrDuplicatePartial, index)
	}
	s.signers.Add(index)
	s.partials = append(s.partials, sig)
	return nil
}

// Count returns the number of partials received so far.
func (s *Session) Count() uint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.signers.Count()
}

// Ready reports whether the threshold has been met.
func (s *Session) Ready() bool {
	return s.Count() >= s.threshold
}

// Finalize aggregates the collected partials and returns the aggregate
// together with the signer set that attributes it. It consumes the
// session: any later Receive or Finalize fails with ErrFinalized.
func (s *Session) Finalize() (*minsig.Signature, *minsig.SignerSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.finalized {
		return nil, nil, ErrFinalized
	}
	if s.signers.Count() < s.threshold {
		return nil, nil, fmt.Errorf("%w: %d of %d", ErrNotReady, s.signers.Count(), s.threshold)
	}
	agg, err := s.scheme.Aggregate(s.partials)
	if err != nil {
		return nil, nil, err
	}
	s.finalized = true
	return agg, s.signers, nil
}
