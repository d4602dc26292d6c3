package minpk

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/f3rmion/bls254/curve"
)

// Aggregate returns the group sum of the given signatures. Signatures
// live in the twist group here, so the fold runs in software; order
// does not matter. It fails with ErrEmptyAggregation on an empty input.
func (s *Scheme) Aggregate(sigs []*Signature) (*Signature, error) {
	if len(sigs) == 0 {
		return nil, ErrEmptyAggregation
	}
	var acc curve.G2
	acc.Set(&sigs[0].p)
	for _, sig := range sigs[1:] {
		acc.Add(&acc, &sig.p)
	}
	return &Signature{p: acc}, nil
}

// AggregateParallel is Aggregate with the reduction split across
// workers: each worker folds a contiguous chunk and the partial sums
// are folded last. workers <= 0 selects GOMAXPROCS. The result is
// identical to Aggregate.
func (s *Scheme) AggregateParallel(sigs []*Signature, workers int) (*Signature, error) {
	if len(sigs) == 0 {
		return nil, ErrEmptyAggregation
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(sigs) {
		workers = len(sigs)
	}
	if workers == 1 {
		return s.Aggregate(sigs)
	}

	partials := make([]*Signature, workers)
	chunk := (len(sigs) + workers - 1) / workers

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > len(sigs) {
			hi = len(sigs)
		}
		if lo >= hi {
			continue
		}
		g.Go(func() error {
			p, err := s.Aggregate(sigs[lo:hi])
			if err != nil {
				return err
			}
			partials[w] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	nonEmpty := partials[:0]
	for _, p := range partials {
		if p != nil {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return s.Aggregate(nonEmpty)
}

// AggregatePublicKeys returns the group sum of the given public keys,
// folded through the host's point addition. Used by fast-aggregate
// verification.
func (s *Scheme) AggregatePublicKeys(pks []*PublicKey) (*PublicKey, error) {
	if len(pks) == 0 {
		return nil, ErrEmptyAggregation
	}
	acc := pks[0].Bytes()
	for _, pk := range pks[1:] {
		var err error
		if acc, err = s.arith.Add(acc, pk.Bytes()); err != nil {
			return nil, err
		}
	}
	var out PublicKey
	copy(out.p[:], acc)
	return &out, nil
}
