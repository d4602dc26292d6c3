// Package registry tracks the set of public keys admitted for
// fast-aggregate verification.
//
// Fast aggregation is only sound over keys whose owners have proven
// possession of the matching private key; the admitted set is therefore
// long-lived mutable state with its own lifecycle: it grows as keys
// register and never implicitly shrinks. It is deliberately a value
// passed by reference into the verification paths that need it, never a
// package-level singleton, so that distinct deployments (or tests)
// cannot observe each other's registrations.
//
// The registry stores encoded keys and performs no cryptography itself;
// proof-of-possession verification belongs to the scheme packages, which
// admit a key only after its proof checks out.
package registry

import "sync"

// Registry is a mutex-guarded set of encoded public keys. The zero value
// is not usable; call New. A Registry is safe for concurrent use.
type Registry struct {
	mu   sync.RWMutex
	keys map[string]struct{}
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{keys: make(map[string]struct{})}
}

// Add admits an encoded public key. Adding a key twice is a no-op.
func (r *Registry) Add(pk []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.keys[string(pk)] = struct{}{}
}

// Contains reports whether an encoded public key has been admitted.
func (r *Registry) Contains(pk []byte) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.keys[string(pk)]
	return ok
}

// Len returns the number of admitted keys.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.keys)
}
