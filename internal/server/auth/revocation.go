package auth

import (
	"sync"
	"time"
)

// Revocations remembers logged-out token IDs until their natural expiry.
type Revocations struct {
	mu      sync.Mutex
	entries map[string]time.Time
	now     func() time.Time
}

func NewRevocations() *Revocations {
	return &Revocations{
		entries: make(map[string]time.Time),
		now:     time.Now,
	}
}

// Revoke marks id as unusable until the given time. Expired entries are
// dropped on the way.
func (r *Revocations) Revoke(id string, until time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for k, exp := range r.entries {
		if !exp.After(now) {
			delete(r.entries, k)
		}
	}

	if until.After(now) {
		r.entries[id] = until
	}
}

func (r *Revocations) IsRevoked(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	exp, ok := r.entries[id]
	return ok && exp.After(r.now())
}

// size reports how many entries are currently held.
func (r *Revocations) size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
