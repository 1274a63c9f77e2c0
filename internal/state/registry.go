package state

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type entry struct {
	store    *Store
	lastSeen time.Time
}

// Registry hands out one Store per client and forgets clients idle longer than ttl.
type Registry struct {
	mu     sync.Mutex
	stores map[uuid.UUID]*entry
	ttl    time.Duration
	now    func() time.Time
}

func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{
		stores: map[uuid.UUID]*entry{},
		ttl:    ttl,
		now:    time.Now,
	}
}

// Get returns the client's store, creating it on first use.
func (r *Registry) Get(clientID uuid.UUID) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	e, ok := r.stores[clientID]
	if !ok {
		e = &entry{store: New()}
		r.stores[clientID] = e
	}
	e.lastSeen = now
	return e.store
}

// Prune drops idle stores and returns how many were removed.
func (r *Registry) Prune() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pruneLocked(r.now())
}

func (r *Registry) pruneLocked(now time.Time) int {
	if r.ttl <= 0 {
		return 0
	}
	removed := 0
	for id, e := range r.stores {
		if now.Sub(e.lastSeen) > r.ttl {
			delete(r.stores, id)
			removed++
		}
	}
	return removed
}

// Sweep prunes idle stores every interval until ctx is done.
func (r *Registry) Sweep(ctx context.Context, interval time.Duration, log *zap.Logger) {
	if r.ttl <= 0 || interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := r.Prune(); removed > 0 {
				log.Debug("Idle client state pruned",
					zap.Int("removed", removed),
					zap.Int("remaining", r.Len()),
				)
			}
		}
	}
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.stores)
}
