package run

import (
	"maps"
	"sync"
	"time"
)

// Barrier tracks which members are inside a reward selection. It only holds
// state: whoever mutates it compares IsAnyoneParticipating before and after
// to detect the empty/non-empty edges.
type Barrier struct {
	mu      sync.RWMutex
	members map[string]time.Time
}

func NewBarrier() *Barrier {
	return &Barrier{members: make(map[string]time.Time)}
}

// Enter records memberID with its entry time. Entering twice keeps the first
// timestamp.
func (b *Barrier) Enter(memberID string, at time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.members[memberID]; ok {
		return
	}
	b.members[memberID] = at
}

// Leave removes memberID. Unknown members are ignored so out-of-order close
// and disconnect events are harmless.
func (b *Barrier) Leave(memberID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.members, memberID)
}

func (b *Barrier) IsAnyoneParticipating() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.members) > 0
}

// IsParticipating reports whether memberID is currently selecting.
func (b *Barrier) IsParticipating(memberID string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.members[memberID]
	return ok
}

// EnteredAt returns when memberID entered.
func (b *Barrier) EnteredAt(memberID string) (time.Time, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	t, ok := b.members[memberID]
	return t, ok
}

// Participants copies the current set.
func (b *Barrier) Participants() map[string]time.Time {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return maps.Clone(b.members)
}
