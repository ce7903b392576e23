package stats

import (
	"maps"
	"sync"
)

// Ledger holds a run's numeric stats. Every method is a single critical
// section, so concurrent Add calls on the same key never lose an update.
type Ledger struct {
	mu     sync.RWMutex
	values map[Stat]float64
}

// NewLedger creates a ledger seeded with baseline. Nil means all zero.
func NewLedger(baseline map[Stat]float64) *Ledger {
	values := make(map[Stat]float64, len(All))
	for k, v := range baseline {
		values[k] = v
	}
	return &Ledger{values: values}
}

// Get returns the value of s, 0 for keys never written.
func (l *Ledger) Get(s Stat) float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.values[s]
}

// Set replaces the value of s.
func (l *Ledger) Set(s Stat, v float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.values[s] = v
}

// Add accumulates delta onto s and returns the new value.
func (l *Ledger) Add(s Stat, delta float64) float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.values[s] += delta
	return l.values[s]
}

// Scale multiplies s by factor and returns the new value.
func (l *Ledger) Scale(s Stat, factor float64) float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.values[s] *= factor
	return l.values[s]
}

// Snapshot copies the current values.
func (l *Ledger) Snapshot() map[Stat]float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return maps.Clone(l.values)
}
