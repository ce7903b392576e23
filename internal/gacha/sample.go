package gacha

import (
	"errors"
	"fmt"
)

// DefaultMaxTries bounds the reject-and-redraw loop of SampleExcluding.
const DefaultMaxTries = 50

var ErrInvalidDistribution = errors.New("invalid distribution")

// Slice is one outcome of a cumulative distribution: the outcome is picked
// when the uniform draw falls below Upper (and at or above the previous Upper).
type Slice[K comparable] struct {
	Key   K
	Upper float64
}

// Distribution is a discrete distribution expressed as cumulative thresholds.
type Distribution[K comparable] struct {
	slices []Slice[K]
}

// NewDistribution validates and builds a cumulative distribution.
// Upper bounds must be strictly increasing and the last one must be 1.
func NewDistribution[K comparable](slices ...Slice[K]) (Distribution[K], error) {
	if len(slices) == 0 {
		return Distribution[K]{}, fmt.Errorf("%w: no slices", ErrInvalidDistribution)
	}
	prev := 0.0
	for i, s := range slices {
		if err := validateProb(s.Upper); err != nil {
			return Distribution[K]{}, fmt.Errorf("%w: slice %d: %v", ErrInvalidDistribution, i, err)
		}
		if s.Upper <= prev {
			return Distribution[K]{}, fmt.Errorf("%w: slice %d upper %.4f not above %.4f", ErrInvalidDistribution, i, s.Upper, prev)
		}
		prev = s.Upper
	}
	if prev != 1 {
		return Distribution[K]{}, fmt.Errorf("%w: last upper bound %.4f, want 1", ErrInvalidDistribution, prev)
	}
	return Distribution[K]{slices: append([]Slice[K](nil), slices...)}, nil
}

// MustDistribution is NewDistribution for package-level tables.
func MustDistribution[K comparable](slices ...Slice[K]) Distribution[K] {
	d, err := NewDistribution(slices...)
	if err != nil {
		panic(err)
	}
	return d
}

// Keys lists outcomes in table order.
func (d Distribution[K]) Keys() []K {
	out := make([]K, len(d.slices))
	for i, s := range d.slices {
		out[i] = s.Key
	}
	return out
}

// Probability returns the width of k's slice.
func (d Distribution[K]) Probability(k K) float64 {
	prev := 0.0
	for _, s := range d.slices {
		if s.Key == k {
			return s.Upper - prev
		}
		prev = s.Upper
	}
	return 0
}

// Pick maps one uniform draw onto the table.
func (d Distribution[K]) Pick(rng RandomSource) K {
	return d.At(orDefault(rng).Float64())
}

// At returns the outcome for a given draw in [0,1).
func (d Distribution[K]) At(u float64) K {
	for _, s := range d.slices {
		if u < s.Upper {
			return s.Key
		}
	}
	// u == 1 is possible with some sources; it lands on the last slice
	return d.slices[len(d.slices)-1].Key
}

// SampleExcluding draws from d and rejects excluded, redrawing from the same
// (not renormalized) table at most maxTries times. When every attempt lands on
// excluded the fallback is returned.
func SampleExcluding[K comparable](d Distribution[K], rng RandomSource, excluded K, maxTries int, fallback K) K {
	rng = orDefault(rng)
	if maxTries <= 0 {
		maxTries = DefaultMaxTries
	}
	for i := 0; i < maxTries; i++ {
		k := d.Pick(rng)
		if k != excluded {
			return k
		}
	}
	return fallback
}

// PickUniform returns one element of items with equal probability.
func PickUniform[T any](items []T, rng RandomSource) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	idx := int(orDefault(rng).Float64() * float64(len(items)))
	if idx >= len(items) {
		idx = len(items) - 1
	}
	return items[idx]
}
