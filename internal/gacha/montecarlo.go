package gacha

import (
	"context"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"
)

// SimParams describes one Monte Carlo run.
type SimParams struct {
	Trials  int
	Workers int    // <=0 means 1
	Seed    uint64 // worker i uses Seed+i, so results are reproducible
}

// Stats summarizes simulation results.
type Stats struct {
	N      int
	Mean   float64
	Var    float64
	StdDev float64
	Min    float64
	Max    float64
	P50    float64
	P90    float64
	P99    float64
	// Optional: raw samples if caller needs histograms/exports
	Samples []float64 `json:"-"`
}

// RarityStats counts how often each tier came up.
type RarityStats struct {
	Trials int
	Counts map[Rarity]int
}

// Share returns the empirical frequency of r.
func (s RarityStats) Share(r Rarity) float64 {
	if s.Trials == 0 {
		return 0
	}
	return float64(s.Counts[r]) / float64(s.Trials)
}

// Summarize computes mean/variance/percentiles for samples.
func Summarize(xs []float64) Stats {
	n := len(xs)
	if n == 0 {
		return Stats{}
	}
	// mean
	var sum float64
	for _, v := range xs {
		sum += v
	}
	mean := sum / float64(n)

	// variance (population)
	var acc float64
	for _, v := range xs {
		d := v - mean
		acc += d * d
	}
	variance := acc / float64(n)

	// percentiles
	cp := append([]float64(nil), xs...)
	sort.Float64s(cp)
	percentile := func(p float64) float64 {
		if n == 1 || p <= 0 {
			return cp[0]
		}
		if p >= 1 {
			return cp[n-1]
		}
		pos := p * float64(n-1)
		i := int(math.Floor(pos))
		f := pos - float64(i)
		if i+1 >= n {
			return cp[i]
		}
		return cp[i]*(1-f) + cp[i+1]*f
	}

	return Stats{
		N:       n,
		Mean:    mean,
		Var:     variance,
		StdDev:  math.Sqrt(variance),
		Min:     cp[0],
		Max:     cp[n-1],
		P50:     percentile(0.50),
		P90:     percentile(0.90),
		P99:     percentile(0.99),
		Samples: xs,
	}
}

// Partition splits trials across workers; the first workers take the remainder.
func (p SimParams) Partition() []int {
	workers := p.Workers
	if workers <= 0 {
		workers = 1
	}
	if p.Trials < workers {
		workers = max(p.Trials, 1)
	}
	out := make([]int, workers)
	for i := range out {
		out[i] = p.Trials / workers
		if i < p.Trials%workers {
			out[i]++
		}
	}
	return out
}

// RunParallel runs fn once per worker with its own seeded source and share of
// the trials. It stops early when ctx is cancelled.
func RunParallel(ctx context.Context, p SimParams, fn func(ctx context.Context, worker int, rng RandomSource, trials int) error) error {
	g, ctx := errgroup.WithContext(ctx)
	for i, n := range p.Partition() {
		rng := NewSeededRNG(p.Seed + uint64(i))
		g.Go(func() error {
			return fn(ctx, i, rng, n)
		})
	}
	return g.Wait()
}

// RunRarityMonteCarlo rolls DetermineRarity p.Trials times at the given luck.
func RunRarityMonteCarlo(ctx context.Context, luck float64, p SimParams) (RarityStats, error) {
	if p.Trials <= 0 {
		return RarityStats{Counts: map[Rarity]int{}}, nil
	}
	parts := make([][len(rarityNames)]int, len(p.Partition()))
	err := RunParallel(ctx, p, func(ctx context.Context, worker int, rng RandomSource, trials int) error {
		for i := 0; i < trials; i++ {
			if i%4096 == 0 {
				if err := ctx.Err(); err != nil {
					return err
				}
			}
			parts[worker][DetermineRarity(luck, rng)]++
		}
		return nil
	})
	if err != nil {
		return RarityStats{}, err
	}
	out := RarityStats{Trials: p.Trials, Counts: make(map[Rarity]int, len(rarityNames))}
	for _, part := range parts {
		for r, c := range part {
			out.Counts[Rarity(r)] += c
		}
	}
	return out, nil
}
