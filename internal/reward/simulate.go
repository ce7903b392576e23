package reward

import (
	"context"
	"sync"

	"github.com/xtding233/survival-rewards/internal/gacha"
)

// Report aggregates generated rewards for tuning.
type Report struct {
	Trials     int
	ByCategory map[Category]gacha.Stats
	ByRarity   map[gacha.Rarity]int
	ByName     map[string]int
}

// Simulate generates p.Trials rewards of category c in parallel and
// summarizes their values.
func Simulate(ctx context.Context, c Category, level int, luck float64, ex Exclusions, p gacha.SimParams) (Report, error) {
	var (
		mu      sync.Mutex
		values  []float64
		rarity  = make(map[gacha.Rarity]int)
		byName  = make(map[string]int)
		counter int
	)
	err := gacha.RunParallel(ctx, p, func(ctx context.Context, worker int, rng gacha.RandomSource, trials int) error {
		gen := NewGenerator(rng, WithIDSource(func() string { return "sim" }))
		local := make([]float64, 0, trials)
		localRarity := make(map[gacha.Rarity]int)
		localName := make(map[string]int)
		for i := 0; i < trials; i++ {
			if i%1024 == 0 {
				if err := ctx.Err(); err != nil {
					return err
				}
			}
			r := gen.Generate(c, level, luck, ex)
			local = append(local, r.Value())
			localRarity[r.Rarity()]++
			localName[r.Name()]++
		}
		mu.Lock()
		defer mu.Unlock()
		values = append(values, local...)
		for k, v := range localRarity {
			rarity[k] += v
		}
		for k, v := range localName {
			byName[k] += v
		}
		counter += trials
		return nil
	})
	if err != nil {
		return Report{}, err
	}
	return Report{
		Trials:     counter,
		ByCategory: map[Category]gacha.Stats{c: gacha.Summarize(values)},
		ByRarity:   rarity,
		ByName:     byName,
	}, nil
}
