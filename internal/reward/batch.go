package reward

import (
	"log/slog"

	"github.com/xtding233/survival-rewards/internal/gacha"
)

// Source is the event that asked for rewards.
type Source int

const (
	Chest Source = iota
	LevelUp
	ShrineActivation
)

func (s Source) String() string {
	switch s {
	case Chest:
		return "chest"
	case LevelUp:
		return "level_up"
	case ShrineActivation:
		return "shrine"
	}
	return "unknown"
}

// Context describes the trigger and the run the rewards are for.
type Context struct {
	Source     Source
	HasWeapon  bool
	Exclusions Exclusions
}

var categoryTable = gacha.MustDistribution(
	gacha.Slice[Category]{Key: StatBoost, Upper: 0.40},
	gacha.Slice[Category]{Key: WeaponUpgrade, Upper: 0.60},
	gacha.Slice[Category]{Key: WeaponMod, Upper: 0.75},
	gacha.Slice[Category]{Key: Aura, Upper: 0.85},
	gacha.Slice[Category]{Key: Synergy, Upper: 0.95},
	gacha.Slice[Category]{Key: Shrine, Upper: 1.0},
)

// Generate produces one reward of category c.
func (g *Generator) Generate(c Category, level int, luck float64, ex Exclusions) Reward {
	switch c {
	case WeaponUpgrade:
		return g.WeaponUpgrade(level, luck, ex)
	case WeaponMod:
		return g.WeaponMod(level, luck, ex)
	case Aura:
		return g.Aura(level, luck, ex)
	case Shrine:
		return g.Shrine(level, luck, ex)
	case Synergy:
		return g.Synergy(level, luck, ex)
	default:
		return g.StatBoost(level, luck, ex)
	}
}

// GenerateRewards fills a selection menu with count candidates.
// Shrine activations only offer shrine buffs; other sources draw a category
// per candidate and never offer weapon upgrades to a run without a weapon.
func (g *Generator) GenerateRewards(count, level int, luck float64, ctx Context) []Reward {
	if count <= 0 {
		return nil
	}
	out := make([]Reward, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, g.Generate(g.category(ctx), level, luck, ctx.Exclusions))
	}
	g.logger.Debug("rewards generated",
		slog.String("source", ctx.Source.String()),
		slog.Int("count", count),
		slog.Int("level", level),
		slog.Float64("luck", luck),
	)
	return out
}

func (g *Generator) category(ctx Context) Category {
	if ctx.Source == ShrineActivation {
		return Shrine
	}
	if !ctx.HasWeapon {
		return gacha.SampleExcluding(categoryTable, g.rng, WeaponUpgrade, gacha.DefaultMaxTries, StatBoost)
	}
	return categoryTable.Pick(g.rng)
}
