package reward

import (
	"github.com/xtding233/survival-rewards/internal/gacha"
	"github.com/xtding233/survival-rewards/internal/stats"
)

var statBoostTable = gacha.MustDistribution(
	gacha.Slice[stats.Stat]{Key: stats.Difficulty, Upper: 0.12},
	gacha.Slice[stats.Stat]{Key: stats.Damage, Upper: 0.32},
	gacha.Slice[stats.Stat]{Key: stats.CritChance, Upper: 0.50},
	gacha.Slice[stats.Stat]{Key: stats.CritDamage, Upper: 0.60},
	gacha.Slice[stats.Stat]{Key: stats.Health, Upper: 0.70},
	gacha.Slice[stats.Stat]{Key: stats.Armor, Upper: 0.78},
	gacha.Slice[stats.Stat]{Key: stats.Speed, Upper: 0.85},
	gacha.Slice[stats.Stat]{Key: stats.Luck, Upper: 0.92},
	gacha.Slice[stats.Stat]{Key: stats.Regeneration, Upper: 0.97},
	gacha.Slice[stats.Stat]{Key: stats.DropRate, Upper: 0.992},
	gacha.Slice[stats.Stat]{Key: stats.PickupRange, Upper: 0.994},
	gacha.Slice[stats.Stat]{Key: stats.JumpHeight, Upper: 0.997},
	gacha.Slice[stats.Stat]{Key: stats.XPMultiplier, Upper: 1.0},
)

// Without regeneration its slice is absorbed by luck.
var statBoostTableNoRegen = gacha.MustDistribution(
	gacha.Slice[stats.Stat]{Key: stats.Difficulty, Upper: 0.12},
	gacha.Slice[stats.Stat]{Key: stats.Damage, Upper: 0.32},
	gacha.Slice[stats.Stat]{Key: stats.CritChance, Upper: 0.50},
	gacha.Slice[stats.Stat]{Key: stats.CritDamage, Upper: 0.60},
	gacha.Slice[stats.Stat]{Key: stats.Health, Upper: 0.70},
	gacha.Slice[stats.Stat]{Key: stats.Armor, Upper: 0.78},
	gacha.Slice[stats.Stat]{Key: stats.Speed, Upper: 0.85},
	gacha.Slice[stats.Stat]{Key: stats.Luck, Upper: 0.97},
	gacha.Slice[stats.Stat]{Key: stats.DropRate, Upper: 0.992},
	gacha.Slice[stats.Stat]{Key: stats.PickupRange, Upper: 0.994},
	gacha.Slice[stats.Stat]{Key: stats.JumpHeight, Upper: 0.997},
	gacha.Slice[stats.Stat]{Key: stats.XPMultiplier, Upper: 1.0},
)

// StatBoostFallback is returned when the exclusion loop runs out of tries.
const StatBoostFallback = stats.Damage

var statTags = map[stats.Stat]string{
	stats.Health:       "defense",
	stats.Armor:        "defense",
	stats.Regeneration: "defense",
	stats.Damage:       "offense",
	stats.CritChance:   "offense",
	stats.CritDamage:   "offense",
	stats.Speed:        "mobility",
	stats.JumpHeight:   "mobility",
	stats.Luck:         "utility",
	stats.DropRate:     "utility",
	stats.PickupRange:  "utility",
	stats.XPMultiplier: "utility",
	stats.Difficulty:   "risk",
}

// StatBase is the pre-rarity, pre-luck value of a boost to s at level.
func StatBase(s stats.Stat, level int) float64 {
	lvl := float64(level)
	levelScale := 1 + lvl*0.15
	switch s {
	case stats.Health:
		return 2.0 * levelScale
	case stats.Damage:
		return 0.5 * levelScale
	case stats.Speed:
		return 0.1 * levelScale
	case stats.Armor:
		return 1.0 * levelScale
	case stats.CritChance:
		return 0.05 * levelScale
	case stats.CritDamage:
		return 0.2 * levelScale
	case stats.Luck:
		return 0.15 * levelScale
	case stats.XPMultiplier:
		return 0.1 * levelScale
	case stats.Difficulty:
		return 0.1 * levelScale
	case stats.Regeneration:
		return 1.0 + lvl*0.15
	case stats.DropRate:
		return 0.02 + lvl*0.005
	case stats.PickupRange:
		return 0.5 + lvl*0.1
	case stats.JumpHeight:
		return 0.3 + lvl*0.05
	}
	return 0
}

// StatBoost generates a boost to one stat. Difficulty comes out as a delta on
// top of the 1.0 baseline multiplier.
func (g *Generator) StatBoost(level int, luck float64, ex Exclusions) Reward {
	rarity := g.rarity(luck)

	var stat stats.Stat
	if ex.Regeneration {
		stat = gacha.SampleExcluding(statBoostTableNoRegen, g.rng, stats.Regeneration, gacha.DefaultMaxTries, StatBoostFallback)
	} else {
		stat = statBoostTable.Pick(g.rng)
	}

	value := scale(StatBase(stat, level), rarity, luck)
	name := stat.Label() + " Boost"
	if stat == stats.Difficulty {
		name = "Difficulty Up"
	}
	return New("stat_"+string(stat)+"_"+g.newID(), name, StatBoost, rarity, value,
		WithStat(stat), WithTags(statTags[stat]))
}
