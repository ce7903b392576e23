package gacha

import "math"

// Rarity is one of the four reward tiers, ordered from most to least common.
type Rarity int

const (
	Common Rarity = iota
	Rare
	Epic
	Legendary
)

// Thresholds on the luck-adjusted roll (exclusive lower bounds).
const (
	legendaryAbove = 0.99
	epicAbove      = 0.85
	rareAbove      = 0.60

	luckBonusPerPoint = 0.005
	maxLuckBonus      = 0.05
)

var rarityNames = [...]string{"Common", "Rare", "Epic", "Legendary"}

// item tiers share the ordinal structure but use their own naming
var itemRarityNames = [...]string{"Common", "Uncommon", "Rare", "Legendary"}

func (r Rarity) String() string {
	if r < Common || r > Legendary {
		return "Unknown"
	}
	return rarityNames[r]
}

// ItemName returns the tier name used for items.
func (r Rarity) ItemName() string {
	if r < Common || r > Legendary {
		return "Unknown"
	}
	return itemRarityNames[r]
}

// AllRarities lists tiers in ascending order.
func AllRarities() []Rarity {
	return []Rarity{Common, Rare, Epic, Legendary}
}

// LuckBonus is the additive shift applied to the rarity roll: min(0.05, luck*0.005).
func LuckBonus(luck float64) float64 {
	return math.Min(maxLuckBonus, luck*luckBonusPerPoint)
}

// DetermineRarity rolls a tier. The luck bonus is capped, so Legendary stays
// in the 1-6% band no matter how much luck a run stacks.
func DetermineRarity(luck float64, rng RandomSource) Rarity {
	roll := orDefault(rng).Float64()
	return RarityFor(roll, luck)
}

// RarityFor maps an already drawn roll to a tier.
func RarityFor(roll, luck float64) Rarity {
	effective := math.Min(1.0, roll+LuckBonus(luck))
	switch {
	case effective > legendaryAbove:
		return Legendary
	case effective > epicAbove:
		return Epic
	case effective > rareAbove:
		return Rare
	default:
		return Common
	}
}

// RarityMultiplier scales generated reward magnitudes.
func RarityMultiplier(r Rarity) float64 {
	switch r {
	case Rare:
		return 1.5
	case Epic:
		return 2.25
	case Legendary:
		return 3.5
	default:
		return 1.0
	}
}
