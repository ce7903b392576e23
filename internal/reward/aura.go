package reward

import (
	"math"

	"github.com/xtding233/survival-rewards/internal/gacha"
)

const (
	VampireAura = "Vampire Aura"
	ShieldAura  = "Shield Aura"
	FlameAura   = "Flame Aura"
	FrostAura   = "Frost Aura"
	ThornAura   = "Thorn Aura"
	HasteAura   = "Haste Aura"
	HealingAura = "Healing Aura"

	// MaxAuraValue bounds every aura; it keeps lifesteal at or below 20%.
	MaxAuraValue      = 10.0
	lifestealPerValue = 2.0
)

var auraTable = gacha.MustDistribution(
	gacha.Slice[string]{Key: VampireAura, Upper: 0.25},
	gacha.Slice[string]{Key: ShieldAura, Upper: 0.40},
	gacha.Slice[string]{Key: FlameAura, Upper: 0.55},
	gacha.Slice[string]{Key: FrostAura, Upper: 0.70},
	gacha.Slice[string]{Key: ThornAura, Upper: 0.80},
	gacha.Slice[string]{Key: HasteAura, Upper: 0.90},
	gacha.Slice[string]{Key: HealingAura, Upper: 1.0},
)

// Without vampire its weight goes to shield only.
var auraTableNoVampire = gacha.MustDistribution(
	gacha.Slice[string]{Key: ShieldAura, Upper: 0.40},
	gacha.Slice[string]{Key: FlameAura, Upper: 0.55},
	gacha.Slice[string]{Key: FrostAura, Upper: 0.70},
	gacha.Slice[string]{Key: ThornAura, Upper: 0.80},
	gacha.Slice[string]{Key: HasteAura, Upper: 0.90},
	gacha.Slice[string]{Key: HealingAura, Upper: 1.0},
)

var auraTags = map[string][]string{
	VampireAura: {"aura", "lifesteal"},
	ShieldAura:  {"aura", "defense"},
	FlameAura:   {"aura", "fire"},
	FrostAura:   {"aura", "ice"},
	ThornAura:   {"aura", "reflect"},
	HasteAura:   {"aura", "mobility"},
	HealingAura: {"aura", "sustain"},
}

// AuraBase is the pre-rarity, pre-luck aura strength.
func AuraBase(level int) float64 {
	return 0.5 + float64(level)*0.05
}

// Aura generates a passive aura.
func (g *Generator) Aura(level int, luck float64, ex Exclusions) Reward {
	rarity := g.rarity(luck)

	var name string
	if ex.Vampire {
		name = gacha.SampleExcluding(auraTableNoVampire, g.rng, VampireAura, gacha.DefaultMaxTries, ShieldAura)
	} else {
		name = auraTable.Pick(g.rng)
	}

	value := math.Min(MaxAuraValue, scale(AuraBase(level), rarity, luck))
	return New(g.id("aura", name), name, Aura, rarity, value, WithTags(auraTags[name]...))
}
