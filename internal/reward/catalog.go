package reward

import (
	"math"

	"github.com/xtding233/survival-rewards/internal/gacha"
)

// GlassCannon halves current health every time it is applied.
const GlassCannon = "Glass Cannon"

var weaponMods = []string{
	"Piercing Rounds",
	"Explosive Tips",
	"Rapid Reload",
	"Split Shot",
	"Homing",
	"Frost Coating",
	"Venom Coating",
	"Ricochet",
}

var synergies = []string{
	GlassCannon,
	"Berserker",
	"Fortress",
	"Elemental Mastery",
	"Chain Reaction",
	"Overcharge",
	"Bloodlust",
	"Momentum",
}

var synergyTags = map[string][]string{
	GlassCannon:         {"offense", "risk"},
	"Berserker":         {"offense", "low-health"},
	"Fortress":          {"defense"},
	"Elemental Mastery": {"fire", "ice", "poison"},
	"Chain Reaction":    {"aoe"},
	"Overcharge":        {"attack-speed"},
	"Bloodlust":         {"lifesteal", "offense"},
	"Momentum":          {"mobility"},
}

var shrines = []string{
	"Shrine of Power",
	"Shrine of Haste",
	"Shrine of Fortune",
	"Shrine of Healing",
	"Shrine of Wisdom",
	"Shrine of Protection",
	"Shrine of Fury",
	"Shrine of Plenty",
}

const (
	shrineBaseCooldown = 30.0
	shrineMinCooldown  = 10.0
)

// WeaponMods, Synergies and Shrines expose the name lists.
func WeaponMods() []string { return append([]string(nil), weaponMods...) }
func Synergies() []string  { return append([]string(nil), synergies...) }
func Shrines() []string    { return append([]string(nil), shrines...) }

// UpgradeLevels maps rarity to weapon levels. Kept flat to avoid power spikes.
func UpgradeLevels(r gacha.Rarity) int {
	switch r {
	case gacha.Epic:
		return 2
	case gacha.Legendary:
		return 3
	default:
		return 1
	}
}

// WeaponUpgrade generates a level upgrade for the equipped weapon.
func (g *Generator) WeaponUpgrade(level int, luck float64, _ Exclusions) Reward {
	rarity := g.rarity(luck)
	n := UpgradeLevels(rarity)
	return New("weapon_upgrade_"+g.newID(), "Weapon Upgrade", WeaponUpgrade, rarity, float64(n),
		WithTags("weapon"))
}

// WeaponMod generates a modifier for the equipped weapon.
func (g *Generator) WeaponMod(level int, luck float64, _ Exclusions) Reward {
	rarity := g.rarity(luck)
	name := gacha.PickUniform(weaponMods, g.rng)
	value := scale(1.0+float64(level)*0.1, rarity, luck)
	return New(g.id("mod", name), name, WeaponMod, rarity, value, WithTags("weapon", "mod"))
}

// Synergy generates a build-defining synergy.
func (g *Generator) Synergy(level int, luck float64, _ Exclusions) Reward {
	rarity := g.rarity(luck)
	name := gacha.PickUniform(synergies, g.rng)
	value := scale(1.5+float64(level)*0.1, rarity, luck)
	return New(g.id("synergy", name), name, Synergy, rarity, value, WithTags(synergyTags[name]...))
}

// ShrineCooldown is max(10, (30 - level*0.5) / rarity multiplier) seconds.
func ShrineCooldown(level int, r gacha.Rarity) float64 {
	return math.Max(shrineMinCooldown, (shrineBaseCooldown-float64(level)*0.5)/gacha.RarityMultiplier(r))
}

// Shrine generates a shrine buff; its value is the cooldown in seconds.
func (g *Generator) Shrine(level int, luck float64, _ Exclusions) Reward {
	rarity := g.rarity(luck)
	name := gacha.PickUniform(shrines, g.rng)
	return New(g.id("shrine", name), name, Shrine, rarity, ShrineCooldown(level, rarity),
		WithTags("shrine"))
}
