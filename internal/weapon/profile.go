package weapon

import (
	"fmt"
	"math"
	"strings"
)

// Archetype is one of the seven fixed weapon kinds.
type Archetype string

const (
	TNT       Archetype = "tnt"
	Fireball  Archetype = "fireball"
	Potion    Archetype = "potion"
	Bow       Archetype = "bow"
	Trident   Archetype = "trident"
	Lightning Archetype = "lightning"
	Snowball  Archetype = "snowball"
)

// Attributes are the five derived combat fields of a weapon.
type Attributes struct {
	Damage      float64
	Range       float64
	AttackSpeed float64
	Projectiles int
	AOE         float64
}

// Profile holds an archetype's base values and per-level tuning.
// A zero cap multiple means the field is uncapped.
type Profile struct {
	Archetype Archetype
	Base      Attributes

	DamageGrowth float64 // multiplier per level, never capped

	AttackSpeedRate float64
	AttackSpeedCap  float64 // multiple of base

	ProjectileEvery int // +1 projectile when level is a multiple of this
	MaxProjectiles  int // 0 = no limit

	AOERate float64
	AOECap  float64 // multiple of base
}

// range grows on even levels only
const (
	rangeRate = 0.05
	rangeCap  = 2.0
)

var profiles = map[Archetype]Profile{
	// blast
	TNT: {
		Archetype:       TNT,
		Base:            Attributes{Damage: 8, Range: 6, AttackSpeed: 0.5, Projectiles: 1, AOE: 3},
		DamageGrowth:    1.18,
		AttackSpeedRate: 0.12,
		ProjectileEvery: 3,
		AOERate:         0.07,
		AOECap:          2.0,
	},
	Fireball: {
		Archetype:       Fireball,
		Base:            Attributes{Damage: 6, Range: 12, AttackSpeed: 0.8, Projectiles: 1, AOE: 2},
		DamageGrowth:    1.18,
		AttackSpeedRate: 0.12,
		ProjectileEvery: 3,
		AOERate:         0.07,
		AOECap:          2.0,
	},
	Potion: {
		Archetype:       Potion,
		Base:            Attributes{Damage: 4, Range: 8, AttackSpeed: 0.7, Projectiles: 1, AOE: 2.5},
		DamageGrowth:    1.12,
		AttackSpeedRate: 0.10,
		ProjectileEvery: 3,
		AOERate:         0.05,
		AOECap:          1.5,
	},
	// rapid-fire
	Bow: {
		Archetype:       Bow,
		Base:            Attributes{Damage: 3, Range: 16, AttackSpeed: 1.5, Projectiles: 1, AOE: 0.5},
		DamageGrowth:    1.15,
		AttackSpeedRate: 0.05,
		AttackSpeedCap:  2.0,
		ProjectileEvery: 5,
		MaxProjectiles:  3,
		AOERate:         0.05,
		AOECap:          1.5,
	},
	// throw
	Trident: {
		Archetype:       Trident,
		Base:            Attributes{Damage: 5, Range: 10, AttackSpeed: 0.9, Projectiles: 1, AOE: 1},
		DamageGrowth:    1.15,
		AttackSpeedRate: 0.05,
		AttackSpeedCap:  1.5,
		ProjectileEvery: 3,
		AOERate:         0.03,
		AOECap:          1.3,
	},
	// burst
	Lightning: {
		Archetype:       Lightning,
		Base:            Attributes{Damage: 10, Range: 14, AttackSpeed: 0.4, Projectiles: 1, AOE: 1.5},
		DamageGrowth:    1.10,
		AttackSpeedRate: 0.05,
		AttackSpeedCap:  1.5,
		ProjectileEvery: 3,
		AOERate:         0.05,
		AOECap:          1.5,
	},
	Snowball: {
		Archetype:       Snowball,
		Base:            Attributes{Damage: 2, Range: 10, AttackSpeed: 1.2, Projectiles: 1, AOE: 0.5},
		DamageGrowth:    1.15,
		AttackSpeedRate: 0.10,
		ProjectileEvery: 3,
		AOERate:         0.05,
		AOECap:          1.5,
	},
}

// Archetypes lists every archetype in a stable order.
func Archetypes() []Archetype {
	return []Archetype{TNT, Fireball, Potion, Bow, Trident, Lightning, Snowball}
}

// ProfileOf returns the tuning table entry for a.
func ProfileOf(a Archetype) (Profile, bool) {
	p, ok := profiles[a]
	return p, ok
}

// ParseArchetype accepts the lower-case archetype name.
func ParseArchetype(s string) (Archetype, error) {
	a := Archetype(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := profiles[a]; !ok {
		return "", fmt.Errorf("unknown weapon archetype %q", s)
	}
	return a, nil
}

// Caps returns the upper bound of each field. Uncapped fields report +Inf
// (or math.MaxInt for projectiles).
func (p Profile) Caps() Attributes {
	c := Attributes{
		Damage:      math.Inf(1),
		Range:       p.Base.Range * rangeCap,
		AttackSpeed: math.Inf(1),
		Projectiles: math.MaxInt,
		AOE:         p.Base.AOE * p.AOECap,
	}
	if p.AttackSpeedCap > 0 {
		c.AttackSpeed = p.Base.AttackSpeed * p.AttackSpeedCap
	}
	if p.MaxProjectiles > 0 {
		c.Projectiles = p.MaxProjectiles
	}
	return c
}
