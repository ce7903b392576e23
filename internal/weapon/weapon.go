package weapon

import (
	"fmt"
	"math"
)

// Weapon is an equipped weapon and its progression. It is owned by exactly one
// run, which serializes access to it.
type Weapon struct {
	profile Profile
	level   int
	attrs   Attributes
}

// New creates a level 1 weapon with the archetype's base values.
func New(a Archetype) (*Weapon, error) {
	p, ok := ProfileOf(a)
	if !ok {
		return nil, fmt.Errorf("unknown weapon archetype %q", a)
	}
	return &Weapon{profile: p, level: 1, attrs: p.Base}, nil
}

func (w *Weapon) Archetype() Archetype   { return w.profile.Archetype }
func (w *Weapon) Level() int             { return w.level }
func (w *Weapon) Attributes() Attributes { return w.attrs }
func (w *Weapon) Profile() Profile       { return w.profile }

// Upgrade advances the weapon one level.
func (w *Weapon) Upgrade() {
	p := w.profile
	caps := p.Caps()
	w.level++

	w.attrs.Damage *= p.DamageGrowth

	if w.level%2 == 0 {
		w.attrs.Range = math.Min(w.attrs.Range*(1+rangeRate), caps.Range)
	}

	w.attrs.AttackSpeed = math.Min(w.attrs.AttackSpeed*(1+p.AttackSpeedRate), caps.AttackSpeed)

	if p.ProjectileEvery > 0 && w.level%p.ProjectileEvery == 0 {
		w.attrs.Projectiles = min(w.attrs.Projectiles+1, caps.Projectiles)
	}

	w.attrs.AOE = math.Min(w.attrs.AOE*(1+p.AOERate), caps.AOE)
}

// UpgradeTimes applies n upgrades and returns the new level.
func (w *Weapon) UpgradeTimes(n int) int {
	for i := 0; i < n; i++ {
		w.Upgrade()
	}
	return w.level
}

func (w *Weapon) String() string {
	a := w.attrs
	return fmt.Sprintf("%s Lv.%d (dmg %.2f, range %.2f, speed %.2f, proj %d, aoe %.2f)",
		w.profile.Archetype, w.level, a.Damage, a.Range, a.AttackSpeed, a.Projectiles, a.AOE)
}
