package reward

import (
	"fmt"
	"strings"

	"github.com/xtding233/survival-rewards/internal/gacha"
	"github.com/xtding233/survival-rewards/internal/stats"
)

// Category decides how a reward is applied to a run.
type Category int

const (
	StatBoost Category = iota
	WeaponUpgrade
	WeaponMod
	Aura
	Shrine
	Synergy
)

var categoryNames = [...]string{"StatBoost", "WeaponUpgrade", "WeaponMod", "Aura", "Shrine", "Synergy"}

func (c Category) String() string {
	if c < StatBoost || c > Synergy {
		return "Unknown"
	}
	return categoryNames[c]
}

// Categories lists every category.
func Categories() []Category {
	return []Category{StatBoost, WeaponUpgrade, WeaponMod, Aura, Shrine, Synergy}
}

// Reward is one generated unit of progression. It is a value type and never
// changes after construction.
//
// Value depends on the category: a stat delta for StatBoost, a level count for
// WeaponUpgrade, a multiplier for WeaponMod, Aura and Synergy, and a cooldown
// in seconds for Shrine.
type Reward struct {
	id          string
	name        string
	description string
	rarity      gacha.Rarity
	category    Category
	value       float64
	stat        stats.Stat
	tags        []string
}

// Option customizes New.
type Option func(*Reward)

// WithStat sets the stat a StatBoost adds to.
func WithStat(s stats.Stat) Option { return func(r *Reward) { r.stat = s } }

// WithDescription overrides the generated description.
func WithDescription(d string) Option { return func(r *Reward) { r.description = d } }

// WithTags attaches display labels.
func WithTags(tags ...string) Option {
	return func(r *Reward) { r.tags = append([]string(nil), tags...) }
}

// New builds a reward. A StatBoost without an explicit stat resolves it from
// the id with stats.Resolve.
func New(id, name string, c Category, rarity gacha.Rarity, value float64, opts ...Option) Reward {
	r := Reward{id: id, name: name, category: c, rarity: rarity, value: value}
	for _, opt := range opts {
		opt(&r)
	}
	if c == StatBoost && r.stat == stats.None {
		r.stat, _ = stats.Resolve(id)
	}
	if r.description == "" {
		r.description = describe(r)
	}
	return r
}

func (r Reward) ID() string             { return r.id }
func (r Reward) Name() string           { return r.name }
func (r Reward) Description() string    { return r.description }
func (r Reward) Rarity() gacha.Rarity   { return r.rarity }
func (r Reward) Category() Category     { return r.category }
func (r Reward) Value() float64         { return r.value }
func (r Reward) Stat() stats.Stat       { return r.stat }
func (r Reward) Tags() []string         { return append([]string(nil), r.tags...) }
func (r Reward) IsZero() bool           { return r.id == "" }
func (r Reward) HasTag(tag string) bool { return containsFold(r.tags, tag) }

// Levels is the upgrade count carried by a WeaponUpgrade.
func (r Reward) Levels() int {
	if r.category != WeaponUpgrade || r.value < 0 {
		return 0
	}
	return int(r.value)
}

// LifestealPercent is the lifesteal granted by a Vampire Aura.
func (r Reward) LifestealPercent() float64 {
	if r.category != Aura || r.name != VampireAura {
		return 0
	}
	return r.value * lifestealPerValue
}

func (r Reward) String() string {
	return fmt.Sprintf("[%s] %s: %s", r.rarity, r.name, r.description)
}

func describe(r Reward) string {
	switch r.category {
	case StatBoost:
		if r.stat == stats.Difficulty {
			return fmt.Sprintf("+%.2f Difficulty (more enemies, better loot)", r.value)
		}
		return fmt.Sprintf("+%.2f %s", r.value, r.stat.Label())
	case WeaponUpgrade:
		if r.Levels() == 1 {
			return "Upgrade your weapon by 1 level"
		}
		return fmt.Sprintf("Upgrade your weapon by %d levels", r.Levels())
	case WeaponMod:
		return fmt.Sprintf("%s with %.2fx strength", r.name, r.value)
	case Aura:
		if r.name == VampireAura {
			return fmt.Sprintf("Heal for %.1f%% of damage dealt", r.value*lifestealPerValue)
		}
		return fmt.Sprintf("%s with %.2fx strength", r.name, r.value)
	case Shrine:
		return fmt.Sprintf("%s, usable every %.0fs", r.name, r.value)
	case Synergy:
		return fmt.Sprintf("%s synergy with %.2fx strength", r.name, r.value)
	}
	return r.name
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
