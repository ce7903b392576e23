// resolve.go
package game

import (
	"maps"

	"github.com/xtding233/survival-rewards/internal/reward"
	"github.com/xtding233/survival-rewards/internal/run"
	"github.com/xtding233/survival-rewards/internal/stats"
	"github.com/xtding233/survival-rewards/internal/weapon"
)

// Resolver turns a mode name into validated params.
type Resolver interface {
	// Returns merged RawConfig and normalized Params
	Resolve(mode string) (RawConfig, Params, error)
}

var _ Resolver = (*Loader)(nil)

// Resolve loads, validates and normalizes the config for mode.
func (l *Loader) Resolve(mode string) (RawConfig, Params, error) {
	raw, err := l.LoadMerged(mode)
	if err != nil {
		return RawConfig{}, Params{}, err
	}
	if err := ValidateRaw(raw); err != nil {
		return raw, Params{}, err
	}
	return raw, Normalize(raw), nil
}

// Normalize fills unset fields with the built-in defaults.
func Normalize(raw RawConfig) Params {
	def := run.DefaultConfig()
	p := Params{
		Rerolls:  def.Rerolls,
		Baseline: make(map[string]float64, len(def.Baseline)),
		Choices:  def.Choices,
		BaseXP:   def.Leveling.BaseXP,
		Growth:   def.Leveling.Growth,
		Weapon:   raw.Run.Weapon,
		Version:  raw.Version,
	}
	for k, v := range def.Baseline {
		p.Baseline[string(k)] = v
	}
	maps.Copy(p.Baseline, raw.Run.Baseline)
	if raw.Run.Rerolls != nil {
		p.Rerolls = *raw.Run.Rerolls
	}
	if r := raw.Rewards; r != nil {
		if r.Choices != nil {
			p.Choices = *r.Choices
		}
		if r.ExcludeRegeneration != nil {
			p.ExcludeRegeneration = *r.ExcludeRegeneration
		}
		if r.ExcludeVampire != nil {
			p.ExcludeVampire = *r.ExcludeVampire
		}
	}
	if lv := raw.Leveling; lv != nil {
		if lv.BaseXP != nil {
			p.BaseXP = *lv.BaseXP
		}
		if lv.Growth != nil {
			p.Growth = *lv.Growth
		}
	}
	return p
}

// RunConfig converts params into the starting state of a run. Params are
// expected to have passed ValidateRaw; unknown keys are dropped.
func (p Params) RunConfig() run.Config {
	baseline := make(map[stats.Stat]float64, len(p.Baseline))
	for k, v := range p.Baseline {
		if s, ok := stats.Parse(k); ok {
			baseline[s] = v
		}
	}
	var arch weapon.Archetype
	if p.Weapon != "" {
		arch, _ = weapon.ParseArchetype(p.Weapon)
	}
	return run.Config{
		Rerolls:  p.Rerolls,
		Baseline: baseline,
		Weapon:   arch,
		Choices:  p.Choices,
		Exclusions: reward.Exclusions{
			Regeneration: p.ExcludeRegeneration,
			Vampire:      p.ExcludeVampire,
		},
		Leveling: run.Leveling{BaseXP: p.BaseXP, Growth: p.Growth},
	}
}
