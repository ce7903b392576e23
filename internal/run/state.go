package run

import (
	"math"

	"github.com/xtding233/survival-rewards/internal/reward"
	"github.com/xtding233/survival-rewards/internal/stats"
	"github.com/xtding233/survival-rewards/internal/weapon"
)

// Result reports what applying a reward changed.
type Result struct {
	Reward reward.Reward
	// Stat and NewValue are set when the ledger changed.
	Stat     stats.Stat
	NewValue float64
	// WeaponLevel is the level after an upgrade; 0 when no weapon was equipped.
	WeaponLevel int
	// Skipped is true when the reward needed something the run lacks.
	Skipped bool
}

// touchesAttributes reports whether the change must be pushed to players.
func (r Result) touchesAttributes() bool {
	switch r.Stat {
	case stats.Health, stats.Speed, stats.Armor:
		return true
	}
	return false
}

// progress is the state shared by Run and TeamRun. Callers serialize access,
// except for the ledger which locks itself.
type progress struct {
	cfg      Config
	ledger   *stats.Ledger
	weapon   *weapon.Weapon
	rewards  []reward.Reward
	rerolls  int
	level    int
	xp       float64
	leveling Leveling
}

func newProgress(cfg Config) (*progress, error) {
	cfg = cfg.normalized()
	p := &progress{
		cfg:      cfg,
		ledger:   stats.NewLedger(cfg.Baseline),
		rerolls:  cfg.Rerolls,
		level:    1,
		leveling: cfg.Leveling,
	}
	if cfg.Weapon != "" {
		w, err := weapon.New(cfg.Weapon)
		if err != nil {
			return nil, err
		}
		p.weapon = w
	}
	return p, nil
}

// apply dispatches on the reward category and records the reward.
func (p *progress) apply(r reward.Reward) Result {
	res := Result{Reward: r}
	switch r.Category() {
	case reward.StatBoost:
		if r.Stat() == stats.None {
			res.Skipped = true
			break
		}
		res.Stat = r.Stat()
		res.NewValue = p.ledger.Add(r.Stat(), r.Value())
	case reward.WeaponUpgrade:
		if p.weapon == nil {
			res.Skipped = true
			break
		}
		res.WeaponLevel = p.weapon.UpgradeTimes(r.Levels())
	case reward.Synergy:
		if r.Name() == reward.GlassCannon {
			res.Stat = stats.Health
			res.NewValue = p.ledger.Scale(stats.Health, 0.5)
		}
	}
	p.rewards = append(p.rewards, r)
	return res
}

func (p *progress) equip(a weapon.Archetype) error {
	w, err := weapon.New(a)
	if err != nil {
		return err
	}
	p.weapon = w
	return nil
}

func (p *progress) reroll() bool {
	if p.rerolls <= 0 {
		return false
	}
	p.rerolls--
	return true
}

// xpToNext is the experience needed to leave the current level.
func (p *progress) xpToNext() float64 {
	return p.leveling.BaseXP * math.Pow(p.leveling.Growth, float64(p.level-1))
}

// addExperience scales amount by the xp_multiplier stat and returns the
// number of levels gained.
func (p *progress) addExperience(amount float64) int {
	if amount <= 0 {
		return 0
	}
	mult := p.ledger.Get(stats.XPMultiplier)
	if mult <= 0 {
		mult = 1
	}
	p.xp += amount * mult
	gained := 0
	for p.xp >= p.xpToNext() {
		p.xp -= p.xpToNext()
		p.level++
		gained++
	}
	return gained
}

func (p *progress) attributes() Attributes {
	return Attributes{
		MaxHealth:  p.ledger.Get(stats.Health),
		SpeedScale: p.ledger.Get(stats.Speed),
		Armor:      p.ledger.Get(stats.Armor),
	}
}

func (p *progress) rewardContext(src reward.Source) reward.Context {
	return reward.Context{
		Source:     src,
		HasWeapon:  p.weapon != nil,
		Exclusions: p.cfg.Exclusions,
	}
}

func (p *progress) collected() []reward.Reward {
	return append([]reward.Reward(nil), p.rewards...)
}

// WeaponState is a read-only copy of the equipped weapon.
type WeaponState struct {
	Archetype  weapon.Archetype
	Level      int
	Attributes weapon.Attributes
}

func (p *progress) weaponState() (WeaponState, bool) {
	if p.weapon == nil {
		return WeaponState{}, false
	}
	return WeaponState{
		Archetype:  p.weapon.Archetype(),
		Level:      p.weapon.Level(),
		Attributes: p.weapon.Attributes(),
	}, true
}
