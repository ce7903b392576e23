package run

import (
	"log/slog"
	"maps"
	"time"

	"github.com/xtding233/survival-rewards/internal/reward"
	"github.com/xtding233/survival-rewards/internal/stats"
	"github.com/xtding233/survival-rewards/internal/weapon"
)

// DefaultRerolls is the reroll budget a run starts with.
const DefaultRerolls = 2

// Leveling controls the experience curve: reaching level n+1 from n costs
// BaseXP * Growth^(n-1).
type Leveling struct {
	BaseXP float64
	Growth float64
}

// Config is the starting state of a Run or TeamRun. Start from DefaultConfig:
// a zero Rerolls means no rerolls, while zero Choices and Leveling fall back
// to the defaults.
type Config struct {
	Rerolls    int
	Baseline   map[stats.Stat]float64
	Weapon     weapon.Archetype // empty means unarmed
	Choices    int              // candidates per selection menu
	Exclusions reward.Exclusions
	Leveling   Leveling
}

// DefaultBaseline is the stat ledger every run starts from.
func DefaultBaseline() map[stats.Stat]float64 {
	return map[stats.Stat]float64{
		stats.Health:       20,
		stats.Damage:       1,
		stats.Speed:        1,
		stats.Armor:        0,
		stats.CritChance:   0.05,
		stats.CritDamage:   1.5,
		stats.Luck:         0,
		stats.XPMultiplier: 1,
		stats.Difficulty:   1,
		stats.Regeneration: 0,
		stats.DropRate:     0,
		stats.PickupRange:  0,
		stats.JumpHeight:   0,
	}
}

func DefaultConfig() Config {
	return Config{
		Rerolls:  DefaultRerolls,
		Baseline: DefaultBaseline(),
		Choices:  3,
		Leveling: Leveling{BaseXP: 100, Growth: 1.25},
	}
}

// normalized fills zero fields from DefaultConfig.
func (c Config) normalized() Config {
	def := DefaultConfig()
	if c.Rerolls < 0 {
		c.Rerolls = 0
	}
	if c.Baseline == nil {
		c.Baseline = def.Baseline
	} else {
		c.Baseline = maps.Clone(c.Baseline)
	}
	if c.Choices <= 0 {
		c.Choices = def.Choices
	}
	if c.Leveling.BaseXP <= 0 {
		c.Leveling.BaseXP = def.Leveling.BaseXP
	}
	if c.Leveling.Growth < 1 {
		c.Leveling.Growth = def.Leveling.Growth
	}
	return c
}

type settings struct {
	automation   Automation
	participants Participants
	clock        func() time.Time
	logger       *slog.Logger
}

// Option customizes NewRun and NewTeamRun.
type Option func(*settings)

// WithAutomation sets the combat loop toggle. Only team runs use it.
func WithAutomation(a Automation) Option {
	return func(s *settings) {
		if a != nil {
			s.automation = a
		}
	}
}

// WithParticipants sets where team attribute changes are pushed.
func WithParticipants(p Participants) Option {
	return func(s *settings) {
		if p != nil {
			s.participants = p
		}
	}
}

// WithClock replaces time.Now for selection timestamps.
func WithClock(clock func() time.Time) Option {
	return func(s *settings) {
		if clock != nil {
			s.clock = clock
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

func newSettings(opts []Option) settings {
	s := settings{
		automation:   noopAutomation{},
		participants: noopParticipants{},
		clock:        time.Now,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
