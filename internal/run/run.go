package run

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/xtding233/survival-rewards/internal/reward"
	"github.com/xtding233/survival-rewards/internal/stats"
	"github.com/xtding233/survival-rewards/internal/weapon"
)

// Run is one participant's progression through a wave-survival session.
type Run struct {
	id     string
	player string

	mu     sync.Mutex
	state  *progress
	logger *slog.Logger
}

// NewRun starts a solo run for player.
func NewRun(player string, cfg Config, opts ...Option) (*Run, error) {
	p, err := newProgress(cfg)
	if err != nil {
		return nil, err
	}
	s := newSettings(opts)
	id := uuid.NewString()
	return &Run{
		id:     id,
		player: player,
		state:  p,
		logger: s.logger.With(slog.String("run", id), slog.String("player", player)),
	}, nil
}

func (r *Run) ID() string            { return r.id }
func (r *Run) Player() string        { return r.player }
func (r *Run) Ledger() *stats.Ledger { return r.state.ledger }

// Apply records a chosen reward and applies its effect.
func (r *Run) Apply(rw reward.Reward) Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := r.state.apply(rw)
	logApplied(r.logger, res)
	return res
}

// Equip replaces the run's weapon with a fresh level 1 weapon.
func (r *Run) Equip(a weapon.Archetype) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.equip(a)
}

func (r *Run) Weapon() (WeaponState, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.weaponState()
}

// Rewards returns the collected rewards in the order they were applied.
func (r *Run) Rewards() []reward.Reward {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.collected()
}

func (r *Run) Rerolls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.rerolls
}

// Reroll spends one reroll. It returns false when none are left.
func (r *Run) Reroll() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.reroll()
}

func (r *Run) Level() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.level
}

func (r *Run) Experience() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.xp
}

// AddExperience grants xp and returns how many levels were gained.
func (r *Run) AddExperience(xp float64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	gained := r.state.addExperience(xp)
	if gained > 0 {
		r.logger.Info("level up", slog.Int("level", r.state.level), slog.Int("gained", gained))
	}
	return gained
}

// Offer generates a selection menu sized by the run's config.
func (r *Run) Offer(gen *reward.Generator, src reward.Source) []reward.Reward {
	r.mu.Lock()
	ctx := r.state.rewardContext(src)
	level := r.state.level
	choices := r.state.cfg.Choices
	r.mu.Unlock()
	return gen.GenerateRewards(choices, level, r.state.ledger.Get(stats.Luck), ctx)
}

func logApplied(l *slog.Logger, res Result) {
	attrs := []any{
		slog.String("reward", res.Reward.ID()),
		slog.String("category", res.Reward.Category().String()),
		slog.String("rarity", res.Reward.Rarity().String()),
		slog.Float64("value", res.Reward.Value()),
	}
	if res.Stat != stats.None {
		attrs = append(attrs, slog.String("stat", string(res.Stat)), slog.Float64("new_value", res.NewValue))
	}
	if res.WeaponLevel > 0 {
		attrs = append(attrs, slog.Int("weapon_level", res.WeaponLevel))
	}
	if res.Skipped {
		l.Debug("reward recorded without effect", attrs...)
		return
	}
	l.Debug("reward applied", attrs...)
}
