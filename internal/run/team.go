package run

import (
	"log/slog"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/xtding233/survival-rewards/internal/reward"
	"github.com/xtding233/survival-rewards/internal/stats"
	"github.com/xtding233/survival-rewards/internal/weapon"
)

// TeamRun is a cooperative run: members share one ledger, weapon, reroll
// budget and reward list. While any member is choosing a reward the whole
// team's automation is stopped.
type TeamRun struct {
	id string

	mu      sync.Mutex
	state   *progress
	members map[string]bool // id -> online
	barrier *Barrier
	open    map[string]*Selection

	automation   Automation
	participants Participants
	clock        func() time.Time
	logger       *slog.Logger
}

// NewTeamRun starts a team run for members.
func NewTeamRun(members []string, cfg Config, opts ...Option) (*TeamRun, error) {
	p, err := newProgress(cfg)
	if err != nil {
		return nil, err
	}
	s := newSettings(opts)
	id := uuid.NewString()
	t := &TeamRun{
		id:           id,
		state:        p,
		members:      make(map[string]bool, len(members)),
		barrier:      NewBarrier(),
		open:         make(map[string]*Selection),
		automation:   s.automation,
		participants: s.participants,
		clock:        s.clock,
		logger:       s.logger.With(slog.String("team", id)),
	}
	for _, m := range members {
		t.members[m] = true
	}
	return t, nil
}

func (t *TeamRun) ID() string            { return t.id }
func (t *TeamRun) Ledger() *stats.Ledger { return t.state.ledger }
func (t *TeamRun) Barrier() *Barrier     { return t.barrier }

// Members returns member ids in sorted order.
func (t *TeamRun) Members() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.memberIDs()
}

// Join adds a member. A member joining while the team is paused is paused too.
func (t *TeamRun) Join(memberID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.members[memberID]; ok {
		t.members[memberID] = true
		return
	}
	t.members[memberID] = true
	if t.barrier.IsAnyoneParticipating() {
		t.automation.StopAutomation(memberID)
	}
	t.logger.Info("member joined", slog.String("member", memberID))
}

// Leave removes a member from the team and closes any selection they had open.
func (t *TeamRun) Leave(memberID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.leaveSelectionLocked(memberID)
	delete(t.members, memberID)
	t.logger.Info("member left", slog.String("member", memberID))
}

// Disconnect marks a member offline. An open selection is treated as closed
// so the team cannot stay paused on a member who is gone.
func (t *TeamRun) Disconnect(memberID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.members[memberID]; ok {
		t.members[memberID] = false
	}
	t.leaveSelectionLocked(memberID)
}

// Reconnect marks a member online again.
func (t *TeamRun) Reconnect(memberID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.members[memberID]; ok {
		t.members[memberID] = true
	}
}

// Paused reports whether the team's automation is currently stopped.
func (t *TeamRun) Paused() bool {
	return t.barrier.IsAnyoneParticipating()
}

// EnterSelection marks memberID as choosing a reward. The first member to
// enter stops automation for the whole team. Close the returned Selection on
// menu close and on disconnect; extra closes are ignored. Entering again while
// a selection is open returns the open one.
func (t *TeamRun) EnterSelection(memberID string) *Selection {
	t.mu.Lock()
	defer t.mu.Unlock()
	if s, ok := t.open[memberID]; ok {
		return s
	}
	at := t.clock()
	wasPaused := t.barrier.IsAnyoneParticipating()
	t.barrier.Enter(memberID, at)
	if !wasPaused && t.barrier.IsAnyoneParticipating() {
		t.logger.Info("team paused for reward selection", slog.String("member", memberID))
		for _, id := range t.memberIDs() {
			t.automation.StopAutomation(id)
		}
	}
	s := &Selection{team: t, memberID: memberID, enteredAt: at}
	t.open[memberID] = s
	return s
}

// LeaveSelection marks memberID as done choosing. The last member to leave
// restarts automation for the whole team.
func (t *TeamRun) LeaveSelection(memberID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.leaveSelectionLocked(memberID)
}

// closeSelection leaves only if s is still the member's open selection, so a
// stale handle cannot end a newer one.
func (t *TeamRun) closeSelection(s *Selection) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.open[s.memberID] != s {
		return
	}
	t.leaveSelectionLocked(s.memberID)
}

func (t *TeamRun) leaveSelectionLocked(memberID string) {
	delete(t.open, memberID)
	wasPaused := t.barrier.IsAnyoneParticipating()
	t.barrier.Leave(memberID)
	if wasPaused && !t.barrier.IsAnyoneParticipating() {
		t.logger.Info("team resumed", slog.String("member", memberID))
		for _, id := range t.memberIDs() {
			t.automation.StartAutomation(id)
		}
	}
}

// Apply records a reward for the team. Changes to health, speed or armor are
// computed once from the shared ledger and pushed to every online member.
func (t *TeamRun) Apply(rw reward.Reward) Result {
	t.mu.Lock()
	defer t.mu.Unlock()
	res := t.state.apply(rw)
	logApplied(t.logger, res)
	if res.touchesAttributes() {
		attrs := t.state.attributes()
		for _, id := range t.memberIDs() {
			if t.members[id] {
				t.participants.ApplyAttributes(id, attrs)
			}
		}
	}
	return res
}

func (t *TeamRun) Equip(a weapon.Archetype) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.equip(a)
}

func (t *TeamRun) Weapon() (WeaponState, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.weaponState()
}

func (t *TeamRun) Rewards() []reward.Reward {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.collected()
}

func (t *TeamRun) Rerolls() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.rerolls
}

// Reroll spends one of the team's shared rerolls.
func (t *TeamRun) Reroll() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.reroll()
}

func (t *TeamRun) Level() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.level
}

// AddExperience grants shared xp and returns how many levels were gained.
func (t *TeamRun) AddExperience(xp float64) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	gained := t.state.addExperience(xp)
	if gained > 0 {
		t.logger.Info("team level up", slog.Int("level", t.state.level), slog.Int("gained", gained))
	}
	return gained
}

// Offer generates a selection menu sized by the team's config.
func (t *TeamRun) Offer(gen *reward.Generator, src reward.Source) []reward.Reward {
	t.mu.Lock()
	ctx := t.state.rewardContext(src)
	level := t.state.level
	choices := t.state.cfg.Choices
	t.mu.Unlock()
	return gen.GenerateRewards(choices, level, t.state.ledger.Get(stats.Luck), ctx)
}

func (t *TeamRun) memberIDs() []string {
	return slices.Sorted(maps.Keys(t.members))
}

// Selection is one member's open reward menu.
type Selection struct {
	team      *TeamRun
	memberID  string
	enteredAt time.Time
	once      sync.Once
}

func (s *Selection) MemberID() string     { return s.memberID }
func (s *Selection) EnteredAt() time.Time { return s.enteredAt }

// Choose applies r to the team and closes the selection.
func (s *Selection) Choose(r reward.Reward) Result {
	res := s.team.Apply(r)
	s.Close()
	return res
}

// Close leaves the selection. Safe to call from both the menu close and the
// disconnect path; only the first call has an effect.
func (s *Selection) Close() {
	s.once.Do(func() {
		s.team.closeSelection(s)
	})
}
