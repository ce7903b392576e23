package run

import (
	"fmt"
	"testing"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/xtding233/survival-rewards/internal/stats"
	"github.com/xtding233/survival-rewards/internal/weapon"
)

func newTestTeam(t *testing.T, members []string, opts ...Option) (*TeamRun, *recordingAutomation, *recordingParticipants) {
	t.Helper()
	auto := newRecordingAutomation()
	parts := newRecordingParticipants()
	opts = append([]Option{WithAutomation(auto), WithParticipants(parts)}, opts...)
	team, err := NewTeamRun(members, DefaultConfig(), opts...)
	if err != nil {
		t.Fatalf("NewTeamRun: %v", err)
	}
	return team, auto, parts
}

func TestTeamBarrierEdges(t *testing.T) {
	team, auto, _ := newTestTeam(t, []string{"A", "B"})

	a := team.EnterSelection("A")
	if stops, _ := auto.counts("A"); stops != 1 {
		t.Fatalf("first enter should stop A once, got %d", stops)
	}
	if stops, _ := auto.counts("B"); stops != 1 {
		t.Fatalf("first enter should stop B once, got %d", stops)
	}

	b := team.EnterSelection("B")
	a.Close()
	if !team.Paused() {
		t.Fatalf("B is still selecting; team must stay paused")
	}
	if _, starts := auto.counts("A"); starts != 0 {
		t.Fatalf("intermediate leave restarted automation")
	}
	if auto.total() != 2 {
		t.Fatalf("expected only the two stop events so far, got %d", auto.total())
	}

	b.Close()
	if team.Paused() {
		t.Fatalf("team should resume once nobody is selecting")
	}
	for _, id := range []string{"A", "B"} {
		stops, starts := auto.counts(id)
		if stops != 1 || starts != 1 {
			t.Fatalf("%s: stops=%d starts=%d, want 1/1", id, stops, starts)
		}
	}
}

func TestSelectionCloseIsIdempotent(t *testing.T) {
	team, auto, _ := newTestTeam(t, []string{"A"})
	s := team.EnterSelection("A")
	s.Close()
	s.Close()
	team.LeaveSelection("A")
	if _, starts := auto.counts("A"); starts != 1 {
		t.Fatalf("starts = %d, want 1", starts)
	}
}

func TestEnterSelectionTwiceReturnsOpenSelection(t *testing.T) {
	team, auto, _ := newTestTeam(t, []string{"A"})
	first := team.EnterSelection("A")
	second := team.EnterSelection("A")
	if first != second {
		t.Fatalf("re-entering should return the open selection")
	}
	if stops, _ := auto.counts("A"); stops != 1 {
		t.Fatalf("stops = %d, want 1", stops)
	}
}

func TestDisconnectReleasesBarrier(t *testing.T) {
	team, auto, _ := newTestTeam(t, []string{"A", "B"})
	s := team.EnterSelection("A")
	team.Disconnect("A")
	if team.Paused() {
		t.Fatalf("disconnect must not leave the team paused")
	}
	// the menu close arriving after the disconnect is harmless
	s.Close()
	if _, starts := auto.counts("B"); starts != 1 {
		t.Fatalf("starts for B = %d, want 1", starts)
	}
}

func TestStaleSelectionDoesNotEndNewerOne(t *testing.T) {
	team, _, _ := newTestTeam(t, []string{"A"})
	old := team.EnterSelection("A")
	team.Disconnect("A")
	team.Reconnect("A")
	team.EnterSelection("A")
	old.Close()
	if !team.Paused() {
		t.Fatalf("stale close ended the member's new selection")
	}
}

func TestLeaveLastSelectorResumes(t *testing.T) {
	team, auto, _ := newTestTeam(t, []string{"A", "B"})
	team.EnterSelection("A")
	team.Leave("A")
	if team.Paused() {
		t.Fatalf("team paused after the selecting member left")
	}
	if _, starts := auto.counts("B"); starts != 1 {
		t.Fatalf("B should be restarted")
	}
	if got := team.Members(); len(got) != 1 || got[0] != "B" {
		t.Fatalf("members = %v", got)
	}
}

func TestJoinWhilePausedStopsNewcomer(t *testing.T) {
	team, auto, _ := newTestTeam(t, []string{"A"})
	s := team.EnterSelection("A")
	team.Join("C")
	if stops, _ := auto.counts("C"); stops != 1 {
		t.Fatalf("newcomer should be stopped while the team is paused")
	}
	s.Close()
	if _, starts := auto.counts("C"); starts != 1 {
		t.Fatalf("newcomer should be restarted with the team")
	}
}

func TestSelectionTimestamp(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	team, _, _ := newTestTeam(t, []string{"A"}, WithClock(func() time.Time { return at }))
	s := team.EnterSelection("A")
	if !s.EnteredAt().Equal(at) {
		t.Fatalf("EnteredAt = %v, want %v", s.EnteredAt(), at)
	}
	if got, ok := team.Barrier().EnteredAt("A"); !ok || !got.Equal(at) {
		t.Fatalf("barrier timestamp = %v, %v", got, ok)
	}
}

func TestTeamApplyPropagatesAttributes(t *testing.T) {
	team, _, parts := newTestTeam(t, []string{"A", "B", "C"})
	team.Disconnect("C")

	base := team.Ledger().Get(stats.Health)
	team.Apply(statBoost(stats.Health, 5))
	for _, id := range []string{"A", "B"} {
		a, n := parts.last(id)
		if n != 1 || a.MaxHealth != base+5 {
			t.Fatalf("%s: calls=%d attrs=%+v, want max health %v", id, n, a, base+5)
		}
	}
	if _, n := parts.last("C"); n != 0 {
		t.Fatalf("offline member received attributes")
	}

	team.Apply(statBoost(stats.Damage, 1))
	if _, n := parts.last("A"); n != 1 {
		t.Fatalf("damage has no external side effect and must not propagate")
	}

	team.Apply(glassCannon())
	if a, n := parts.last("B"); n != 2 || a.MaxHealth != (base+5)*0.5 {
		t.Fatalf("glass cannon: calls=%d attrs=%+v", n, a)
	}
}

func TestTeamSharesWeaponAndRerolls(t *testing.T) {
	team, _, _ := newTestTeam(t, []string{"A", "B"})
	if err := team.Equip(weapon.Potion); err != nil {
		t.Fatal(err)
	}
	sa := team.EnterSelection("A")
	sb := team.EnterSelection("B")
	sa.Choose(upgrade(2))
	sb.Choose(upgrade(1))
	w, ok := team.Weapon()
	if !ok || w.Level != 4 || w.Archetype != weapon.Potion {
		t.Fatalf("weapon = %+v, %v; want potion level 4", w, ok)
	}
	if team.Paused() {
		t.Fatalf("choosing should close both selections")
	}
	if !team.Reroll() || !team.Reroll() || team.Reroll() {
		t.Fatalf("team should share exactly two rerolls")
	}
	if len(team.Rewards()) != 2 {
		t.Fatalf("rewards = %d, want 2", len(team.Rewards()))
	}
}

func TestTeamConcurrentSessions(t *testing.T) {
	members := make([]string, 12)
	for i := range members {
		members[i] = fmt.Sprintf("m%02d", i)
	}
	team, auto, _ := newTestTeam(t, members)
	base := team.Ledger().Get(stats.Damage)

	var g errgroup.Group
	for _, id := range members {
		g.Go(func() error {
			for j := 0; j < 50; j++ {
				s := team.EnterSelection(id)
				s.Choose(statBoost(stats.Damage, 0.5))
				s.Close()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}

	if team.Paused() {
		t.Fatalf("team left paused after every session closed")
	}
	if got, want := team.Ledger().Get(stats.Damage), base+float64(len(members)*50)*0.5; got != want {
		t.Fatalf("damage = %v, want %v", got, want)
	}
	for _, id := range members {
		stops, starts := auto.counts(id)
		if stops == 0 || stops != starts {
			t.Fatalf("%s: stops=%d starts=%d, edges must pair up", id, stops, starts)
		}
	}
}
