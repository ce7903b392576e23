package reward

import (
	"math"
	"strings"
	"testing"

	"github.com/xtding233/survival-rewards/internal/gacha"
	"github.com/xtding233/survival-rewards/internal/stats"
)

func fixedID() string { return "x" }

func seq(values ...float64) *Generator {
	return NewGenerator(gacha.NewSequenceRNG(values...), WithIDSource(fixedID))
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Abs(b))
}

func TestStatBoostValue(t *testing.T) {
	// rarity roll 0.1 -> Common, stat roll 0.2 -> damage
	r := seq(0.1, 0.2).StatBoost(10, 0, Exclusions{})
	if r.Stat() != stats.Damage || r.Rarity() != gacha.Common || r.Category() != StatBoost {
		t.Fatalf("unexpected reward %v (stat %q)", r, r.Stat())
	}
	want := 0.5 * (1 + 10*0.15) * 1.0 * 0.8
	if !almostEqual(r.Value(), want) {
		t.Fatalf("value = %v, want %v", r.Value(), want)
	}
	if r.ID() != "stat_damage_x" {
		t.Fatalf("id = %q", r.ID())
	}
}

func TestStatBoostRarityAndLuckScaling(t *testing.T) {
	// rarity roll 0.995 -> Legendary, stat roll 0.65 -> health
	r := seq(0.995, 0.65).StatBoost(4, 2, Exclusions{})
	if r.Stat() != stats.Health || r.Rarity() != gacha.Legendary {
		t.Fatalf("unexpected reward %v", r)
	}
	want := 2.0 * (1 + 4*0.15) * 3.5 * (0.8 + 2*0.4)
	if !almostEqual(r.Value(), want) {
		t.Fatalf("value = %v, want %v", r.Value(), want)
	}
}

func TestStatBoostDifficultyIsDelta(t *testing.T) {
	r := seq(0.1, 0.05).StatBoost(0, 0, Exclusions{})
	if r.Stat() != stats.Difficulty {
		t.Fatalf("stat = %q, want difficulty", r.Stat())
	}
	if !almostEqual(r.Value(), 0.1*0.8) {
		t.Fatalf("difficulty delta = %v, want %v", r.Value(), 0.1*0.8)
	}
}

func TestStatBoostExclusionWidensLuck(t *testing.T) {
	// 0.95 is regeneration in the normal table and luck without it
	if got := seq(0.1, 0.95).StatBoost(1, 0, Exclusions{}).Stat(); got != stats.Regeneration {
		t.Fatalf("normal table: got %q, want regeneration", got)
	}
	if got := seq(0.1, 0.95).StatBoost(1, 0, Exclusions{Regeneration: true}).Stat(); got != stats.Luck {
		t.Fatalf("excluded table: got %q, want luck", got)
	}
	if p := statBoostTableNoRegen.Probability(stats.Luck); !almostEqual(p, 0.12) {
		t.Fatalf("luck slice without regeneration = %v, want 0.12", p)
	}
	if p := statBoostTableNoRegen.Probability(stats.Regeneration); p != 0 {
		t.Fatalf("regeneration still present: %v", p)
	}
}

func TestStatBoostNeverRegenerationWhenExcluded(t *testing.T) {
	g := NewGenerator(gacha.NewSeededRNG(1))
	for i := 0; i < 5000; i++ {
		r := g.StatBoost(i%50, float64(i%10), Exclusions{Regeneration: true})
		if r.Stat() == stats.Regeneration || strings.Contains(r.ID(), "regeneration") {
			t.Fatalf("trial %d produced regeneration: %v", i, r)
		}
	}
}

func TestStatBaseFormulas(t *testing.T) {
	const level = 6
	ls := 1 + level*0.15
	want := map[stats.Stat]float64{
		stats.Health:       2.0 * ls,
		stats.Damage:       0.5 * ls,
		stats.Speed:        0.1 * ls,
		stats.Armor:        1.0 * ls,
		stats.CritChance:   0.05 * ls,
		stats.CritDamage:   0.2 * ls,
		stats.Luck:         0.15 * ls,
		stats.XPMultiplier: 0.1 * ls,
		stats.Difficulty:   0.1 * ls,
		stats.Regeneration: 1.0 + level*0.15,
		stats.DropRate:     0.02 + level*0.005,
		stats.PickupRange:  0.5 + level*0.1,
		stats.JumpHeight:   0.3 + level*0.05,
	}
	for s, v := range want {
		if got := StatBase(s, level); !almostEqual(got, v) {
			t.Errorf("StatBase(%s) = %v, want %v", s, got, v)
		}
	}
}

func TestWeaponUpgradeLevels(t *testing.T) {
	tests := []struct {
		roll float64
		want int
	}{
		{0.1, 1},   // Common
		{0.7, 1},   // Rare
		{0.9, 2},   // Epic
		{0.995, 3}, // Legendary
	}
	for _, tt := range tests {
		r := seq(tt.roll).WeaponUpgrade(20, 0, Exclusions{})
		if r.Levels() != tt.want || r.Value() != float64(tt.want) {
			t.Errorf("roll %v: levels = %d, want %d", tt.roll, r.Levels(), tt.want)
		}
	}
}

func TestAuraVampireWeights(t *testing.T) {
	if p := auraTable.Probability(VampireAura); p != 0.25 {
		t.Fatalf("vampire weight = %v, want 0.25", p)
	}
	if p := auraTableNoVampire.Probability(ShieldAura); !almostEqual(p, 0.40) {
		t.Fatalf("shield weight without vampire = %v, want 0.40", p)
	}
	// other auras keep their weight
	if a, b := auraTable.Probability(FlameAura), auraTableNoVampire.Probability(FlameAura); !almostEqual(a, b) {
		t.Fatalf("flame weight changed: %v -> %v", a, b)
	}
}

func TestAuraExcludeVampire(t *testing.T) {
	g := NewGenerator(gacha.NewSeededRNG(3))
	for i := 0; i < 5000; i++ {
		r := g.Aura(i%100, float64(i%20), Exclusions{Vampire: true})
		if r.Name() == VampireAura {
			t.Fatalf("trial %d produced a vampire aura", i)
		}
		if r.Value() > MaxAuraValue {
			t.Fatalf("trial %d aura value %v above cap", i, r.Value())
		}
	}
}

func TestAuraValueCapped(t *testing.T) {
	r := seq(0.995, 0.1).Aura(500, 100, Exclusions{})
	if r.Name() != VampireAura {
		t.Fatalf("name = %q, want vampire", r.Name())
	}
	if r.Value() != MaxAuraValue {
		t.Fatalf("value = %v, want cap %v", r.Value(), MaxAuraValue)
	}
	if r.LifestealPercent() != 20 {
		t.Fatalf("lifesteal = %v, want 20", r.LifestealPercent())
	}
}

func TestAuraUncappedValue(t *testing.T) {
	r := seq(0.1, 0.3).Aura(10, 0, Exclusions{})
	if r.Name() != ShieldAura {
		t.Fatalf("name = %q, want shield", r.Name())
	}
	if want := (0.5 + 10*0.05) * 0.8; !almostEqual(r.Value(), want) {
		t.Fatalf("value = %v, want %v", r.Value(), want)
	}
	if r.LifestealPercent() != 0 {
		t.Fatalf("non vampire aura reports lifesteal")
	}
}

func TestShrineCooldown(t *testing.T) {
	tests := []struct {
		level  int
		rarity gacha.Rarity
		want   float64
	}{
		{0, gacha.Common, 30},
		{10, gacha.Rare, 25 / 1.5},
		{0, gacha.Legendary, 10},
		{60, gacha.Common, 10},
	}
	for _, tt := range tests {
		if got := ShrineCooldown(tt.level, tt.rarity); !almostEqual(got, tt.want) {
			t.Errorf("ShrineCooldown(%d, %s) = %v, want %v", tt.level, tt.rarity, got, tt.want)
		}
	}
	r := seq(0.1, 0).Shrine(0, 0, Exclusions{})
	if r.Name() != "Shrine of Power" || r.Value() != 30 {
		t.Fatalf("unexpected shrine %v", r)
	}
}

func TestWeaponModAndSynergyValues(t *testing.T) {
	mod := seq(0.7, 0.99).WeaponMod(5, 1, Exclusions{})
	if mod.Name() != "Ricochet" || mod.Rarity() != gacha.Rare {
		t.Fatalf("unexpected mod %v", mod)
	}
	if want := (1.0 + 5*0.1) * 1.5 * 1.2; !almostEqual(mod.Value(), want) {
		t.Fatalf("mod value = %v, want %v", mod.Value(), want)
	}

	syn := seq(0.1, 0).Synergy(5, 0, Exclusions{})
	if syn.Name() != GlassCannon || syn.Category() != Synergy {
		t.Fatalf("unexpected synergy %v", syn)
	}
	if want := (1.5 + 5*0.1) * 0.8; !almostEqual(syn.Value(), want) {
		t.Fatalf("synergy value = %v, want %v", syn.Value(), want)
	}
	if !syn.HasTag("risk") {
		t.Fatalf("glass cannon should carry the risk tag, got %v", syn.Tags())
	}
}

func TestNamedListsHaveEightEntries(t *testing.T) {
	if len(WeaponMods()) != 8 || len(Synergies()) != 8 || len(Shrines()) != 8 {
		t.Fatalf("expected 8 mods, synergies and shrines")
	}
	if len(auraTable.Keys()) != 7 {
		t.Fatalf("expected 7 auras, got %d", len(auraTable.Keys()))
	}
}
