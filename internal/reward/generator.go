package reward

import (
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/xtding233/survival-rewards/internal/gacha"
)

// Exclusions removes one sub-kind from a generator's table.
type Exclusions struct {
	Regeneration bool // stat boosts
	Vampire      bool // auras
}

// Generator produces rewards. All randomness comes from one RandomSource so a
// seeded source reproduces a whole run.
type Generator struct {
	rng    gacha.RandomSource
	newID  func() string
	logger *slog.Logger
}

// GeneratorOption customizes NewGenerator.
type GeneratorOption func(*Generator)

// WithIDSource replaces the uuid based id suffix.
func WithIDSource(fn func() string) GeneratorOption {
	return func(g *Generator) {
		if fn != nil {
			g.newID = fn
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) GeneratorOption {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// NewGenerator creates a generator. A nil rng uses the crypto source.
func NewGenerator(rng gacha.RandomSource, opts ...GeneratorOption) *Generator {
	if rng == nil {
		rng = gacha.DefaultRNG()
	}
	g := &Generator{
		rng:    rng,
		newID:  func() string { return uuid.NewString()[:8] },
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// LuckFactor scales generated values with the luck stat: 0.8 + luck*0.4.
func LuckFactor(luck float64) float64 {
	return 0.8 + luck*0.4
}

// scale applies the shared rarity and luck multipliers to a base value.
func scale(base float64, r gacha.Rarity, luck float64) float64 {
	return base * gacha.RarityMultiplier(r) * LuckFactor(luck)
}

func (g *Generator) rarity(luck float64) gacha.Rarity {
	return gacha.DetermineRarity(luck, g.rng)
}

func (g *Generator) id(prefix, name string) string {
	return prefix + "_" + slug(name) + "_" + g.newID()
}

func slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}
