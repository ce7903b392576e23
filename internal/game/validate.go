package game

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xtding233/survival-rewards/internal/stats"
	"github.com/xtding233/survival-rewards/internal/weapon"
)

// ValidateRaw checks semantic constraints of a RawConfig.
func ValidateRaw(cfg RawConfig) error {
	var errs []string

	// run.rerolls
	if cfg.Run.Rerolls != nil && *cfg.Run.Rerolls < 0 {
		errs = append(errs, "run.rerolls must be >= 0")
	}
	// run.baseline keys, sorted for a stable message
	keys := make([]string, 0, len(cfg.Run.Baseline))
	for k := range cfg.Run.Baseline {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, ok := stats.Parse(k); !ok {
			errs = append(errs, fmt.Sprintf("run.baseline.%s is not a known stat", k))
		}
	}
	// run.weapon
	if cfg.Run.Weapon != "" {
		if _, err := weapon.ParseArchetype(cfg.Run.Weapon); err != nil {
			errs = append(errs, "run.weapon: "+err.Error())
		}
	}

	// rewards
	if cfg.Rewards != nil && cfg.Rewards.Choices != nil && *cfg.Rewards.Choices <= 0 {
		errs = append(errs, "rewards.choices must be >= 1")
	}

	// leveling
	if cfg.Leveling != nil {
		if cfg.Leveling.BaseXP != nil && *cfg.Leveling.BaseXP <= 0 {
			errs = append(errs, "leveling.base_xp must be > 0")
		}
		if cfg.Leveling.Growth != nil && *cfg.Leveling.Growth < 1 {
			errs = append(errs, "leveling.growth must be >= 1")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
