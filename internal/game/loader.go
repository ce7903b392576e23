package game

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Paths helper for default/mode files.
type Paths struct {
	BaseDir string // base directory, e.g., /opt/app/config
}

func (p Paths) DefaultPath() string {
	return filepath.Join(p.BaseDir, "modes", "default.yaml")
}
func (p Paths) ModePath(mode string) string {
	return filepath.Join(p.BaseDir, "modes", mode+".yaml")
}

// Loader reads YAML configs and merges default → mode.
type Loader struct {
	paths  Paths
	logger *slog.Logger

	mu    sync.RWMutex
	cache map[string]RawConfig // key: mode
}

// NewLoader creates a config loader with the given base directory.
func NewLoader(baseDir string) *Loader {
	return &Loader{
		paths:  Paths{BaseDir: baseDir},
		logger: slog.Default(),
		cache:  make(map[string]RawConfig),
	}
}

// WithLogger sets the logger used for reload and read warnings.
func (l *Loader) WithLogger(logger *slog.Logger) *Loader {
	if logger != nil {
		l.logger = logger
	}
	return l
}

func (l *Loader) Paths() Paths { return l.paths }

// LoadMerged loads and merges default → mode. A missing default file is fine:
// built-in defaults fill every field during Resolve.
func (l *Loader) LoadMerged(mode string) (RawConfig, error) {
	l.mu.RLock()
	if cfg, ok := l.cache[mode]; ok {
		l.mu.RUnlock()
		return cfg, nil
	}
	l.mu.RUnlock()

	defCfg, err := readYAML(l.paths.DefaultPath())
	if err != nil {
		return RawConfig{}, fmt.Errorf("read default: %w", err)
	}
	var modeCfg RawConfig
	if mode != "" {
		modeCfg, err = readYAML(l.paths.ModePath(mode))
		if err != nil {
			return RawConfig{}, fmt.Errorf("read mode %q: %w", mode, err)
		}
	}

	// Merge: default <- mode
	merged := mergeRaw(defCfg, modeCfg)

	l.mu.Lock()
	l.cache[mode] = merged
	l.mu.Unlock()

	return merged, nil
}

// Invalidate clears loader's cache. Call after hot-reload detects changes.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache = make(map[string]RawConfig)
	l.logger.Info("tuning config cache invalidated")
}

// readYAML loads a YAML file into RawConfig. Missing files return zero cfg, no error.
func readYAML(path string) (RawConfig, error) {
	var cfg RawConfig
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return RawConfig{}, nil
		}
		return RawConfig{}, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return RawConfig{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// mergeRaw performs a deep merge: 'b' overrides 'a' where set.
// Baseline maps merge per key.
func mergeRaw(a, b RawConfig) RawConfig {
	out := a
	out.Run.Baseline = maps.Clone(a.Run.Baseline)

	// top-level scalars
	if b.Version != "" {
		out.Version = b.Version
	}
	if b.Notes != "" {
		out.Notes = b.Notes
	}

	// run
	if b.Run.Rerolls != nil {
		out.Run.Rerolls = b.Run.Rerolls
	}
	if b.Run.Weapon != "" {
		out.Run.Weapon = b.Run.Weapon
	}
	if len(b.Run.Baseline) > 0 {
		if out.Run.Baseline == nil {
			out.Run.Baseline = make(map[string]float64, len(b.Run.Baseline))
		}
		maps.Copy(out.Run.Baseline, b.Run.Baseline)
	}

	// rewards
	switch {
	case out.Rewards == nil && b.Rewards != nil:
		c := *b.Rewards
		out.Rewards = &c
	case out.Rewards != nil && b.Rewards != nil:
		c := *out.Rewards
		if b.Rewards.Choices != nil {
			c.Choices = b.Rewards.Choices
		}
		if b.Rewards.ExcludeRegeneration != nil {
			c.ExcludeRegeneration = b.Rewards.ExcludeRegeneration
		}
		if b.Rewards.ExcludeVampire != nil {
			c.ExcludeVampire = b.Rewards.ExcludeVampire
		}
		out.Rewards = &c
	}

	// leveling
	switch {
	case out.Leveling == nil && b.Leveling != nil:
		c := *b.Leveling
		out.Leveling = &c
	case out.Leveling != nil && b.Leveling != nil:
		c := *out.Leveling
		if b.Leveling.BaseXP != nil {
			c.BaseXP = b.Leveling.BaseXP
		}
		if b.Leveling.Growth != nil {
			c.Growth = b.Leveling.Growth
		}
		out.Leveling = &c
	}

	return out
}
