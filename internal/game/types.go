// types.go
package game

// Raw config loaded from YAML; mirrors the tuning schema.
type RawConfig struct {
	Version  string          `yaml:"version"`
	Run      RunConfig       `yaml:"run"`
	Rewards  *RewardConfig   `yaml:"rewards,omitempty"`
	Leveling *LevelingConfig `yaml:"leveling,omitempty"`
	Notes    string          `yaml:"notes,omitempty"`
}

type RunConfig struct {
	Rerolls  *int               `yaml:"rerolls"`
	Baseline map[string]float64 `yaml:"baseline,omitempty"`
	Weapon   string             `yaml:"weapon,omitempty"`
}

type RewardConfig struct {
	Choices             *int  `yaml:"choices"`
	ExcludeRegeneration *bool `yaml:"exclude_regeneration,omitempty"`
	ExcludeVampire      *bool `yaml:"exclude_vampire,omitempty"`
}

type LevelingConfig struct {
	BaseXP *float64 `yaml:"base_xp"`
	Growth *float64 `yaml:"growth"`
}

// Normalized params used to start runs.
type Params struct {
	Rerolls             int
	Baseline            map[string]float64
	Weapon              string
	Choices             int
	ExcludeRegeneration bool
	ExcludeVampire      bool
	BaseXP              float64
	Growth              float64
	Version             string // effective config version for tracing
}
