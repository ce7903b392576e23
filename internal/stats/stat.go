package stats

import "strings"

// Stat names one entry of the run's stat vocabulary.
type Stat string

const (
	None         Stat = ""
	Health       Stat = "health"
	Damage       Stat = "damage"
	Speed        Stat = "speed"
	Armor        Stat = "armor"
	CritChance   Stat = "crit_chance"
	CritDamage   Stat = "crit_damage"
	Luck         Stat = "luck"
	XPMultiplier Stat = "xp_multiplier"
	Difficulty   Stat = "difficulty"
	Regeneration Stat = "regeneration"
	DropRate     Stat = "drop_rate"
	PickupRange  Stat = "pickup_range"
	JumpHeight   Stat = "jump_height"
)

// All is the full vocabulary.
var All = []Stat{
	Health, Damage, Speed, Armor, CritChance, CritDamage, Luck,
	XPMultiplier, Difficulty, Regeneration, DropRate, PickupRange, JumpHeight,
}

// resolveOrder is the order identities are matched in. First match wins and
// several keys are substrings of others, so the order is load bearing.
// pickup_range and jump_height are not part of it.
var resolveOrder = []Stat{
	Health, Damage, Speed, Armor, CritChance, CritDamage, Luck,
	XPMultiplier, Regeneration, DropRate, Difficulty,
}

// Resolve finds the stat a reward identity refers to by substring match.
func Resolve(id string) (Stat, bool) {
	id = strings.ToLower(id)
	for _, s := range resolveOrder {
		if strings.Contains(id, string(s)) {
			return s, true
		}
	}
	return None, false
}

// Parse accepts an exact vocabulary key.
func Parse(s string) (Stat, bool) {
	for _, st := range All {
		if string(st) == s {
			return st, true
		}
	}
	return None, false
}

// Label is the human readable stat name.
func (s Stat) Label() string {
	switch s {
	case CritChance:
		return "Crit Chance"
	case CritDamage:
		return "Crit Damage"
	case XPMultiplier:
		return "XP Multiplier"
	case DropRate:
		return "Drop Rate"
	case PickupRange:
		return "Pickup Range"
	case JumpHeight:
		return "Jump Height"
	case None:
		return ""
	}
	str := string(s)
	return strings.ToUpper(str[:1]) + str[1:]
}
