package run

// Automation toggles a member's combat loop. The team calls it while holding
// its lock, so implementations must not call back into the TeamRun.
type Automation interface {
	StopAutomation(memberID string)
	StartAutomation(memberID string)
}

// Attributes are the stats that have side effects outside the core.
type Attributes struct {
	MaxHealth  float64
	SpeedScale float64
	Armor      float64
}

// Participants pushes attributes onto a live player.
type Participants interface {
	ApplyAttributes(memberID string, a Attributes)
}

type noopAutomation struct{}

func (noopAutomation) StopAutomation(string)  {}
func (noopAutomation) StartAutomation(string) {}

type noopParticipants struct{}

func (noopParticipants) ApplyAttributes(string, Attributes) {}
