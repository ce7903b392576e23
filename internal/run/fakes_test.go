package run

import (
	"sync"
)

type recordingAutomation struct {
	mu     sync.Mutex
	events []string // "stop:<id>" / "start:<id>"
	stops  map[string]int
	starts map[string]int
}

func newRecordingAutomation() *recordingAutomation {
	return &recordingAutomation{stops: map[string]int{}, starts: map[string]int{}}
}

func (a *recordingAutomation) StopAutomation(id string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, "stop:"+id)
	a.stops[id]++
}

func (a *recordingAutomation) StartAutomation(id string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, "start:"+id)
	a.starts[id]++
}

func (a *recordingAutomation) counts(id string) (stops, starts int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stops[id], a.starts[id]
}

func (a *recordingAutomation) total() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.events)
}

type recordingParticipants struct {
	mu    sync.Mutex
	calls map[string][]Attributes
}

func newRecordingParticipants() *recordingParticipants {
	return &recordingParticipants{calls: map[string][]Attributes{}}
}

func (p *recordingParticipants) ApplyAttributes(id string, a Attributes) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls[id] = append(p.calls[id], a)
}

func (p *recordingParticipants) last(id string) (Attributes, int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	c := p.calls[id]
	if len(c) == 0 {
		return Attributes{}, 0
	}
	return c[len(c)-1], len(c)
}
