package anim

import (
	"fmt"
	"math"
)

// PhaseIdle is reported by a Sequencer that has never been triggered.
const PhaseIdle = "idle"

// Phase is a named interval starting at Start seconds into a sequence.
// A phase lasts until the next phase's Start; the last phase is terminal.
type Phase struct {
	Name  string
	Start float64
}

// Sequencer maps elapsed time since a trigger's rising edge onto ordered
// phases. Elapsed only advances while the sequence is running, and a rising
// edge while running is ignored.
type Sequencer struct {
	phases      []Phase
	elapsed     float64
	running     bool
	started     bool
	prevTrigger bool
}

// NewSequencer validates the phase list. The first phase must start at 0 and
// starts must be strictly increasing.
func NewSequencer(phases ...Phase) (*Sequencer, error) {
	if len(phases) == 0 {
		return nil, fmt.Errorf("%w: sequencer needs at least one phase", ErrInvalidConfig)
	}
	if phases[0].Start != 0 {
		return nil, fmt.Errorf("%w: first phase %q must start at 0", ErrInvalidConfig, phases[0].Name)
	}
	for i := 1; i < len(phases); i++ {
		if !(phases[i].Start > phases[i-1].Start) {
			return nil, fmt.Errorf("%w: phase %q starts at %g, not after %q",
				ErrInvalidConfig, phases[i].Name, phases[i].Start, phases[i-1].Name)
		}
	}
	ps := make([]Phase, len(phases))
	copy(ps, phases)
	return &Sequencer{phases: ps}, nil
}

// Update samples the trigger and advances the sequence by dt.
// It returns true on the frame a new run starts.
func (s *Sequencer) Update(trigger bool, dt float64) bool {
	rising := trigger && !s.prevTrigger
	s.prevTrigger = trigger

	started := false
	if rising && !s.running {
		s.elapsed = 0
		s.running = true
		s.started = true
		started = true
	}
	if !s.running || !validDelta(dt) || math.IsInf(dt, 0) {
		return started
	}

	s.elapsed += dt
	if end := s.phases[len(s.phases)-1].Start; s.elapsed >= end {
		s.running = false
	}
	return started
}

// Start begins a new run from zero even if one is in progress. Hosts that
// gate triggers themselves, for example with a cooldown, call Start on each
// accepted pulse instead of relying on edge detection in Update.
func (s *Sequencer) Start() {
	s.elapsed = 0
	s.running = true
	s.started = true
}

// Current returns the phase containing the elapsed time. Before the first
// trigger it returns a zero-start phase named PhaseIdle.
func (s *Sequencer) Current() Phase {
	if !s.started {
		return Phase{Name: PhaseIdle}
	}
	return s.phases[s.index()]
}

// Progress returns how far the elapsed time is through the current phase,
// in [0, 1]. The terminal phase always reports 1.
func (s *Sequencer) Progress() float64 {
	if !s.started {
		return 0
	}
	i := s.index()
	if i == len(s.phases)-1 {
		return 1
	}
	span := s.phases[i+1].Start - s.phases[i].Start
	return clamp01((s.elapsed - s.phases[i].Start) / span)
}

func (s *Sequencer) index() int {
	i := 0
	for j := range s.phases {
		if s.elapsed >= s.phases[j].Start {
			i = j
		}
	}
	return i
}

// Elapsed returns seconds since the last run started.
func (s *Sequencer) Elapsed() float64 { return s.elapsed }

// Running reports whether the sequence is between its trigger and its
// terminal phase.
func (s *Sequencer) Running() bool { return s.running }

// Phases returns a copy of the phase list.
func (s *Sequencer) Phases() []Phase {
	ps := make([]Phase, len(s.phases))
	copy(ps, s.phases)
	return ps
}
