package anim

import "fmt"

// Flush phase names.
const (
	PhaseDraining  = "draining"
	PhaseEmpty     = "empty"
	PhaseRefilling = "refilling"
	PhaseFull      = "full"
)

// FlushTimings are the durations of the toilet flush phases in seconds.
type FlushTimings struct {
	Drain  float64 `yaml:"drain"`
	Empty  float64 `yaml:"empty"`
	Refill float64 `yaml:"refill"`
}

// DefaultFlushTimings returns the stock 1.5s/0.5s/1.0s flush.
func DefaultFlushTimings() FlushTimings {
	return FlushTimings{Drain: 1.5, Empty: 0.5, Refill: 1.0}
}

// Total returns the full sequence duration.
func (t FlushTimings) Total() float64 { return t.Drain + t.Empty + t.Refill }

// FlushSequence animates the water in the toilet bowl: it spins faster
// while shrinking, stays empty briefly, then refills.
type FlushSequence struct {
	seq      *Sequencer
	timings  FlushTimings
	rotation float64
}

// NewFlushSequence builds a flush animator from the phase durations.
func NewFlushSequence(t FlushTimings) (*FlushSequence, error) {
	if t.Drain <= 0 || t.Empty <= 0 || t.Refill <= 0 {
		return nil, fmt.Errorf("%w: flush durations must be positive: %+v", ErrInvalidConfig, t)
	}
	seq, err := NewSequencer(
		Phase{Name: PhaseDraining, Start: 0},
		Phase{Name: PhaseEmpty, Start: t.Drain},
		Phase{Name: PhaseRefilling, Start: t.Drain + t.Empty},
		Phase{Name: PhaseFull, Start: t.Total()},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build flush phases: %w", err)
	}
	return &FlushSequence{seq: seq, timings: t}, nil
}

// Update samples the trigger, advances the sequence and integrates the water
// rotation. It returns the scale and rotation speed for this frame.
func (f *FlushSequence) Update(trigger bool, dt float64) (scale, rotationSpeed float64) {
	f.seq.Update(trigger, dt)
	scale, rotationSpeed = f.Output()
	if validDelta(dt) {
		f.rotation -= rotationSpeed * dt
	}
	return scale, rotationSpeed
}

// Output maps the current phase to (scale, rotationSpeed).
func (f *FlushSequence) Output() (scale, rotationSpeed float64) {
	p := f.seq.Progress()
	switch f.seq.Current().Name {
	case PhaseDraining:
		return 1 - p, 10 + 20*p
	case PhaseEmpty:
		return 0.01, 0
	case PhaseRefilling:
		return p, 1
	default:
		return 1, 0
	}
}

// Start begins a new flush from the draining phase.
func (f *FlushSequence) Start() { f.seq.Start() }

// Phase returns the current phase name.
func (f *FlushSequence) Phase() string { return f.seq.Current().Name }

// Running reports whether a flush is in progress.
func (f *FlushSequence) Running() bool { return f.seq.Running() }

// Rotation returns the accumulated water rotation in radians.
func (f *FlushSequence) Rotation() float64 { return f.rotation }

// Timings returns the configured phase durations.
func (f *FlushSequence) Timings() FlushTimings { return f.timings }
