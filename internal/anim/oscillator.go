package anim

import (
	"math"
	"math/rand"
)

// Oscillator maps elapsed time to a [0, 1] intensity with a per-instance
// speed and phase offset fixed at construction.
type Oscillator struct {
	Speed  float64
	Offset float64
}

// NewRandomOscillator draws speed from [minSpeed, maxSpeed) and an offset
// from [0, 2pi).
func NewRandomOscillator(rng *rand.Rand, minSpeed, maxSpeed float64) Oscillator {
	return Oscillator{
		Speed:  minSpeed + rng.Float64()*(maxSpeed-minSpeed),
		Offset: rng.Float64() * 2 * math.Pi,
	}
}

// Intensity returns (sin(t*Speed+Offset)+1)/2.
func (o Oscillator) Intensity(t float64) float64 {
	return clamp01((math.Sin(t*o.Speed+o.Offset) + 1) / 2)
}

// On is the thresholded flicker used by the tree lights.
func (o Oscillator) On(t float64) bool {
	return o.Intensity(t) > 0.5
}

// Period returns 2pi/|Speed|, or +Inf for a stopped oscillator.
func (o Oscillator) Period() float64 {
	if o.Speed == 0 {
		return math.Inf(1)
	}
	return 2 * math.Pi / math.Abs(o.Speed)
}

// Wave is a travelling pulse across indexed instances (turbine blades).
type Wave struct {
	Speed     float64
	PhaseStep float64
	Floor     float64
}

// Level returns the pulse level of instance i at time t, in [Floor, 1].
func (w Wave) Level(t float64, i int) float64 {
	s := (math.Sin(t*w.Speed+float64(i)*w.PhaseStep) + 1) / 2
	return w.Floor + (1-w.Floor)*s
}

// RGBCycle returns three phase-shifted channels in [0, 1].
func RGBCycle(t float64) (r, g, b float64) {
	return (math.Sin(t) + 1) / 2, (math.Sin(t+2) + 1) / 2, (math.Sin(t+4) + 1) / 2
}

// Breath returns a scale factor 1 + sin(t*freq)*amp.
func Breath(t, freq, amp float64) float64 {
	return 1 + math.Sin(t*freq)*amp
}
