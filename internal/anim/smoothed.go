package anim

import (
	"math"

	"github.com/golang/geo/r3"
)

// SmoothedValue eases Current toward a target every frame.
//
// The lerp factor is Rate*dt clamped to [0, 1], so a long frame lands on the
// target instead of overshooting it.
type SmoothedValue struct {
	Current float64
	Rate    float64
}

// Update moves Current toward target and returns the new value.
// A non-positive or NaN dt leaves Current untouched.
func (s *SmoothedValue) Update(target, dt float64) float64 {
	if !validDelta(dt) {
		return s.Current
	}
	s.Current += (target - s.Current) * clamp01(s.Rate*dt)
	return s.Current
}

// Settled reports whether Current is within eps of target.
func (s *SmoothedValue) Settled(target, eps float64) bool {
	return math.Abs(target-s.Current) <= eps
}

// SmoothedVec3 is SmoothedValue over a 3D point (camera fly-to).
type SmoothedVec3 struct {
	Current r3.Vector
	Rate    float64
}

// Update moves Current toward target and returns the new value.
func (s *SmoothedVec3) Update(target r3.Vector, dt float64) r3.Vector {
	if !validDelta(dt) {
		return s.Current
	}
	k := clamp01(s.Rate * dt)
	s.Current = s.Current.Add(target.Sub(s.Current).Mul(k))
	return s.Current
}

// Settled reports whether Current is within eps of target.
func (s *SmoothedVec3) Settled(target r3.Vector, eps float64) bool {
	return s.Current.Distance(target) <= eps
}

// Spin drives one full turn away from Base and back (the gaming chair).
type Spin struct {
	Speed    float64 // radians per second
	Base     float64
	progress float64
	active   bool
}

// Start begins a turn. It returns false if a turn is already running.
func (s *Spin) Start() bool {
	if s.active {
		return false
	}
	s.active = true
	s.progress = 0
	return true
}

// Restart begins a new turn from Base even if one is running.
func (s *Spin) Restart() {
	s.active = true
	s.progress = 0
}

// Update advances the turn and returns the current angle.
func (s *Spin) Update(dt float64) float64 {
	if !s.active || !validDelta(dt) {
		return s.Angle()
	}
	s.progress += s.Speed * dt
	if s.progress >= 2*math.Pi {
		s.progress = 0
		s.active = false
	}
	return s.Angle()
}

// Angle returns Base plus the progress of the running turn.
func (s *Spin) Angle() float64 { return s.Base + s.progress }

// Active reports whether a turn is running.
func (s *Spin) Active() bool { return s.active }
