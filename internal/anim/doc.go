// Package anim provides the per-frame procedural animators used by the
// apartment scene: particle fields, smoothed transforms, timed phase
// sequencers and blink/pulse oscillators.
//
// Everything here is renderer independent. Each animator is a plain value
// updated once per frame by exactly one owner; randomness is injected as a
// *rand.Rand so trajectories can be replayed with a fixed seed.
package anim

import "errors"

// ErrInvalidConfig is returned (wrapped) by constructors when the supplied
// configuration cannot produce a valid animator.
var ErrInvalidConfig = errors.New("anim: invalid config")

// clamp01 limits v to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// validDelta 判断 dt 是否可用于推进动画（排除 0、负数和 NaN）
func validDelta(dt float64) bool {
	return dt > 0
}
