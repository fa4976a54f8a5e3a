package anim

import (
	"math"
	"math/rand"

	"github.com/golang/geo/r3"
)

// Emitter samples a spawn position for a recycled particle.
type Emitter interface {
	Spawn(rng *rand.Rand) r3.Vector
	// HorizontalBound is the largest distance from the Y axis a spawned
	// particle can have.
	HorizontalBound() float64
}

// DiscEmitter spawns particles on a horizontal disc at Height, optionally
// jittered downward by up to Jitter so respawns don't line up in sheets.
//
// Radius uses the sqrt(u) transform to get uniform areal density.
type DiscEmitter struct {
	Radius float64
	Height float64
	Jitter float64
}

// Spawn implements Emitter.
func (e DiscEmitter) Spawn(rng *rand.Rand) r3.Vector {
	r := e.Radius * math.Sqrt(rng.Float64())
	theta := rng.Float64() * 2 * math.Pi
	return r3.Vector{
		X: r * math.Cos(theta),
		Y: e.Height - rng.Float64()*e.Jitter,
		Z: r * math.Sin(theta),
	}
}

// HorizontalBound implements Emitter.
func (e DiscEmitter) HorizontalBound() float64 { return e.Radius }

// CylinderEmitter fills a vertical cylinder uniformly. The snow globe uses it
// so falling flakes never leave the sphere's curve.
type CylinderEmitter struct {
	Radius float64
	MinY   float64
	MaxY   float64
}

// Spawn implements Emitter.
func (e CylinderEmitter) Spawn(rng *rand.Rand) r3.Vector {
	r := e.Radius * math.Sqrt(rng.Float64())
	theta := rng.Float64() * 2 * math.Pi
	return r3.Vector{
		X: r * math.Cos(theta),
		Y: e.MinY + rng.Float64()*(e.MaxY-e.MinY),
		Z: r * math.Sin(theta),
	}
}

// HorizontalBound implements Emitter.
func (e CylinderEmitter) HorizontalBound() float64 { return e.Radius }

// ShellEmitter places particles uniformly on the surface of a sphere.
type ShellEmitter struct {
	Radius float64
}

// Spawn implements Emitter.
func (e ShellEmitter) Spawn(rng *rand.Rand) r3.Vector {
	theta := rng.Float64() * 2 * math.Pi
	phi := math.Acos(2*rng.Float64() - 1)
	return r3.Vector{
		X: e.Radius * math.Sin(phi) * math.Cos(theta),
		Y: e.Radius * math.Sin(phi) * math.Sin(theta),
		Z: e.Radius * math.Cos(phi),
	}
}

// HorizontalBound implements Emitter.
func (e ShellEmitter) HorizontalBound() float64 { return e.Radius }
