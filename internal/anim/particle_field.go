package anim

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/golang/geo/r3"
)

// FallMode selects what happens to a particle that drops below the floor.
type FallMode int

const (
	// FallRecycle respawns the particle through the emitter (shower rain).
	FallRecycle FallMode = iota
	// FallWrap keeps x/z and moves the particle back to the ceiling (snow).
	FallWrap
)

// String returns a readable name for logs and config errors.
func (m FallMode) String() string {
	switch m {
	case FallRecycle:
		return "recycle"
	case FallWrap:
		return "wrap"
	default:
		return fmt.Sprintf("FallMode(%d)", int(m))
	}
}

// FieldConfig describes a particle field.
type FieldConfig struct {
	Capacity int
	Emitter  Emitter
	Mode     FallMode

	// Floor is the lower bound of the valid region. A particle with y below
	// Floor is respawned (or wrapped) on the next active update.
	Floor float64
	// Ceiling is the wrap target in FallWrap mode.
	Ceiling float64
	// Hidden is the sentinel y used while the field is inactive. Must be
	// below Floor so hidden particles respawn when reactivated.
	Hidden float64

	MinSpeed float64
	MaxSpeed float64
	// PerFrame applies speeds once per update instead of scaling by dt.
	PerFrame bool

	// Prefill seeds every particle from the emitter instead of Hidden.
	Prefill bool
	// Spin is added to Rotation each update (radians per frame or second).
	Spin float64
}

// Validate checks the configuration.
func (c FieldConfig) Validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfig, c.Capacity)
	}
	if c.Emitter == nil {
		return fmt.Errorf("%w: emitter is required", ErrInvalidConfig)
	}
	if c.MinSpeed < 0 || c.MinSpeed > c.MaxSpeed {
		return fmt.Errorf("%w: speed range [%g, %g] is invalid", ErrInvalidConfig, c.MinSpeed, c.MaxSpeed)
	}
	if !(c.Hidden < c.Floor) {
		return fmt.Errorf("%w: hidden y %g must be below floor %g", ErrInvalidConfig, c.Hidden, c.Floor)
	}
	if c.Mode == FallWrap && c.Ceiling <= c.Floor {
		return fmt.Errorf("%w: ceiling %g must be above floor %g", ErrInvalidConfig, c.Ceiling, c.Floor)
	}
	return nil
}

// ParticleField owns a fixed-size buffer of particle positions.
//
// The buffer is mutated in place by Update; renderers borrow it through
// Positions and should re-read it whenever Dirty reports true.
type ParticleField struct {
	cfg       FieldConfig
	rng       *rand.Rand
	positions []r3.Vector
	rotation  float64
	dirty     bool
}

// NewParticleField validates cfg and allocates the particle buffer.
func NewParticleField(cfg FieldConfig, rng *rand.Rand) (*ParticleField, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: random source is required", ErrInvalidConfig)
	}

	f := &ParticleField{
		cfg:       cfg,
		rng:       rng,
		positions: make([]r3.Vector, cfg.Capacity),
		dirty:     true,
	}
	for i := range f.positions {
		if cfg.Prefill {
			f.positions[i] = cfg.Emitter.Spawn(rng)
		} else {
			f.positions[i] = r3.Vector{Y: cfg.Hidden}
		}
	}
	return f, nil
}

// Update advances the field by one frame and reports whether the buffer
// changed.
//
// Inactive fields snap every particle to the hidden sentinel. Active fields
// respawn particles below the floor and let the rest fall by a speed
// re-sampled per particle per frame.
func (f *ParticleField) Update(active bool, dt float64) bool {
	if !active {
		changed := false
		for i := range f.positions {
			if f.positions[i].Y != f.cfg.Hidden {
				f.positions[i].Y = f.cfg.Hidden
				changed = true
			}
		}
		if changed {
			f.dirty = true
		}
		return changed
	}

	var step float64
	switch {
	case f.cfg.PerFrame:
		// 逐帧模式：速度按帧应用，与 dt 无关（dt 非法时仍视为停顿）
		if math.IsNaN(dt) || dt < 0 {
			return false
		}
		if dt > 0 {
			step = 1
		}
	default:
		if !validDelta(dt) {
			step = 0
		} else {
			step = dt
		}
	}

	changed := false
	for i := range f.positions {
		p := &f.positions[i]
		if p.Y < f.cfg.Floor {
			f.respawn(p)
			changed = true
			continue
		}
		if step == 0 {
			continue
		}
		p.Y -= f.sampleSpeed() * step
		changed = true
	}
	if step > 0 && f.cfg.Spin != 0 {
		f.rotation += f.cfg.Spin * step
		changed = true
	}
	if changed {
		f.dirty = true
	}
	return changed
}

func (f *ParticleField) respawn(p *r3.Vector) {
	// 隐藏哨兵位置的粒子没有有效的 x/z，必须完整重生
	if f.cfg.Mode == FallWrap && p.Y != f.cfg.Hidden {
		p.Y = f.cfg.Ceiling
		return
	}
	*p = f.cfg.Emitter.Spawn(f.rng)
}

func (f *ParticleField) sampleSpeed() float64 {
	return f.cfg.MinSpeed + f.rng.Float64()*(f.cfg.MaxSpeed-f.cfg.MinSpeed)
}

// Positions returns the particle buffer. Callers must not modify it.
func (f *ParticleField) Positions() []r3.Vector { return f.positions }

// Len returns the fixed particle count.
func (f *ParticleField) Len() int { return len(f.positions) }

// Dirty reports whether the buffer changed since the last ClearDirty.
func (f *ParticleField) Dirty() bool { return f.dirty }

// ClearDirty marks the buffer as consumed by the renderer.
func (f *ParticleField) ClearDirty() { f.dirty = false }

// Rotation returns the accumulated spin around the Y axis in radians.
func (f *ParticleField) Rotation() float64 { return f.rotation }

// Config returns the configuration the field was built with.
func (f *ParticleField) Config() FieldConfig { return f.cfg }
