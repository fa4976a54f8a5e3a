package systems

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/decker502/apartment/internal/anim"
	"github.com/decker502/apartment/pkg/components"
	"github.com/decker502/apartment/pkg/ecs"
	"github.com/decker502/apartment/pkg/game"
)

// GlowSystem 根据开关设置发光部件的颜色，并处理开关控制的显隐
type GlowSystem struct {
	entityManager *ecs.EntityManager
	state         *game.ApplianceState
	clock         ElapsedSource
}

// NewGlowSystem 创建发光系统
func NewGlowSystem(em *ecs.EntityManager, state *game.ApplianceState, clock ElapsedSource) *GlowSystem {
	return &GlowSystem{entityManager: em, state: state, clock: clock}
}

// Update 刷新颜色和可见性
func (s *GlowSystem) Update(dt float64) {
	t := s.clock.Elapsed()
	for _, id := range ecs.GetEntitiesWith3[*components.GlowComponent, *components.ToggleComponent, *components.MeshComponent](s.entityManager) {
		glow, _ := ecs.GetComponent[*components.GlowComponent](s.entityManager, id)
		toggle, _ := ecs.GetComponent[*components.ToggleComponent](s.entityManager, id)
		mesh, _ := ecs.GetComponent[*components.MeshComponent](s.entityManager, id)

		if !s.state.IsOn(toggle.Key) {
			mesh.SetColor(glow.OffColor, glow.OffEmissive)
			continue
		}
		mesh.SetColor(glowColor(glow, t), true)
	}

	for _, id := range ecs.GetEntitiesWith3[*components.VisibilityComponent, *components.ToggleComponent, *components.MeshComponent](s.entityManager) {
		vis, _ := ecs.GetComponent[*components.VisibilityComponent](s.entityManager, id)
		toggle, _ := ecs.GetComponent[*components.ToggleComponent](s.entityManager, id)
		mesh, _ := ecs.GetComponent[*components.MeshComponent](s.entityManager, id)
		mesh.Hidden = s.state.IsOn(toggle.Key) == vis.Invert
	}
}

func glowColor(glow *components.GlowComponent, t float64) colorful.Color {
	switch glow.Mode {
	case components.GlowRGB:
		r, g, b := anim.RGBCycle(t)
		return colorful.Color{R: r, G: g, B: b}
	case components.GlowFlicker:
		k := 1 - glow.Depth + glow.Depth*glow.Flicker.Intensity(t)
		return scaleColor(glow.OnColor, k)
	default:
		return glow.OnColor
	}
}
