package systems

import (
	"github.com/decker502/apartment/pkg/components"
	"github.com/decker502/apartment/pkg/ecs"
	"github.com/decker502/apartment/pkg/game"
)

// BlinkSystem 圣诞树彩灯闪烁
type BlinkSystem struct {
	entityManager *ecs.EntityManager
	state         *game.ApplianceState
	clock         ElapsedSource
}

// NewBlinkSystem 创建彩灯系统
func NewBlinkSystem(em *ecs.EntityManager, state *game.ApplianceState, clock ElapsedSource) *BlinkSystem {
	return &BlinkSystem{entityManager: em, state: state, clock: clock}
}

// Update 按累计时间刷新每个灯泡的颜色
func (s *BlinkSystem) Update(dt float64) {
	t := s.clock.Elapsed()
	for _, id := range ecs.GetEntitiesWith3[*components.BlinkLightsComponent, *components.ToggleComponent, *components.MeshComponent](s.entityManager) {
		blink, _ := ecs.GetComponent[*components.BlinkLightsComponent](s.entityManager, id)
		toggle, _ := ecs.GetComponent[*components.ToggleComponent](s.entityManager, id)
		mesh, _ := ecs.GetComponent[*components.MeshComponent](s.entityManager, id)

		on := s.state.IsOn(toggle.Key)
		for i := range mesh.Boxes {
			if on && i < len(blink.Oscillators) && i < len(blink.Colors) && blink.Oscillators[i].On(t) {
				mesh.Boxes[i].Color = blink.Colors[i]
				mesh.Boxes[i].Emissive = true
				continue
			}
			mesh.Boxes[i].Color = blink.OffColor
			mesh.Boxes[i].Emissive = false
		}
	}
}
