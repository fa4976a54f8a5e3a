package systems

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/decker502/apartment/pkg/components"
	"github.com/decker502/apartment/pkg/ecs"
	"github.com/decker502/apartment/pkg/game"
)

// PulseSystem 音箱涡轮叶片灯效
// 打开时每片叶片按波形调制亮度；关闭后每帧向暗色渐变
type PulseSystem struct {
	entityManager *ecs.EntityManager
	state         *game.ApplianceState
	clock         ElapsedSource
}

// NewPulseSystem 创建涡轮灯效系统
func NewPulseSystem(em *ecs.EntityManager, state *game.ApplianceState, clock ElapsedSource) *PulseSystem {
	return &PulseSystem{entityManager: em, state: state, clock: clock}
}

// Update 刷新叶片颜色
func (s *PulseSystem) Update(dt float64) {
	t := s.clock.Elapsed()
	for _, id := range ecs.GetEntitiesWith3[*components.PulseComponent, *components.ToggleComponent, *components.MeshComponent](s.entityManager) {
		pulse, _ := ecs.GetComponent[*components.PulseComponent](s.entityManager, id)
		toggle, _ := ecs.GetComponent[*components.ToggleComponent](s.entityManager, id)
		mesh, _ := ecs.GetComponent[*components.MeshComponent](s.entityManager, id)

		if s.state.IsOn(toggle.Key) {
			for i := range mesh.Boxes {
				level := pulse.Wave.Level(t, i)
				mesh.Boxes[i].Color = scaleColor(pulse.OnColor, level)
				mesh.Boxes[i].Emissive = true
			}
			continue
		}

		// 渐变是每帧常量，暂停帧（dt=0）不推进
		if !(dt > 0) {
			continue
		}
		for i := range mesh.Boxes {
			mesh.Boxes[i].Color = mesh.Boxes[i].Color.BlendRgb(pulse.OffColor, pulse.FadeRate).Clamped()
			mesh.Boxes[i].Emissive = false
		}
	}
}

// scaleColor 按亮度缩放颜色
func scaleColor(c colorful.Color, k float64) colorful.Color {
	return colorful.Color{R: c.R * k, G: c.G * k, B: c.B * k}.Clamped()
}
