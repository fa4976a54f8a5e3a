package systems

import (
	"github.com/decker502/apartment/internal/anim"
	"github.com/decker502/apartment/pkg/components"
	"github.com/decker502/apartment/pkg/ecs"
	"github.com/decker502/apartment/pkg/game"
)

// BreathSystem 粒子灯：打开时旋转和呼吸缩放，关闭时保持姿态并变暗
type BreathSystem struct {
	entityManager *ecs.EntityManager
	state         *game.ApplianceState
	clock         ElapsedSource
}

// NewBreathSystem 创建呼吸灯系统
func NewBreathSystem(em *ecs.EntityManager, state *game.ApplianceState, clock ElapsedSource) *BreathSystem {
	return &BreathSystem{entityManager: em, state: state, clock: clock}
}

// Update 推进旋转和缩放
func (s *BreathSystem) Update(dt float64) {
	t := s.clock.Elapsed()
	for _, id := range ecs.GetEntitiesWith3[*components.BreathComponent, *components.ToggleComponent, *components.TransformComponent](s.entityManager) {
		breath, _ := ecs.GetComponent[*components.BreathComponent](s.entityManager, id)
		toggle, _ := ecs.GetComponent[*components.ToggleComponent](s.entityManager, id)
		tc, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		cloud, hasCloud := ecs.GetComponent[*components.PointCloudComponent](s.entityManager, id)

		if !s.state.IsOn(toggle.Key) {
			if hasCloud {
				cloud.Color = breath.OffColor
			}
			continue
		}
		if hasCloud {
			cloud.Color = breath.OnColor
		}
		// 旋转量是每帧常量
		if dt > 0 {
			tc.Pose.Yaw += breath.SpinY
			tc.Pose.Roll += breath.SpinZ
		}
		tc.Pose.Scale = anim.Breath(t, breath.Freq, breath.Amp)
	}
}
