package systems

import (
	"log"

	"github.com/decker502/apartment/pkg/components"
	"github.com/decker502/apartment/pkg/ecs"
	"github.com/decker502/apartment/pkg/game"
)

// SpinSystem 电竞椅转圈和音箱玻璃罩的匀速旋转
type SpinSystem struct {
	entityManager *ecs.EntityManager
	state         *game.ApplianceState
	clock         ElapsedSource
}

// NewSpinSystem 创建旋转系统
func NewSpinSystem(em *ecs.EntityManager, state *game.ApplianceState, clock ElapsedSource) *SpinSystem {
	return &SpinSystem{entityManager: em, state: state, clock: clock}
}

// Update 推进旋转
func (s *SpinSystem) Update(dt float64) {
	for _, id := range ecs.GetEntitiesWith3[*components.SpinComponent, *components.ToggleComponent, *components.TransformComponent](s.entityManager) {
		spin, _ := ecs.GetComponent[*components.SpinComponent](s.entityManager, id)
		toggle, _ := ecs.GetComponent[*components.ToggleComponent](s.entityManager, id)
		tc, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)

		if s.state.JustTriggered(toggle.Key) {
			spin.Spin.Restart()
			log.Printf("[SpinSystem] entity %d spin started", id)
		}
		tc.Pose.Yaw = spin.Spin.Update(dt)
	}

	if s.clock == nil {
		return
	}
	t := s.clock.Elapsed()
	for _, id := range ecs.GetEntitiesWith2[*components.RotorComponent, *components.TransformComponent](s.entityManager) {
		rotor, _ := ecs.GetComponent[*components.RotorComponent](s.entityManager, id)
		tc, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		tc.Pose.Yaw = t * rotor.Rate
	}
}
