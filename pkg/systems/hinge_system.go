package systems

import (
	"github.com/decker502/apartment/pkg/components"
	"github.com/decker502/apartment/pkg/ecs"
	"github.com/decker502/apartment/pkg/game"
)

// HingeSystem 驱动冰箱门和淋浴门的开合
type HingeSystem struct {
	entityManager *ecs.EntityManager
	state         *game.ApplianceState
}

// NewHingeSystem 创建铰链系统
func NewHingeSystem(em *ecs.EntityManager, state *game.ApplianceState) *HingeSystem {
	return &HingeSystem{entityManager: em, state: state}
}

// Update 让门角度趋向目标角度
func (s *HingeSystem) Update(dt float64) {
	for _, id := range ecs.GetEntitiesWith3[*components.HingeComponent, *components.ToggleComponent, *components.TransformComponent](s.entityManager) {
		hinge, _ := ecs.GetComponent[*components.HingeComponent](s.entityManager, id)
		toggle, _ := ecs.GetComponent[*components.ToggleComponent](s.entityManager, id)
		tc, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)

		target := 0.0
		if s.state.IsOn(toggle.Key) {
			target = hinge.OpenAngle
		}
		tc.Pose.Yaw = hinge.Angle.Update(target, dt)
	}
}
