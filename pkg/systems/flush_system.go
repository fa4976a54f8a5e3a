package systems

import (
	"log"

	"github.com/decker502/apartment/pkg/components"
	"github.com/decker502/apartment/pkg/ecs"
	"github.com/decker502/apartment/pkg/game"
)

// FlushSystem 马桶冲水：水面缩小、旋转、重新注满
type FlushSystem struct {
	entityManager *ecs.EntityManager
	state         *game.ApplianceState
}

// NewFlushSystem 创建冲水系统
func NewFlushSystem(em *ecs.EntityManager, state *game.ApplianceState) *FlushSystem {
	return &FlushSystem{entityManager: em, state: state}
}

// Update 推进冲水序列
// 每次被接受的点击都从头开始冲水，是否接受由触发冷却决定
func (s *FlushSystem) Update(dt float64) {
	for _, id := range ecs.GetEntitiesWith3[*components.FlushComponent, *components.ToggleComponent, *components.TransformComponent](s.entityManager) {
		flush, _ := ecs.GetComponent[*components.FlushComponent](s.entityManager, id)
		toggle, _ := ecs.GetComponent[*components.ToggleComponent](s.entityManager, id)
		tc, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		if flush.Sequence == nil {
			continue
		}

		if s.state.JustTriggered(toggle.Key) {
			flush.Sequence.Start()
			log.Printf("[FlushSystem] entity %d flush started", id)
		}
		scale, _ := flush.Sequence.Update(false, dt)
		tc.Pose.Scale = scale
		tc.Pose.Yaw = flush.Sequence.Rotation()
	}
}
