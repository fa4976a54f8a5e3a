package systems

import (
	"github.com/decker502/apartment/pkg/components"
	"github.com/decker502/apartment/pkg/ecs"
	"github.com/decker502/apartment/pkg/game"
)

// ParticleSystem 根据开关状态推进所有粒子场
type ParticleSystem struct {
	entityManager *ecs.EntityManager
	state         *game.ApplianceState
}

// NewParticleSystem 创建粒子系统
func NewParticleSystem(em *ecs.EntityManager, state *game.ApplianceState) *ParticleSystem {
	return &ParticleSystem{entityManager: em, state: state}
}

// Update 推进粒子场
func (s *ParticleSystem) Update(dt float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.ParticleFieldComponent, *components.ToggleComponent](s.entityManager) {
		pf, _ := ecs.GetComponent[*components.ParticleFieldComponent](s.entityManager, id)
		toggle, _ := ecs.GetComponent[*components.ToggleComponent](s.entityManager, id)
		if pf.Field == nil {
			continue
		}

		on := s.state.IsOn(toggle.Key)
		pf.Visible = on
		if !on && pf.FreezeWhenOff {
			continue
		}
		pf.Field.Update(on, dt)
	}
}
