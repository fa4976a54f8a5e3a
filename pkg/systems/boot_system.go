package systems

import (
	"strings"

	"github.com/decker502/apartment/internal/anim"
	"github.com/decker502/apartment/pkg/components"
	"github.com/decker502/apartment/pkg/ecs"
	"github.com/decker502/apartment/pkg/game"
)

// BootSystem 电脑开机流程：屏幕颜色、自检文字和任务栏
type BootSystem struct {
	entityManager *ecs.EntityManager
	state         *game.ApplianceState
}

// NewBootSystem 创建开机系统
func NewBootSystem(em *ecs.EntityManager, state *game.ApplianceState) *BootSystem {
	return &BootSystem{entityManager: em, state: state}
}

// Update 推进开机流程并刷新显示
func (s *BootSystem) Update(dt float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.BootComponent, *components.ToggleComponent](s.entityManager) {
		boot, _ := ecs.GetComponent[*components.BootComponent](s.entityManager, id)
		toggle, _ := ecs.GetComponent[*components.ToggleComponent](s.entityManager, id)
		if boot.Sequence == nil {
			continue
		}

		boot.Sequence.Update(s.state.IsOn(toggle.Key), dt)
		state := boot.Sequence.State()

		if mesh, ok := ecs.GetComponent[*components.MeshComponent](s.entityManager, id); ok {
			switch state {
			case anim.BootBooting:
				mesh.SetColor(boot.BootingColor, true)
			case anim.BootOn:
				mesh.SetColor(boot.OnColor, true)
			default:
				mesh.SetColor(boot.OffColor, false)
			}
		}

		if label, ok := ecs.GetComponent[*components.LabelComponent](s.entityManager, id); ok {
			if state == anim.BootBooting {
				label.Text = strings.Join(boot.Sequence.Lines(), "\n")
			} else {
				label.Text = ""
			}
		}

		if boot.Taskbar != 0 {
			if mesh, ok := ecs.GetComponent[*components.MeshComponent](s.entityManager, boot.Taskbar); ok {
				mesh.Hidden = state != anim.BootOn
			}
		}
	}
}
