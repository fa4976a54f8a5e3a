package systems

import (
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/apartment/pkg/components"
	"github.com/decker502/apartment/pkg/ecs"
	"github.com/decker502/apartment/pkg/game"
	"github.com/decker502/apartment/pkg/utils"
)

// InputSystem 处理所有用户输入
//   - 左键点击：拾取最近的可点击物体并切换开关或触发动作
//   - 右键地板：相机飞到该点
//   - 拖拽：旋转相机；滚轮：缩放
//   - 空格：复位视角；F3：调试信息
type InputSystem struct {
	entityManager *ecs.EntityManager
	state         *game.ApplianceState
	camera        *CameraSystem
	settings      *game.SettingsManager // 可为 nil
	drag          *utils.DragManager
	floor         utils.AABB // 地板区域，顶面为右键拾取平面
}

// NewInputSystem 创建一个新的输入系统
func NewInputSystem(em *ecs.EntityManager, state *game.ApplianceState, camera *CameraSystem, settings *game.SettingsManager, floor utils.AABB) *InputSystem {
	return &InputSystem{
		entityManager: em,
		state:         state,
		camera:        camera,
		settings:      settings,
		drag:          utils.NewDragManager(utils.DefaultClickThreshold),
		floor:         floor,
	}
}

// Update 读取 ebiten 输入并分发
func (s *InputSystem) Update(dt float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.camera.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) && s.settings != nil {
		s.settings.SetShowDebug(!s.settings.GetSettings().ShowDebug)
	}
	s.HandlePointer(s.drag.Step(utils.ReadPointerSample()))
}

// HandlePointer 处理一帧的指针事件
func (s *InputSystem) HandlePointer(ev utils.PointerEvent) {
	if ev.DragDX != 0 || ev.DragDY != 0 {
		dx, dy := ev.DragDX, ev.DragDY
		if s.settings != nil && s.settings.GetSettings().InvertOrbit {
			dx, dy = -dx, -dy
		}
		s.camera.Orbit(dx, dy)
	}
	if ev.Wheel != 0 {
		s.camera.Zoom(ev.Wheel)
	}
	if ev.Click {
		if id, ok := s.Pick(float64(ev.X), float64(ev.Y)); ok {
			s.Activate(id)
		}
	}
	if ev.RightClick {
		s.flyToFloor(float64(ev.X), float64(ev.Y))
	}
}

// Pick 返回屏幕坐标下射线最先命中的可点击实体
func (s *InputSystem) Pick(sx, sy float64) (ecs.EntityID, bool) {
	ray := s.camera.Projection().ScreenRay(sx, sy)

	best := ecs.EntityID(0)
	bestT := math.Inf(1)
	for _, id := range ecs.GetEntitiesWith1[*components.ClickableComponent](s.entityManager) {
		clickable, _ := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id)
		if !clickable.IsEnabled {
			continue
		}
		local := clickable.Bounds
		if local.IsEmpty() {
			mesh, ok := ecs.GetComponent[*components.MeshComponent](s.entityManager, id)
			if !ok {
				continue
			}
			local = mesh.LocalBounds()
		}
		t, hit := WorldBounds(s.entityManager, id, local).Intersect(ray)
		if hit && t < bestT {
			best, bestT = id, t
		}
	}
	return best, best != 0
}

// Activate 执行可点击实体的动作，返回是否生效
func (s *InputSystem) Activate(id ecs.EntityID) bool {
	clickable, ok := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id)
	if !ok || !clickable.IsEnabled {
		return false
	}
	switch clickable.Kind {
	case components.ClickTrigger:
		return s.state.Trigger(clickable.Key, clickable.Cooldown)
	default:
		s.state.Toggle(clickable.Key)
		return true
	}
}

func (s *InputSystem) flyToFloor(sx, sy float64) {
	ray := s.camera.Projection().ScreenRay(sx, sy)
	p, ok := ray.IntersectPlaneY(s.floor.Max.Y)
	if !ok {
		return
	}
	if p.X < s.floor.Min.X || p.X > s.floor.Max.X || p.Z < s.floor.Min.Z || p.Z > s.floor.Max.Z {
		log.Printf("[InputSystem] Right click outside floor at (%.2f, %.2f)", p.X, p.Z)
		return
	}
	s.camera.FlyToFloorPoint(p)
}
