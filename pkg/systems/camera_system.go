package systems

import (
	"log"
	"math"

	"github.com/golang/geo/r3"

	"github.com/decker502/apartment/internal/anim"
	"github.com/decker502/apartment/pkg/components"
	"github.com/decker502/apartment/pkg/config"
	"github.com/decker502/apartment/pkg/ecs"
	"github.com/decker502/apartment/pkg/utils"
)

// minPolar 避免相机正好位于注视点正上方时方位角退化
const minPolar = 0.01

// CameraSystem 管理轨道相机：拖拽旋转、滚轮缩放、飞行到目标
type CameraSystem struct {
	entityManager *ecs.EntityManager
	cfg           config.CameraConfig
	cameraEntity  ecs.EntityID
	width, height float64
}

// NewCameraSystem 创建相机系统，同时创建相机实体
func NewCameraSystem(em *ecs.EntityManager, cfg config.CameraConfig, width, height int) *CameraSystem {
	cs := &CameraSystem{
		entityManager: em,
		cfg:           cfg,
		width:         float64(width),
		height:        float64(height),
	}
	cs.cameraEntity = em.CreateEntity()
	ecs.AddComponent(em, cs.cameraEntity, &components.CameraComponent{
		Position:    cfg.Position.R3(),
		Target:      cfg.Target.R3(),
		FOV:         cfg.FOV,
		Near:        cfg.Near,
		FlyPosition: anim.SmoothedVec3{Rate: cfg.FlyRate},
		FlyTarget:   anim.SmoothedVec3{Rate: cfg.FlyRate},
	})
	return cs
}

// Entity 相机实体
func (cs *CameraSystem) Entity() ecs.EntityID {
	return cs.cameraEntity
}

func (cs *CameraSystem) camera() *components.CameraComponent {
	cam, _ := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity)
	return cam
}

// SetViewport 窗口尺寸变化时调用
func (cs *CameraSystem) SetViewport(width, height int) {
	cs.width, cs.height = float64(width), float64(height)
}

// Projection 当前帧的投影参数
func (cs *CameraSystem) Projection() utils.Projection {
	cam := cs.camera()
	return utils.Projection{
		Eye:    cam.Position,
		Target: cam.Target,
		FOV:    cam.FOV,
		Near:   cam.Near,
		Width:  cs.width,
		Height: cs.height,
	}
}

// Orbit 拖拽旋转，dx/dy 为像素位移
func (cs *CameraSystem) Orbit(dx, dy float64) {
	cam := cs.camera()
	cam.FlyingPosition, cam.FlyingTarget = false, false

	radius, azimuth, polar := cs.spherical(cam)
	azimuth -= dx * cs.cfg.OrbitSpeed
	polar = utils.Clamp(polar-dy*cs.cfg.OrbitSpeed, minPolar, cs.cfg.MaxPolar)
	cam.Position = cam.Target.Add(fromSpherical(radius, azimuth, polar))
}

// Zoom 滚轮缩放，steps > 0 拉近
func (cs *CameraSystem) Zoom(steps float64) {
	if steps == 0 {
		return
	}
	cam := cs.camera()
	radius, azimuth, polar := cs.spherical(cam)
	radius *= math.Pow(1-cs.cfg.ZoomStep, steps)
	radius = utils.Clamp(radius, cs.cfg.MinDistance, cs.cfg.MaxDistance)
	cam.Position = cam.Target.Add(fromSpherical(radius, azimuth, polar))
}

// FlyTo 开始平滑飞行到指定位置和注视点
func (cs *CameraSystem) FlyTo(position, target r3.Vector) {
	cam := cs.camera()
	cam.GoalPosition, cam.GoalTarget = position, target
	cam.FlyPosition.Current = cam.Position
	cam.FlyTarget.Current = cam.Target
	cam.FlyPosition.Rate = cs.cfg.FlyRate
	cam.FlyTarget.Rate = cs.cfg.FlyRate
	cam.FlyingPosition, cam.FlyingTarget = true, true
	log.Printf("[CameraSystem] Fly to %v looking at %v", position, target)
}

// FlyToFloorPoint 右键地板：飞到该点的视线高度，保持当前朝向
func (cs *CameraSystem) FlyToFloorPoint(p r3.Vector) {
	cam := cs.camera()
	position := r3.Vector{X: p.X, Y: cs.cfg.EyeHeight, Z: p.Z}
	dir := cam.Target.Sub(cam.Position)
	if dir.Norm() == 0 {
		dir = r3.Vector{Z: -1}
	}
	target := position.Add(dir.Normalize().Mul(5))
	target.Y = cs.cfg.LookHeight
	cs.FlyTo(position, target)
}

// Reset 飞回初始视角
func (cs *CameraSystem) Reset() {
	cs.FlyTo(cs.cfg.Position.R3(), cs.cfg.Target.R3())
}

// Flying 是否仍在飞行
func (cs *CameraSystem) Flying() bool {
	cam := cs.camera()
	return cam.FlyingPosition || cam.FlyingTarget
}

// Update 推进飞行
func (cs *CameraSystem) Update(dt float64) {
	cam := cs.camera()
	if cam.FlyingPosition {
		cam.Position = cam.FlyPosition.Update(cam.GoalPosition, dt)
		if cam.FlyPosition.Settled(cam.GoalPosition, cs.cfg.FlyEpsilon) {
			cam.FlyingPosition = false
		}
	}
	if cam.FlyingTarget {
		cam.Target = cam.FlyTarget.Update(cam.GoalTarget, dt)
		if cam.FlyTarget.Settled(cam.GoalTarget, cs.cfg.FlyEpsilon) {
			cam.FlyingTarget = false
		}
	}
}

// ApplyConfig 配置热重载时更新参数，不打断当前视角
func (cs *CameraSystem) ApplyConfig(cfg config.CameraConfig) {
	cs.cfg = cfg
	cam := cs.camera()
	cam.FOV, cam.Near = cfg.FOV, cfg.Near
}

// spherical 以注视点为中心的球坐标：半径、方位角（绕 Y）、极角（与 +Y 夹角）
func (cs *CameraSystem) spherical(cam *components.CameraComponent) (radius, azimuth, polar float64) {
	offset := cam.Position.Sub(cam.Target)
	radius = offset.Norm()
	if radius == 0 {
		return cs.cfg.MinDistance, 0, minPolar
	}
	azimuth = math.Atan2(offset.X, offset.Z)
	polar = math.Acos(utils.Clamp(offset.Y/radius, -1, 1))
	return radius, azimuth, polar
}

func fromSpherical(radius, azimuth, polar float64) r3.Vector {
	sinP, cosP := math.Sincos(polar)
	sinA, cosA := math.Sincos(azimuth)
	return r3.Vector{
		X: radius * sinP * sinA,
		Y: radius * cosP,
		Z: radius * sinP * cosA,
	}
}
