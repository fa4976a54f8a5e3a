package components

import (
	"github.com/golang/geo/r3"

	"github.com/decker502/apartment/internal/anim"
)

// CameraComponent 轨道相机状态
//
// 拖拽和滚轮直接修改 Position；右键地板或空格复位时设置飞行目标，
// 由 CameraSystem 每帧用平滑插值逼近，距离小于阈值后停止飞行。
// 用户拖拽会取消飞行。
type CameraComponent struct {
	Position r3.Vector
	Target   r3.Vector

	FOV  float64
	Near float64

	// 位置和注视点分别飞行，各自到达后停止
	FlyingPosition bool
	FlyingTarget   bool
	FlyPosition    anim.SmoothedVec3
	FlyTarget      anim.SmoothedVec3
	GoalPosition   r3.Vector
	GoalTarget     r3.Vector
}
