package components

import "github.com/decker502/apartment/internal/anim"

// HingeComponent 铰链门（冰箱门、淋浴门）
// 打开时角度趋向 OpenAngle，关闭时趋向 0，结果写入 TransformComponent.Pose.Yaw
type HingeComponent struct {
	Angle     anim.SmoothedValue
	OpenAngle float64
}
