package components

import "github.com/decker502/apartment/internal/anim"

// SpinComponent 触发后旋转一整圈（电竞椅）
// 转动中的点击由触发冷却拦截
type SpinComponent struct {
	Spin anim.Spin
}

// RotorComponent 按累计时间匀速旋转（音箱玻璃罩）
type RotorComponent struct {
	Rate float64 // 弧度/秒
}
