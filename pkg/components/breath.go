package components

import "github.com/lucasb-eyer/go-colorful"

// BreathComponent 粒子灯：打开时旋转并呼吸缩放
// 与 PointCloudComponent 和 ToggleComponent 一起使用
type BreathComponent struct {
	SpinY float64 // 每帧弧度
	SpinZ float64
	Freq  float64
	Amp   float64

	OnColor  colorful.Color
	OffColor colorful.Color
}
