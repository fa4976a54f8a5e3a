package components

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/decker502/apartment/internal/anim"
)

// GlowMode 发光方式
type GlowMode int

const (
	// GlowFixed 开时 OnColor，关时 OffColor
	GlowFixed GlowMode = iota
	// GlowRGB RGB 循环（机箱灯）
	GlowRGB
	// GlowFlicker 火焰闪烁，亮度在 [1-Depth, 1] 之间变化
	GlowFlicker
)

// GlowComponent 根据开关改变网格颜色
type GlowComponent struct {
	Mode     GlowMode
	OnColor  colorful.Color
	OffColor colorful.Color
	// OffEmissive 关闭时是否仍为自发光（例如电视待机红灯）
	OffEmissive bool

	Flicker anim.Oscillator
	Depth   float64
}

// VisibilityComponent 开关打开时显示，关闭时隐藏（水龙头水流）
type VisibilityComponent struct {
	Invert bool // 为 true 时关闭才显示
}
