package components

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/decker502/apartment/internal/anim"
)

// BlinkLightsComponent 圣诞树彩灯
// 第 i 个振荡器控制 MeshComponent.Boxes[i]
type BlinkLightsComponent struct {
	Oscillators []anim.Oscillator
	Colors      []colorful.Color
	OffColor    colorful.Color
}
