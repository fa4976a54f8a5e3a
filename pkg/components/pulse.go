package components

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/decker502/apartment/internal/anim"
)

// PulseComponent 音箱涡轮叶片的波浪灯效
// 第 i 片叶片对应 MeshComponent.Boxes[i]
type PulseComponent struct {
	Wave     anim.Wave
	OnColor  colorful.Color
	OffColor colorful.Color
	// FadeRate 关闭后每帧向 OffColor 插值的比例
	FadeRate float64
}
