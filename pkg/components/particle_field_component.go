package components

import (
	"github.com/golang/geo/r3"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/decker502/apartment/internal/anim"
)

// ParticleFieldComponent 粒子场（淋浴水流、水晶球雪花）
//
// 关闭时：
//   - FreezeWhenOff 为 false：粒子收回到隐藏高度（淋浴）
//   - FreezeWhenOff 为 true：粒子停在原位且不显示，重新打开后从原位继续（雪花）
type ParticleFieldComponent struct {
	Field         *anim.ParticleField
	Color         colorful.Color
	Size          float64 // 世界单位
	FreezeWhenOff bool
	Visible       bool
}

// PointCloudComponent 静态点集（粒子灯）
type PointCloudComponent struct {
	Points []r3.Vector
	Color  colorful.Color
	Size   float64
}
