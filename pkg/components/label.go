package components

import "github.com/lucasb-eyer/go-colorful"

// LabelComponent 在实体位置绘制的屏幕文字（房间名、开机文字）
type LabelComponent struct {
	Text  string
	Color colorful.Color
	// Scale 文字大小倍数，0 视为 1
	Scale float64
}
