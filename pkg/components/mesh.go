package components

import (
	"github.com/golang/geo/r3"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/decker502/apartment/pkg/utils"
)

// Box 局部空间中的轴对齐长方体
type Box struct {
	Center r3.Vector
	Size   r3.Vector
	Color  colorful.Color
	// Emissive 自发光面不受光照明暗影响
	Emissive bool
}

// MeshComponent 由若干长方体组成的可见几何体
type MeshComponent struct {
	Boxes  []Box
	Hidden bool
}

// SetColor 统一设置所有长方体的颜色
func (m *MeshComponent) SetColor(c colorful.Color, emissive bool) {
	for i := range m.Boxes {
		m.Boxes[i].Color = c
		m.Boxes[i].Emissive = emissive
	}
}

// LocalBounds 局部空间包围盒
func (m *MeshComponent) LocalBounds() utils.AABB {
	b := utils.EmptyAABB()
	for _, box := range m.Boxes {
		half := box.Size.Mul(0.5)
		b = b.Extend(box.Center.Sub(half)).Extend(box.Center.Add(half))
	}
	return b
}

// Corners 返回长方体的 8 个局部顶点
// 顺序：底面 (-y) 逆时针 0-3，顶面 (+y) 4-7
func (b Box) Corners() [8]r3.Vector {
	h := b.Size.Mul(0.5)
	c := b.Center
	return [8]r3.Vector{
		{X: c.X - h.X, Y: c.Y - h.Y, Z: c.Z - h.Z},
		{X: c.X + h.X, Y: c.Y - h.Y, Z: c.Z - h.Z},
		{X: c.X + h.X, Y: c.Y - h.Y, Z: c.Z + h.Z},
		{X: c.X - h.X, Y: c.Y - h.Y, Z: c.Z + h.Z},
		{X: c.X - h.X, Y: c.Y + h.Y, Z: c.Z - h.Z},
		{X: c.X + h.X, Y: c.Y + h.Y, Z: c.Z - h.Z},
		{X: c.X + h.X, Y: c.Y + h.Y, Z: c.Z + h.Z},
		{X: c.X - h.X, Y: c.Y + h.Y, Z: c.Z + h.Z},
	}
}

// BoxFaces 每个面的顶点索引（从外侧看逆时针）和局部法线
var BoxFaces = [6]struct {
	Indices [4]int
	Normal  r3.Vector
}{
	{[4]int{0, 1, 2, 3}, r3.Vector{Y: -1}},
	{[4]int{4, 7, 6, 5}, r3.Vector{Y: 1}},
	{[4]int{0, 4, 5, 1}, r3.Vector{Z: -1}},
	{[4]int{3, 2, 6, 7}, r3.Vector{Z: 1}},
	{[4]int{0, 3, 7, 4}, r3.Vector{X: -1}},
	{[4]int{1, 5, 6, 2}, r3.Vector{X: 1}},
}
