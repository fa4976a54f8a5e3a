package utils

import (
	"math"

	"github.com/golang/geo/r3"
)

// Pose 局部空间到父空间的变换
// 应用顺序：缩放 → 绕 Z 轴旋转(Roll) → 绕 Y 轴旋转(Yaw) → 平移
type Pose struct {
	Position r3.Vector
	Yaw      float64
	Roll     float64
	Scale    float64 // 0 视为 1
}

// Apply 把局部坐标点变换到父空间
func (p Pose) Apply(v r3.Vector) r3.Vector {
	s := p.Scale
	if s == 0 {
		s = 1
	}
	return p.ApplyDir(v.Mul(s)).Add(p.Position)
}

// ApplyDir 只做旋转（用于法线）
func (p Pose) ApplyDir(v r3.Vector) r3.Vector {
	if p.Roll != 0 {
		v = RotateZ(v, p.Roll)
	}
	if p.Yaw != 0 {
		v = RotateY(v, p.Yaw)
	}
	return v
}

// RotateY 绕 Y 轴右手旋转
func RotateY(v r3.Vector, angle float64) r3.Vector {
	sin, cos := math.Sincos(angle)
	return r3.Vector{
		X: v.X*cos + v.Z*sin,
		Y: v.Y,
		Z: -v.X*sin + v.Z*cos,
	}
}

// RotateZ 绕 Z 轴右手旋转
func RotateZ(v r3.Vector, angle float64) r3.Vector {
	sin, cos := math.Sincos(angle)
	return r3.Vector{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
		Z: v.Z,
	}
}
