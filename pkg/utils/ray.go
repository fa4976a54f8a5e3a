package utils

import (
	"math"

	"github.com/golang/geo/r3"
)

// Ray 射线，Dir 不要求单位长度
type Ray struct {
	Origin r3.Vector
	Dir    r3.Vector
}

// At 返回射线参数 t 处的点
func (r Ray) At(t float64) r3.Vector {
	return r.Origin.Add(r.Dir.Mul(t))
}

// AABB 轴对齐包围盒
type AABB struct {
	Min, Max r3.Vector
}

// EmptyAABB 返回可用 Extend 逐点扩展的空包围盒
func EmptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{
		Min: r3.Vector{X: inf, Y: inf, Z: inf},
		Max: r3.Vector{X: -inf, Y: -inf, Z: -inf},
	}
}

// IsEmpty 是否没有包含任何点
func (b AABB) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Extend 扩展包围盒以包含 p
func (b AABB) Extend(p r3.Vector) AABB {
	return AABB{
		Min: r3.Vector{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y), Z: math.Min(b.Min.Z, p.Z)},
		Max: r3.Vector{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y), Z: math.Max(b.Max.Z, p.Z)},
	}
}

// Union 合并两个包围盒
func (b AABB) Union(o AABB) AABB {
	if o.IsEmpty() {
		return b
	}
	return b.Extend(o.Min).Extend(o.Max)
}

// Center 包围盒中心
func (b AABB) Center() r3.Vector {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Intersect 射线与包围盒求交（slab 算法）
// 返回最近的非负参数 t；射线起点在盒内时返回 0
func (b AABB) Intersect(r Ray) (float64, bool) {
	if b.IsEmpty() {
		return 0, false
	}
	tMin, tMax := 0.0, math.Inf(1)
	origin := [3]float64{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dir := [3]float64{r.Dir.X, r.Dir.Y, r.Dir.Z}
	lo := [3]float64{b.Min.X, b.Min.Y, b.Min.Z}
	hi := [3]float64{b.Max.X, b.Max.Y, b.Max.Z}

	for i := 0; i < 3; i++ {
		if dir[i] == 0 {
			if origin[i] < lo[i] || origin[i] > hi[i] {
				return 0, false
			}
			continue
		}
		inv := 1 / dir[i]
		t1 := (lo[i] - origin[i]) * inv
		t2 := (hi[i] - origin[i]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}
	return tMin, true
}

// IntersectPlaneY 射线与水平面 y=h 求交，只接受前方的交点
func (r Ray) IntersectPlaneY(h float64) (r3.Vector, bool) {
	if r.Dir.Y == 0 {
		return r3.Vector{}, false
	}
	t := (h - r.Origin.Y) / r.Dir.Y
	if t < 0 {
		return r3.Vector{}, false
	}
	return r.At(t), true
}
