package utils

import (
	"math"

	"github.com/golang/geo/r3"
)

var worldUp = r3.Vector{Y: 1}

// Projection 透视相机投影
// 视空间约定：x 向右，y 向上，z 为沿视线方向的深度（前方为正）
type Projection struct {
	Eye    r3.Vector
	Target r3.Vector
	FOV    float64 // 垂直视场角（度）
	Near   float64
	Width  float64
	Height float64
}

// Basis 返回相机的右、上、前三个单位向量
func (p Projection) Basis() (right, up, forward r3.Vector) {
	forward = p.Target.Sub(p.Eye)
	if forward.Norm() == 0 {
		forward = r3.Vector{Z: -1}
	}
	forward = forward.Normalize()
	right = forward.Cross(worldUp)
	if right.Norm() < 1e-9 {
		// 正上方或正下方俯视
		right = r3.Vector{X: 1}
	}
	right = right.Normalize()
	up = right.Cross(forward)
	return right, up, forward
}

// Focal 焦距（像素）
func (p Projection) Focal() float64 {
	fov := p.FOV
	if fov <= 0 || fov >= 180 {
		fov = 45
	}
	return (p.Height / 2) / math.Tan(fov*math.Pi/360)
}

// ToView 世界坐标 → 视空间
func (p Projection) ToView(v r3.Vector) r3.Vector {
	right, up, forward := p.Basis()
	d := v.Sub(p.Eye)
	return r3.Vector{X: d.Dot(right), Y: d.Dot(up), Z: d.Dot(forward)}
}

// ViewToScreen 视空间 → 屏幕像素，深度小于 Near 时返回 false
func (p Projection) ViewToScreen(v r3.Vector) (x, y float64, ok bool) {
	if v.Z < p.near() {
		return 0, 0, false
	}
	f := p.Focal()
	return p.Width/2 + v.X*f/v.Z, p.Height/2 - v.Y*f/v.Z, true
}

// Project 世界坐标 → 屏幕像素和深度
func (p Projection) Project(v r3.Vector) (x, y, depth float64, ok bool) {
	view := p.ToView(v)
	x, y, ok = p.ViewToScreen(view)
	return x, y, view.Z, ok
}

// ScreenRay 从屏幕像素发出的拾取射线（单位方向）
func (p Projection) ScreenRay(sx, sy float64) Ray {
	right, up, forward := p.Basis()
	f := p.Focal()
	dir := forward.
		Add(right.Mul((sx - p.Width/2) / f)).
		Add(up.Mul((p.Height/2 - sy) / f))
	return Ray{Origin: p.Eye, Dir: dir.Normalize()}
}

func (p Projection) near() float64 {
	if p.Near <= 0 {
		return 0.1
	}
	return p.Near
}

// ClipNear 用近平面裁剪视空间多边形（Sutherland–Hodgman）
// 全部在近平面之后时返回 nil
func (p Projection) ClipNear(poly []r3.Vector) []r3.Vector {
	near := p.near()
	out := make([]r3.Vector, 0, len(poly)+1)
	for i, cur := range poly {
		prev := poly[(i+len(poly)-1)%len(poly)]
		curIn := cur.Z >= near
		prevIn := prev.Z >= near
		if curIn != prevIn {
			t := (near - prev.Z) / (cur.Z - prev.Z)
			cut := prev.Add(cur.Sub(prev).Mul(t))
			cut.Z = near
			out = append(out, cut)
		}
		if curIn {
			out = append(out, cur)
		}
	}
	if len(out) < 3 {
		return nil
	}
	return out
}
