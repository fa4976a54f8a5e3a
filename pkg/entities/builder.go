// Package entities 创建公寓场景中的所有实体
//
// 每个房间由一个分组实体（只有 TransformComponent）和若干子实体组成，
// 会动的部件单独成为子实体，由对应的系统每帧写入位姿或颜色。
// 圆柱、球体等曲面统一用长方体近似。
package entities

import (
	"math/rand"

	"github.com/golang/geo/r3"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/decker502/apartment/pkg/components"
	"github.com/decker502/apartment/pkg/config"
	"github.com/decker502/apartment/pkg/ecs"
	"github.com/decker502/apartment/pkg/utils"
)

// clickPadding 小按钮的拾取区域向外扩展的距离（局部单位）
const clickPadding = 0.08

// Builder 场景构建器
type Builder struct {
	em  *ecs.EntityManager
	cfg *config.ApartmentConfig
	rng *rand.Rand

	// clickables 开关键 → 可点击实体
	clickables map[string]ecs.EntityID
}

func newBuilder(em *ecs.EntityManager, cfg *config.ApartmentConfig, rng *rand.Rand) *Builder {
	return &Builder{
		em:         em,
		cfg:        cfg,
		rng:        rng,
		clickables: make(map[string]ecs.EntityID),
	}
}

// at 只有平移的位姿
func at(x, y, z float64) utils.Pose {
	return utils.Pose{Position: r3.Vector{X: x, Y: y, Z: z}}
}

// atYaw 平移加绕 Y 轴旋转
func atYaw(x, y, z, yaw float64) utils.Pose {
	p := at(x, y, z)
	p.Yaw = yaw
	return p
}

// scaled 返回带缩放的位姿副本
func scaled(p utils.Pose, s float64) utils.Pose {
	p.Scale = s
	return p
}

// box 以中心和尺寸描述一个长方体
func box(cx, cy, cz, sx, sy, sz float64, c colorful.Color) components.Box {
	return components.Box{
		Center: r3.Vector{X: cx, Y: cy, Z: cz},
		Size:   r3.Vector{X: sx, Y: sy, Z: sz},
		Color:  c,
	}
}

// glowBox 自发光长方体
func glowBox(cx, cy, cz, sx, sy, sz float64, c colorful.Color) components.Box {
	b := box(cx, cy, cz, sx, sy, sz, c)
	b.Emissive = true
	return b
}

// hex 代码中的固定颜色
func hex(s string) colorful.Color {
	return config.MustColor(s)
}

// color 调色板中的命名颜色
func (b *Builder) color(name string) colorful.Color {
	return b.cfg.Palette.Color(name)
}

// group 创建只有位姿的分组实体
func (b *Builder) group(parent ecs.EntityID, pose utils.Pose) ecs.EntityID {
	id := b.em.CreateEntity()
	ecs.AddComponent(b.em, id, &components.TransformComponent{Parent: parent, Pose: pose})
	return id
}

// mesh 创建带几何体的实体
func (b *Builder) mesh(parent ecs.EntityID, pose utils.Pose, boxes ...components.Box) ecs.EntityID {
	id := b.group(parent, pose)
	ecs.AddComponent(b.em, id, &components.MeshComponent{Boxes: boxes})
	return id
}

// furniture 房间内家具的分组，带统一缩放
func (b *Builder) furniture(parent ecs.EntityID, pose utils.Pose) ecs.EntityID {
	return b.group(parent, scaled(pose, b.cfg.FurnitureScale))
}

// bind 把实体绑定到开关键
func (b *Builder) bind(id ecs.EntityID, key string) {
	ecs.AddComponent(b.em, id, &components.ToggleComponent{Key: key})
}

// clickToggle 点击实体翻转开关
func (b *Builder) clickToggle(id ecs.EntityID, key string) {
	b.clickable(id, components.ClickToggle, key, 0)
}

// clickTrigger 点击实体触发一次性动作
func (b *Builder) clickTrigger(id ecs.EntityID, key string, cooldown float64) {
	b.clickable(id, components.ClickTrigger, key, cooldown)
}

func (b *Builder) clickable(id ecs.EntityID, kind components.ClickKind, key string, cooldown float64) {
	bounds := utils.EmptyAABB()
	if mesh, ok := ecs.GetComponent[*components.MeshComponent](b.em, id); ok {
		bounds = padBounds(mesh.LocalBounds(), clickPadding)
	}
	ecs.AddComponent(b.em, id, &components.ClickableComponent{
		Kind:      kind,
		Key:       key,
		Cooldown:  cooldown,
		Bounds:    bounds,
		IsEnabled: true,
	})
	b.clickables[key] = id
}

// glow 添加开关控制的发光组件
func (b *Builder) glow(id ecs.EntityID, key string, glow *components.GlowComponent) {
	b.bind(id, key)
	ecs.AddComponent(b.em, id, glow)
}

// fixedGlow 开时 on（自发光），关时 off
func (b *Builder) fixedGlow(id ecs.EntityID, key string, on, off colorful.Color) {
	b.glow(id, key, &components.GlowComponent{Mode: components.GlowFixed, OnColor: on, OffColor: off})
}

// showWhenOn 开关打开时才显示
func (b *Builder) showWhenOn(id ecs.EntityID, key string) {
	b.bind(id, key)
	ecs.AddComponent(b.em, id, &components.VisibilityComponent{})
	b.hide(id)
}

// hide 初始隐藏网格，之后由系统控制显隐
func (b *Builder) hide(id ecs.EntityID) {
	if mesh, ok := ecs.GetComponent[*components.MeshComponent](b.em, id); ok {
		mesh.Hidden = true
	}
}

// label 在位置上显示文字
func (b *Builder) label(parent ecs.EntityID, pose utils.Pose, text string, scale float64) ecs.EntityID {
	id := b.group(parent, pose)
	ecs.AddComponent(b.em, id, &components.LabelComponent{
		Text:  text,
		Color: b.color(config.ColorLabel),
		Scale: scale,
	})
	return id
}

func padBounds(a utils.AABB, pad float64) utils.AABB {
	if a.IsEmpty() {
		return a
	}
	d := r3.Vector{X: pad, Y: pad, Z: pad}
	return utils.AABB{Min: a.Min.Sub(d), Max: a.Max.Add(d)}
}
