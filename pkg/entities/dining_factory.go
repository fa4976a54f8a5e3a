package entities

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/decker502/apartment/internal/anim"
	"github.com/decker502/apartment/pkg/components"
	"github.com/decker502/apartment/pkg/ecs"
	"github.com/decker502/apartment/pkg/game"
)

// 圣诞树外形：7 层逐渐变小的树冠，彩灯贴在树冠外侧
const (
	treeScale       = 1.8
	treeLayers      = 7
	treeTop         = 2.2
	treeFoliageSpan = 1.8
	treeBaseRadius  = 0.6
	bulbMinY        = 0.5
	bulbSpanY       = 1.5
)

var (
	colorWoodDark  = hex("#3e2723")
	colorWoodLight = hex("#5d4037")
	colorFoliage   = hex("#1b5e20")
	colorGold      = hex("#ffd700")
	colorBulbOff   = hex("#333333")
)

// diningChairs 四把椅子的位置和朝向（椅背背对餐桌）
var diningChairs = []struct {
	X, Z, Yaw float64
}{
	{0, 2, math.Pi},
	{0, -2, 0},
	{2, 0, -math.Pi / 2},
	{-2, 0, math.Pi / 2},
}

// buildDining 餐厅：圆桌、四把椅子、圣诞树
func (b *Builder) buildDining(root ecs.EntityID) {
	room := b.furniture(root, at(0, FloorY, -16))

	b.mesh(room, at(0, 0, 0),
		box(0, 0.75, 0, 3.2, 0.08, 3.2, colorWoodLight),
		box(0, 0.37, 0, 0.2, 0.74, 0.2, colorWoodDark),
		box(0, 0.02, 0, 1.0, 0.04, 1.0, colorWoodDark),
		// 花瓶和花
		box(0, 0.94, 0, 0.25, 0.3, 0.25, colorWhite),
		box(-0.06, 1.2, 0, 0.08, 0.08, 0.08, colorWhite),
		box(0.06, 1.22, 0.04, 0.08, 0.08, 0.08, colorWhite),
		box(0, 1.18, -0.06, 0.08, 0.08, 0.08, colorWhite),
	)
	for _, c := range diningChairs {
		b.mesh(room, atYaw(c.X, 0, c.Z, c.Yaw), diningChairBoxes()...)
	}

	b.buildChristmasTree(room)
}

func diningChairBoxes() []components.Box {
	return []components.Box{
		box(-0.2, 0.2, -0.2, 0.05, 0.4, 0.05, colorWoodDark),
		box(0.2, 0.2, -0.2, 0.05, 0.4, 0.05, colorWoodDark),
		box(-0.2, 0.2, 0.2, 0.05, 0.4, 0.05, colorWoodDark),
		box(0.2, 0.2, 0.2, 0.05, 0.4, 0.05, colorWoodDark),
		box(0, 0.42, 0, 0.5, 0.05, 0.5, colorWoodLight),
		box(0, 0.9, -0.23, 0.5, 0.5, 0.05, colorWoodLight),
		box(-0.2, 0.65, -0.23, 0.05, 0.5, 0.05, colorWoodDark),
		box(0.2, 0.65, -0.23, 0.05, 0.5, 0.05, colorWoodDark),
	}
}

func (b *Builder) buildChristmasTree(room ecs.EntityID) {
	tree := b.group(room, scaled(at(7.5, 0, -7.5), treeScale))

	foliage := []components.Box{
		box(0, 0.15, 0, 0.4, 0.3, 0.4, hex("#8d6e63")),
		box(0, 1.0, 0, 0.16, 1.5, 0.16, colorWoodDark),
	}
	for i := range treeLayers {
		r := treeBaseRadius - float64(i)/treeLayers*0.45
		// 方形截面取圆锥底面的内接尺寸
		w := r * math.Sqrt2
		foliage = append(foliage, box(0, 0.4+float64(i)*0.25, 0, w, 0.4, w, colorFoliage))
	}
	body := b.mesh(tree, at(0, 0, 0), foliage...)
	b.clickToggle(body, game.KeyTree)

	star := b.mesh(tree, at(0, treeTop, 0),
		box(0, 0, 0, 0.17, 0.17, 0.17, colorGold))
	b.fixedGlow(star, game.KeyTree, colorGold, colorGold)

	b.buildTreeLights(tree)
}

// buildTreeLights 彩灯随机分布在树冠外侧，每个灯有自己的闪烁频率
func (b *Builder) buildTreeLights(tree ecs.EntityID) {
	cfg := b.cfg.Tree
	bulbs := make([]components.Box, cfg.Bulbs)
	lights := &components.BlinkLightsComponent{
		Oscillators: make([]anim.Oscillator, cfg.Bulbs),
		Colors:      make([]colorful.Color, cfg.Bulbs),
		OffColor:    colorBulbOff,
	}
	for i := range bulbs {
		y := bulbMinY + b.rng.Float64()*bulbSpanY
		r := (treeTop-y)/treeFoliageSpan*treeBaseRadius + 0.02
		theta := b.rng.Float64() * 2 * math.Pi
		lights.Colors[i] = colorful.Hsl(b.rng.Float64()*360, cfg.Saturation, cfg.Lightness).Clamped()
		lights.Oscillators[i] = anim.NewRandomOscillator(b.rng, cfg.MinSpeed, cfg.MaxSpeed)
		bulbs[i] = box(r*math.Cos(theta), y, r*math.Sin(theta), 0.05, 0.09, 0.05, colorBulbOff)
	}

	id := b.mesh(tree, at(0, 0, 0), bulbs...)
	b.bind(id, game.KeyTree)
	ecs.AddComponent(b.em, id, lights)
}
