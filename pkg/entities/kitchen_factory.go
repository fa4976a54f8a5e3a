package entities

import (
	"github.com/decker502/apartment/internal/anim"
	"github.com/decker502/apartment/pkg/components"
	"github.com/decker502/apartment/pkg/ecs"
	"github.com/decker502/apartment/pkg/game"
)

// burnerLayout 灶头位置和半径（相对灶台面板中心），下标即 BurnerKey 的编号
var burnerLayout = [4]struct {
	X, Z, Radius float64
}{
	{-0.3, 0.2, 0.15}, // 左前
	{0.3, 0.2, 0.15},  // 右前
	{-0.3, -0.2, 0.1}, // 左后
	{0.3, -0.2, 0.1},  // 右后
}

// knobLayout 旋钮从左到右对应的灶头
var knobLayout = [4]struct {
	X      float64
	Burner int
}{
	{-0.3, 0},
	{-0.1, 2},
	{0.1, 3},
	{0.3, 1},
}

// 火焰闪烁参数
const (
	flameMinSpeed = 10.0
	flameMaxSpeed = 20.0
	flameDepth    = 0.35
)

// buildKitchen 厨房：操作台、四眼灶、双开门冰箱
func (b *Builder) buildKitchen(root ecs.EntityID) {
	room := b.furniture(root, at(-18, FloorY, -16))

	counter := b.mesh(room, at(1.5, 0, -7.8),
		box(0, 0.45, 0, 5, 0.9, 1, hex("#f5f5f5")),
		// 砧板和调料罐
		box(0.5, 0.97, 0, 0.6, 0.03, 0.4, hex("#8d6e63")),
		box(1.85, 1.05, 0, 0.12, 0.2, 0.12, hex("#ffe0b2")),
		box(2.05, 1.05, 0, 0.12, 0.2, 0.12, hex("#c8e6c9")),
		box(2.25, 1.05, 0, 0.12, 0.2, 0.12, hex("#ffcdd2")),
	)
	b.buildStove(counter)
	b.buildFridge(room)
}

func (b *Builder) buildStove(counter ecs.EntityID) {
	stove := b.mesh(counter, at(-1.5, 0.95, 0),
		box(0, 0, 0.1, 1.2, 0.05, 0.8, hex("#111111")),
		box(0, -0.1, 0.51, 1.0, 0.15, 0.02, hex("#222222")),
		// 抽油烟机
		box(0, 1.5, 0, 1.2, 0.3, 0.8, hex("#888888")),
	)

	burnerOff := hex("#333333")
	for i, layout := range burnerLayout {
		key := game.BurnerKey(i)
		d := layout.Radius * 2
		b.mesh(stove, at(layout.X, 0.03, 0.1+layout.Z),
			box(0, 0, 0, d, 0.02, d, burnerOff))

		flame := b.mesh(stove, at(layout.X, 0.1, 0.1+layout.Z),
			glowBox(0, 0, 0, d*0.8, 0.1, d*0.8, hex("#ff5500")))
		b.glow(flame, key, &components.GlowComponent{
			Mode:     components.GlowFlicker,
			OnColor:  hex("#ff5500"),
			OffColor: burnerOff,
			Flicker:  anim.NewRandomOscillator(b.rng, flameMinSpeed, flameMaxSpeed),
			Depth:    flameDepth,
		})
		b.showWhenOn(flame, key)
	}

	for _, layout := range knobLayout {
		key := game.BurnerKey(layout.Burner)
		knob := b.mesh(stove, at(layout.X, -0.1, 0.54),
			box(0, 0, 0, 0.08, 0.08, 0.04, burnerOff))
		b.fixedGlow(knob, key, hex("#ff4400"), burnerOff)
		b.clickToggle(knob, key)
	}
}

func (b *Builder) buildFridge(room ecs.EntityID) {
	shell := hex("#eceff1")
	fridge := b.group(room, at(-2.5, 0, -7.8))
	b.mesh(fridge, at(0, 1.1, 0),
		box(0, 0, -0.475, 1.7, 2.2, 0.05, shell),
		box(-0.875, 0, 0, 0.05, 2.2, 1, shell),
		box(0.875, 0, 0, 0.05, 2.2, 1, shell),
		box(0, 1.075, 0, 1.8, 0.05, 1, shell),
		box(0, -1.075, 0, 1.8, 0.05, 1, shell),
		// 中隔板、搁板和食物
		box(0, 0, 0.45, 0.05, 2.1, 0.1, colorWhite),
		box(-0.45, 0.5, 0, 0.8, 0.02, 0.5, colorWhite),
		box(0.45, 0.5, 0, 0.8, 0.02, 0.5, colorWhite),
		box(-0.45, 0.6, 0, 0.3, 0.08, 0.3, hex("#b71c1c")),
		box(-0.25, 0.6, 0.1, 0.3, 0.08, 0.3, hex("#880e4f")),
		box(0.25, 0.6, 0.1, 0.14, 0.14, 0.14, hex("#c62828")),
		box(0.65, 0.62, 0, 0.26, 0.26, 0.26, hex("#a5d6a7")),
	)

	b.fridgeDoor(fridge, -0.9, -b.cfg.Doors.FridgeAngle, game.KeyFridgeLeft)
	b.fridgeDoor(fridge, 0.9, b.cfg.Doors.FridgeAngle, game.KeyFridgeRight)
}

// fridgeDoor 门轴在 hingeX，门板向中间延伸
func (b *Builder) fridgeDoor(fridge ecs.EntityID, hingeX, openAngle float64, key string) {
	hinge := b.group(fridge, at(hingeX, 1.1, 0.51))
	b.bind(hinge, key)
	ecs.AddComponent(b.em, hinge, &components.HingeComponent{
		Angle:     anim.SmoothedValue{Rate: b.cfg.Doors.Rate},
		OpenAngle: openAngle,
	})

	dir := 1.0
	if hingeX > 0 {
		dir = -1
	}
	door := b.mesh(hinge, at(0, 0, 0),
		box(dir*0.44, 0, 0, 0.88, 2.15, 0.05, hex("#cfcfcf")),
		box(dir*0.75, 0, 0.06, 0.04, 0.5, 0.04, hex("#111111")),
	)
	b.clickToggle(door, key)
}
