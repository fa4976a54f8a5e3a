package entities

import (
	"fmt"
	"math"

	"github.com/decker502/apartment/internal/anim"
	"github.com/decker502/apartment/pkg/components"
	"github.com/decker502/apartment/pkg/config"
	"github.com/decker502/apartment/pkg/ecs"
	"github.com/decker502/apartment/pkg/game"
)

// 书房
const (
	crystalBallScale = 0.5
	bootTextScale    = 0.6
)

var (
	colorGreenLED  = hex("#00ff00")
	colorDesktop   = hex("#2a5caa")
	colorChairBody = hex("#1a1a1a")
	colorChairTrim = hex("#d50000")
)

// buildOffice 书房：书桌、电脑、水晶球、电竞椅
func (b *Builder) buildOffice(root ecs.EntityID) error {
	room := b.furniture(root, atYaw(18, FloorY, 0, -math.Pi/2))

	desk := b.mesh(room, at(0, 0, 0),
		box(0, 1.4, 0, 4.5, 0.1, 1.5, hex("#5d4037")),
		box(-2.1, 0.7, -0.6, 0.1, 1.4, 0.1, hex("#222222")),
		box(2.1, 0.7, -0.6, 0.1, 1.4, 0.1, hex("#222222")),
		box(-2.1, 0.7, 0.6, 0.1, 1.4, 0.1, hex("#222222")),
		box(2.1, 0.7, 0.6, 0.1, 1.4, 0.1, hex("#222222")),
		// 鼠标垫和鼠标
		box(0, 1.46, 0.4, 0.8, 0.02, 0.3, hex("#222222")),
		box(0.6, 1.5, 0.4, 0.1, 0.06, 0.16, colorChairBody),
	)

	if err := b.buildPC(desk); err != nil {
		return err
	}
	if err := b.buildCrystalBall(desk); err != nil {
		return err
	}
	b.buildChair(room)
	return nil
}

func (b *Builder) buildPC(desk ecs.EntityID) error {
	monitor := b.mesh(desk, at(0, 1.5, 0),
		box(0, 0.05, -0.1, 0.4, 0.02, 0.3, hex("#111111")),
		box(0, 0.2, -0.15, 0.08, 0.4, 0.08, hex("#111111")),
		box(0, 0.5, 0, 1.6, 0.9, 0.05, hex("#111111")),
	)

	// 任务栏和桌面图标只在开机完成后显示
	taskbar := b.mesh(monitor, at(0, 0.5, 0.04),
		glowBox(0, -0.35, 0, 1.5, 0.1, 0.005, hex("#1a1a1a")),
		glowBox(-0.7, -0.35, 0.005, 0.06, 0.06, 0.005, b.color(config.ColorLightOn)),
		glowBox(-0.65, 0.25, 0, 0.08, 0.1, 0.005, hex("#b3b3b3")),
		glowBox(-0.65, 0.07, 0, 0.08, 0.1, 0.005, hex("#b3b3b3")),
		glowBox(-0.65, -0.11, 0, 0.08, 0.1, 0.005, hex("#b3b3b3")),
	)
	b.hide(taskbar)

	seq, err := anim.NewBootSequence(b.cfg.Boot)
	if err != nil {
		return fmt.Errorf("failed to create boot sequence: %w", err)
	}
	offColor := hex("#1a1a1a")
	screen := b.mesh(monitor, at(0, 0.5, 0.026),
		box(0, 0, 0, 1.5, 0.8, 0.01, offColor))
	b.bind(screen, game.KeyPC)
	ecs.AddComponent(b.em, screen, &components.BootComponent{
		Sequence:     seq,
		OffColor:     offColor,
		BootingColor: hex("#000022"),
		OnColor:      colorDesktop,
		Taskbar:      taskbar,
	})
	ecs.AddComponent(b.em, screen, &components.LabelComponent{
		Color: colorGreenLED,
		Scale: bootTextScale,
	})

	tower := b.mesh(desk, at(1.2, 0.4, 0),
		box(0, 0, 0, 0.4, 0.8, 0.8, hex("#111111")))
	side := b.mesh(tower, at(-0.21, 0, 0),
		box(0, 0, 0, 0.01, 0.7, 0.7, hex("#222222")))
	b.glow(side, game.KeyPC, &components.GlowComponent{
		Mode:     components.GlowRGB,
		OffColor: hex("#222222"),
	})

	power := b.mesh(tower, at(0.1, 0.35, 0.4),
		box(0, 0, 0, 0.06, 0.02, 0.06, hex("#555555")))
	b.fixedGlow(power, game.KeyPC, colorGreenLED, hex("#555555"))
	b.clickToggle(power, game.KeyPC)
	return nil
}

func (b *Builder) buildCrystalBall(desk ecs.EntityID) error {
	ball := b.mesh(desk, scaled(at(-1.5, 1.45, 0.3), crystalBallScale),
		box(0, 0.05, 0, 0.6, 0.1, 0.6, hex("#442211")),
		// 玻璃球只画底部的圈
		box(0, 0.12, 0, 0.7, 0.04, 0.7, hex("#cfe8ff")),
		// 球内的小树
		box(0, 0.25, 0, 0.08, 0.2, 0.08, hex("#3e2723")),
		box(0, 0.4, 0, 0.3, 0.3, 0.3, hex("#1b5e20")),
		box(0, 0.55, 0, 0.2, 0.25, 0.2, hex("#2e7d32")),
	)
	b.clickToggle(ball, game.KeyCrystalBall)

	button := b.mesh(ball, at(0, 0.08, 0.28),
		box(0, 0, 0, 0.08, 0.02, 0.05, hex("#550000")))
	b.fixedGlow(button, game.KeyCrystalBall, hex("#ff0000"), hex("#550000"))

	_, err := b.particleField(ball, at(0, 0.45, 0), game.KeyCrystalBall,
		SnowFieldConfig(b.cfg.Snow), b.cfg.Snow.Color, b.cfg.Snow.PointSize, true)
	return err
}

// buildChair 点击后转一整圈，转完回到面向书桌
func (b *Builder) buildChair(room ecs.EntityID) {
	chair := b.mesh(room, atYaw(0, 0, 1.2, math.Pi),
		box(0, 0.1, 0, 0.7, 0.15, 0.7, hex("#111111")),
		box(0, 0.3, 0, 0.08, 0.4, 0.08, hex("#555555")),
		box(0, 0.55, 0, 0.55, 0.1, 0.55, colorChairBody),
		box(0, 0.56, 0.23, 0.55, 0.02, 0.04, colorChairTrim),
		box(0, 1.05, -0.2, 0.5, 1, 0.1, colorChairBody),
		glowBox(-0.18, 1.05, -0.14, 0.05, 0.9, 0.01, colorChairTrim),
		glowBox(0.18, 1.05, -0.14, 0.05, 0.9, 0.01, colorChairTrim),
		box(-0.3, 0.75, 0, 0.05, 0.4, 0.05, hex("#333333")),
		box(0.3, 0.75, 0, 0.05, 0.4, 0.05, hex("#333333")),
		box(-0.3, 0.95, 0, 0.08, 0.02, 0.35, hex("#333333")),
		box(0.3, 0.95, 0, 0.08, 0.02, 0.35, hex("#333333")),
	)
	speed := b.cfg.Chair.Speed
	b.bind(chair, game.KeyChair)
	ecs.AddComponent(b.em, chair, &components.SpinComponent{
		Spin: anim.Spin{Speed: speed, Base: math.Pi},
	})
	// 冷却时间等于转一圈的时间，转动中的点击被忽略
	b.clickTrigger(chair, game.KeyChair, 2*math.Pi/speed)
}
