package entities

import (
	"math"

	"github.com/decker502/apartment/internal/anim"
	"github.com/decker502/apartment/pkg/components"
	"github.com/decker502/apartment/pkg/config"
	"github.com/decker502/apartment/pkg/ecs"
	"github.com/decker502/apartment/pkg/game"
)

// 音箱内部的缩放和玻璃罩转速
const (
	speakerScale = 0.4
	domeRate     = 0.02
	// tvFlickerDepth 电视画面的亮度起伏，模拟播放中的视频
	tvFlickerDepth = 0.15
)

// buildLivingRoom 客厅：电视柜（电视、音箱）、沙发、落地灯
func (b *Builder) buildLivingRoom(root ecs.EntityID) {
	cabinet := b.furniture(root, at(0, FloorY, -4))
	b.mesh(cabinet, at(0, 0, 0),
		box(0, 0.75, 0, 8, 1.5, 3, b.color(config.ColorCabinet)),
		box(-2, 0.75, 1.51, 3.8, 1.3, 0.02, b.color(config.ColorBase)),
		box(2, 0.75, 1.51, 3.8, 1.3, 0.02, b.color(config.ColorBase)),
		box(-0.5, 0.75, 1.55, 0.1, 0.4, 0.05, b.color(config.ColorDarkGold)),
		box(0.5, 0.75, 1.55, 0.1, 0.4, 0.05, b.color(config.ColorDarkGold)),
	)
	b.buildTV(cabinet)
	b.buildSpeaker(cabinet)

	sofa := b.furniture(root, atYaw(0, FloorY, 3.5, math.Pi))
	b.mesh(sofa, at(0, 0, 0),
		box(0, 0.4, 0, 4, 0.5, 1.5, b.color(config.ColorFabric)),
		box(0, 0.95, -0.6, 4, 1.1, 0.3, b.color(config.ColorFabric)),
		box(-1.9, 0.6, 0, 0.3, 0.7, 1.5, b.color(config.ColorFabric)),
		box(1.9, 0.6, 0, 0.3, 0.7, 1.5, b.color(config.ColorFabric)),
		// 沙发上的兔子玩偶
		box(-0.8, 0.95, -0.2, 0.5, 0.5, 0.45, hex("#f5f5f5")),
		box(-0.8, 1.35, -0.15, 0.45, 0.4, 0.4, hex("#f5f5f5")),
	)
	b.buildFloorLamp(sofa)
}

func (b *Builder) buildTV(cabinet ecs.EntityID) {
	tv := b.mesh(cabinet, at(-1.5, 1.5, 0),
		box(0, 0.1, 0, 1.5, 0.2, 0.8, hex("#111111")),
		box(0, 0.5, 0, 0.6, 0.8, 0.6, hex("#111111")),
		box(0, 2.2, 0, 5.5, 3.2, 0.2, b.color(config.ColorDarkGold)),
		// 待机指示灯常亮
		glowBox(2.35, 0.8, 0.11, 0.04, 0.04, 0.01, hex("#ff0000")),
	)

	screen := b.mesh(tv, at(0, 2.2, 0.11),
		box(0, 0, 0, 5.2, 2.9, 0.01, hex("#000000")))
	b.glow(screen, game.KeyTV, &components.GlowComponent{
		Mode:     components.GlowFlicker,
		OnColor:  hex("#4a90d9"),
		OffColor: hex("#000000"),
		Flicker:  anim.NewRandomOscillator(b.rng, 1, 3),
		Depth:    tvFlickerDepth,
	})

	button := b.mesh(tv, at(2.5, 0.8, 0.11),
		box(0, 0, 0, 0.12, 0.12, 0.04, hex("#222222")))
	b.fixedGlow(button, game.KeyTV, hex("#00ff00"), hex("#222222"))
	b.clickToggle(button, game.KeyTV)
}

func (b *Builder) buildSpeaker(cabinet ecs.EntityID) {
	speaker := b.group(cabinet, at(2, 1.5, 0))
	inner := b.group(speaker, scaled(at(0, 0.48, 0), speakerScale))

	b.mesh(inner, at(0, 0, 0),
		box(0, 0, 0, 3.04, 1.2, 3.04, b.color(config.ColorFabric)),
		box(0, -0.65, 0, 2.8, 0.1, 2.8, hex("#000000")),
		box(0, 0.6, 0, 3.06, 0.05, 3.06, b.color(config.ColorDarkGold)),
		box(0, 0, 1.53, 0.8, 0.15, 0.01, hex("#000000")),
		// 中心柱
		box(0, 0.9, 0, 1.0, 0.6, 1.0, hex("#111111")),
	)

	turbine := b.cfg.Turbine
	bladeOff := b.color(config.ColorLightOff)
	blades := make([]components.Box, turbine.Blades)
	for i := range blades {
		angle := float64(i) / float64(turbine.Blades) * 2 * math.Pi
		blades[i] = box(math.Cos(angle)*0.8, 0.9, math.Sin(angle)*0.8, 0.25, 0.6, 0.25, bladeOff)
	}
	turbineID := b.mesh(inner, at(0, 0, 0), blades...)
	b.bind(turbineID, game.KeySpeaker)
	ecs.AddComponent(b.em, turbineID, &components.PulseComponent{
		Wave:     anim.Wave{Speed: turbine.Speed, PhaseStep: turbine.PhaseStep, Floor: turbine.Floor},
		OnColor:  b.color(config.ColorLightOn),
		OffColor: bladeOff,
		FadeRate: turbine.FadeRate,
	})

	// 玻璃罩只画骨架，缓慢自转
	dome := b.mesh(inner, at(0, 0.6, 0),
		box(1.05, 0.75, 1.05, 0.08, 1.5, 0.08, colorWhite),
		box(-1.05, 0.75, 1.05, 0.08, 1.5, 0.08, colorWhite),
		box(1.05, 0.75, -1.05, 0.08, 1.5, 0.08, colorWhite),
		box(-1.05, 0.75, -1.05, 0.08, 1.5, 0.08, colorWhite),
		box(0, 1.5, 1.05, 2.18, 0.06, 0.08, colorWhite),
		box(0, 1.5, -1.05, 2.18, 0.06, 0.08, colorWhite),
		box(1.05, 1.5, 0, 0.08, 0.06, 2.18, colorWhite),
		box(-1.05, 1.5, 0, 0.08, 0.06, 2.18, colorWhite),
	)
	ecs.AddComponent(b.em, dome, &components.RotorComponent{Rate: domeRate})

	button := b.mesh(inner, at(0, 0.6, 1.55),
		box(0, 0, 0, 0.3, 0.3, 0.05, hex("#333333")))
	b.fixedGlow(button, game.KeySpeaker, colorWhite, hex("#333333"))
	b.clickToggle(button, game.KeySpeaker)

	icon := b.mesh(inner, at(0, 0.6, 1.58),
		glowBox(0, 0, 0, 0.12, 0.12, 0.01, hex("#555555")))
	b.glow(icon, game.KeySpeaker, &components.GlowComponent{
		Mode:        components.GlowFixed,
		OnColor:     b.color(config.ColorLightOn),
		OffColor:    hex("#555555"),
		OffEmissive: true,
	})
}

func (b *Builder) buildFloorLamp(sofa ecs.EntityID) {
	lamp := b.mesh(sofa, at(2.5, 0, 0.5),
		box(0, 0.05, 0, 0.8, 0.1, 0.8, hex("#222222")),
		box(0, 2.5, 0, 0.06, 5, 0.06, hex("#222222")),
	)

	shade := b.mesh(lamp, at(0, 4.5, 0),
		box(0, 0, 0, 1.3, 0.8, 1.3, hex("#f0e6d2")))
	b.fixedGlow(shade, game.KeyFloorLamp, hex("#fff3d6"), hex("#f0e6d2"))
	b.clickToggle(shade, game.KeyFloorLamp)

	bulb := b.mesh(lamp, at(0, 4.4, 0),
		box(0, 0, 0, 0.3, 0.3, 0.3, hex("#cccccc")))
	b.fixedGlow(bulb, game.KeyFloorLamp, hex("#ffaa33"), hex("#cccccc"))
}
