package entities

import (
	"fmt"

	"github.com/golang/geo/r3"

	"github.com/decker502/apartment/pkg/components"
	"github.com/decker502/apartment/pkg/config"
	"github.com/decker502/apartment/pkg/ecs"
	"github.com/decker502/apartment/pkg/game"
	"github.com/decker502/apartment/pkg/utils"
)

// lampCloudY 粒子灯球心高度（相对床头柜台面）
const lampCloudY = 0.45

// buildBedroom 卧室：双人床、床头柜、粒子灯
func (b *Builder) buildBedroom(root ecs.EntityID) error {
	room := b.furniture(root, at(18, FloorY, -16))

	b.mesh(room, at(0, 0, 0),
		box(0, 0.2, 0, 3.4, 0.4, 3.5, hex("#1a1a1a")),
		// 床头板
		box(0, 0.8, -1.65, 3.4, 1.2, 0.1, hex("#1a1a1a")),
		box(0, 0.45, 0.1, 3.0, 0.25, 3.1, hex("#e0e0e0")),
		// 被子和毯子
		box(0, 0.6, 0.6, 3.1, 0.1, 2.0, hex("#9e9e9e")),
		box(0, 0.67, 1.2, 3.15, 0.06, 0.6, hex("#424242")),
		// 枕头
		box(-0.65, 0.68, -1.1, 1.0, 0.2, 0.5, hex("#bdbdbd")),
		box(0.65, 0.68, -1.1, 1.0, 0.2, 0.5, hex("#bdbdbd")),
	)

	nightstand := b.mesh(room, at(-2.4, 0, -1.2),
		box(0, 0.25, 0, 0.8, 0.5, 0.8, hex("#212121")))
	return b.buildParticleLamp(nightstand)
}

// buildParticleLamp 球面点云灯，打开后旋转并呼吸缩放
func (b *Builder) buildParticleLamp(nightstand ecs.EntityID) error {
	cfg := b.cfg.Lamp
	onColor, err := config.ParseColor(cfg.OnColor)
	if err != nil {
		return fmt.Errorf("failed to parse lamp on color: %w", err)
	}
	offColor, err := config.ParseColor(cfg.OffColor)
	if err != nil {
		return fmt.Errorf("failed to parse lamp off color: %w", err)
	}

	lamp := b.mesh(nightstand, at(0, 0.5, 0),
		box(0, 0.05, 0, 0.2, 0.1, 0.2, hex("#222222")),
		box(0, 0.2, 0, 0.04, 0.3, 0.04, hex("#555555")),
	)
	b.clickToggle(lamp, game.KeyBedroomLamp)
	// 点云本身没有网格，拾取范围扩大到整个球
	if clickable, ok := ecs.GetComponent[*components.ClickableComponent](b.em, lamp); ok {
		reach := cfg.Radius * (1 + cfg.BreathAmp)
		clickable.Bounds = clickable.Bounds.Union(utils.AABB{
			Min: r3.Vector{X: -reach, Y: lampCloudY - reach, Z: -reach},
			Max: r3.Vector{X: reach, Y: lampCloudY + reach, Z: reach},
		})
	}

	cloud := b.group(lamp, at(0, lampCloudY, 0))
	b.bind(cloud, game.KeyBedroomLamp)
	ecs.AddComponent(b.em, cloud, &components.PointCloudComponent{
		Points: LampPoints(cfg, b.rng),
		Color:  offColor,
		Size:   cfg.PointSize,
	})
	ecs.AddComponent(b.em, cloud, &components.BreathComponent{
		SpinY:    cfg.SpinY,
		SpinZ:    cfg.SpinZ,
		Freq:     cfg.BreathFreq,
		Amp:      cfg.BreathAmp,
		OnColor:  onColor,
		OffColor: offColor,
	})
	return nil
}
