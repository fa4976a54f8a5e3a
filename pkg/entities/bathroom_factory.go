package entities

import (
	"fmt"

	"github.com/decker502/apartment/internal/anim"
	"github.com/decker502/apartment/pkg/components"
	"github.com/decker502/apartment/pkg/ecs"
	"github.com/decker502/apartment/pkg/game"
)

var (
	colorSilver     = hex("#c0c0c0")
	colorWhite      = hex("#ffffff")
	colorActiveBlue = hex("#00aaff")
	colorGlass      = hex("#ccffff")
)

// buildBathroom 卫生间：洗手台、马桶、淋浴间
func (b *Builder) buildBathroom(root ecs.EntityID) error {
	room := b.furniture(root, at(-18, FloorY, 0))

	b.buildSink(room)
	if err := b.buildToilet(room); err != nil {
		return err
	}
	return b.buildShower(room)
}

func (b *Builder) buildSink(room ecs.EntityID) {
	sink := b.mesh(room, at(2.3, 0, -4.4),
		box(0, 0.4, 0, 2.5, 0.8, 1.2, hex("#212121")),
		box(0, 0.82, 0, 2.6, 0.05, 1.3, colorWhite),
		box(0, 0.83, 0.1, 1.2, 0.02, 0.8, hex("#eeeeee")),
		// 牙刷杯和洗手液
		box(-0.8, 0.97, -0.2, 0.11, 0.15, 0.11, colorWhite),
		box(0.8, 0.97, -0.2, 0.14, 0.25, 0.14, hex("#fce4ec")),
	)

	faucet := b.mesh(sink, at(0, 0.85, -0.2),
		box(0, 0.1, 0, 0.09, 0.2, 0.09, colorSilver),
		box(0, 0.2, 0.1, 0.06, 0.06, 0.28, colorSilver),
	)

	handle := b.mesh(faucet, at(0.15, 0.05, 0),
		box(0, 0, 0, 0.15, 0.04, 0.04, colorSilver))
	b.fixedGlow(handle, game.KeySink, colorActiveBlue, colorSilver)
	b.clickToggle(handle, game.KeySink)

	water := b.mesh(sink, at(0, 0.95, 0.05),
		glowBox(0, 0, 0, 0.03, 0.22, 0.03, hex("#aaddff")))
	b.showWhenOn(water, game.KeySink)
}

func (b *Builder) buildToilet(room ecs.EntityID) error {
	toilet := b.mesh(room, at(-1.2, 0, -4.4),
		box(0, 0.15, 0, 0.5, 0.3, 0.5, colorWhite),
		box(0, 0.9, -0.35, 0.6, 0.5, 0.25, colorWhite),
	)
	bowl := b.mesh(toilet, at(0, 0.5, 0.1),
		box(0, 0, 0, 0.65, 0.4, 0.65, colorWhite))

	// 水面在碗内，冲水时缩小并旋转
	seq, err := anim.NewFlushSequence(b.cfg.Flush.FlushTimings)
	if err != nil {
		return fmt.Errorf("failed to create flush sequence: %w", err)
	}
	water := b.mesh(bowl, at(0, 0.22, 0),
		glowBox(0, 0, 0, 0.5, 0.02, 0.5, hex("#00bbff")))
	b.bind(water, game.KeyFlush)
	ecs.AddComponent(b.em, water, &components.FlushComponent{Sequence: seq})

	button := b.mesh(toilet, at(0.2, 1.15, -0.35),
		box(0, 0, 0, 0.08, 0.05, 0.08, colorSilver))
	b.clickTrigger(button, game.KeyFlush, b.cfg.Flush.Cooldown)
	return nil
}

func (b *Builder) buildShower(room ecs.EntityID) error {
	cfg := b.cfg.Doors
	shower := b.mesh(room, at(-4.7, 0, -4.0),
		box(0, 0.02, 0, 2.5, 0.05, 2.5, hex("#eeeeee")),
		box(0, 0.04, 0, 0.3, 0.01, 0.3, hex("#888888")),
		box(1.25, 1.2, 0, 0.05, 2.4, 2.5, colorGlass),
		// 喷头
		box(0, 2.4, -0.7, 0.1, 0.1, 0.3, colorSilver),
		box(0, 2.3, -0.5, 0.3, 0.1, 0.3, colorSilver),
	)

	control := b.mesh(shower, at(-1.2, 1.4, 0),
		box(0, 0, 0, 0.1, 0.12, 0.12, colorSilver))
	b.fixedGlow(control, game.KeyShower, colorActiveBlue, colorSilver)
	b.clickToggle(control, game.KeyShower)

	if _, err := b.particleField(shower, at(0, 0, -0.5), game.KeyShower,
		ShowerFieldConfig(b.cfg.Shower), b.cfg.Shower.Color, b.cfg.Shower.PointSize, false); err != nil {
		return err
	}

	// 门轴在淋浴间右前角，门板中心相对门轴偏移半个门宽
	hinge := b.group(shower, at(1.25, 0, 1.25))
	b.bind(hinge, game.KeyShowerDoor)
	ecs.AddComponent(b.em, hinge, &components.HingeComponent{
		Angle:     anim.SmoothedValue{Rate: cfg.Rate},
		OpenAngle: cfg.ShowerAngle,
	})
	door := b.mesh(hinge, at(-1.25, 1.2, 0),
		box(0, 0, 0, 2.5, 2.4, 0.05, colorGlass),
		box(-1, 0, 0.05, 0.04, 0.2, 0.04, colorSilver),
	)
	b.clickToggle(door, game.KeyShowerDoor)
	return nil
}
