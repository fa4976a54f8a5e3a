package entities

import (
	"fmt"
	"math/rand"

	"github.com/golang/geo/r3"

	"github.com/decker502/apartment/internal/anim"
	"github.com/decker502/apartment/pkg/components"
	"github.com/decker502/apartment/pkg/config"
	"github.com/decker502/apartment/pkg/ecs"
	"github.com/decker502/apartment/pkg/utils"
)

// ShowerFieldConfig 淋浴水流：从喷头圆盘落下，落到地面（y<0）后重新生成
func ShowerFieldConfig(c config.ShowerConfig) anim.FieldConfig {
	return anim.FieldConfig{
		Capacity: c.Capacity,
		Emitter:  anim.DiscEmitter{Radius: c.Radius, Height: c.HeadHeight, Jitter: c.Jitter},
		Mode:     anim.FallRecycle,
		Floor:    0,
		Hidden:   c.Hidden,
		MinSpeed: c.MinSpeed,
		MaxSpeed: c.MaxSpeed,
		PerFrame: true,
	}
}

// SnowFieldConfig 水晶球雪花：在圆柱内缓慢下落，落到底部后回到顶部
func SnowFieldConfig(c config.SnowConfig) anim.FieldConfig {
	return anim.FieldConfig{
		Capacity: c.Capacity,
		Emitter:  anim.CylinderEmitter{Radius: c.Radius, MinY: c.MinY, MaxY: c.MaxY},
		Mode:     anim.FallWrap,
		Floor:    c.MinY,
		Ceiling:  c.MaxY,
		Hidden:   c.MinY - 10,
		MinSpeed: c.FallSpeed,
		MaxSpeed: c.FallSpeed,
		PerFrame: true,
		Prefill:  true,
		Spin:     c.Spin,
	}
}

// LampPoints 粒子灯的球面点集
func LampPoints(c config.LampConfig, rng *rand.Rand) []r3.Vector {
	emitter := anim.ShellEmitter{Radius: c.Radius}
	points := make([]r3.Vector, c.Capacity)
	for i := range points {
		points[i] = emitter.Spawn(rng)
	}
	return points
}

// particleField 创建粒子场实体
func (b *Builder) particleField(parent ecs.EntityID, pose utils.Pose, key string, cfg anim.FieldConfig,
	hex string, size float64, freeze bool) (ecs.EntityID, error) {
	field, err := anim.NewParticleField(cfg, b.rng)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s particle field: %w", key, err)
	}
	c, err := config.ParseColor(hex)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s particle color: %w", key, err)
	}

	id := b.group(parent, pose)
	b.bind(id, key)
	ecs.AddComponent(b.em, id, &components.ParticleFieldComponent{
		Field:         field,
		Color:         c,
		Size:          size,
		FreezeWhenOff: freeze,
	})
	return id, nil
}
