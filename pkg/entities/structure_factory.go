package entities

import (
	"github.com/golang/geo/r3"

	"github.com/decker502/apartment/pkg/components"
	"github.com/decker502/apartment/pkg/config"
	"github.com/decker502/apartment/pkg/ecs"
	"github.com/decker502/apartment/pkg/utils"
)

// 墙体和地板尺寸（世界单位）
const (
	FloorY = -2.0

	wallHeight      = 4.5
	wallThickness   = 0.3
	doorHeight      = 2.4
	defaultDoorWide = 2.5

	floorWidth     = 60.0
	floorDepth     = 40.0
	floorCenterZ   = -8.0
	floorThickness = 0.1
)

// WallAxis 墙的走向
type WallAxis int

const (
	// WallAlongX 墙沿 X 轴延伸（前后外墙）
	WallAlongX WallAxis = iota
	// WallAlongZ 墙沿 Z 轴延伸（侧墙和内墙）
	WallAlongZ
)

// WallSpec 一段墙，DoorWidth 为 0 时是整面墙
type WallSpec struct {
	X, Z      float64
	Axis      WallAxis
	Length    float64
	DoorWidth float64
}

// apartmentWalls 外墙和房间隔墙
var apartmentWalls = []WallSpec{
	// 前墙，中间是入户门
	{X: -18, Z: 8, Axis: WallAlongX, Length: 18},
	{X: 0, Z: 8, Axis: WallAlongX, Length: 18, DoorWidth: 3},
	{X: 18, Z: 8, Axis: WallAlongX, Length: 18},
	// 后墙
	{X: -18, Z: -24, Axis: WallAlongX, Length: 18},
	{X: 0, Z: -24, Axis: WallAlongX, Length: 18},
	{X: 18, Z: -24, Axis: WallAlongX, Length: 18},
	// 侧墙
	{X: -27, Z: -8, Axis: WallAlongZ, Length: 32},
	{X: 27, Z: -8, Axis: WallAlongZ, Length: 32},
	// 内墙，每段带一个门洞
	{X: -9, Z: 0, Axis: WallAlongZ, Length: 16, DoorWidth: defaultDoorWide},
	{X: -9, Z: -16, Axis: WallAlongZ, Length: 16, DoorWidth: defaultDoorWide},
	{X: 9, Z: 0, Axis: WallAlongZ, Length: 16, DoorWidth: defaultDoorWide},
	{X: 9, Z: -16, Axis: WallAlongZ, Length: 16, DoorWidth: defaultDoorWide},
}

// FloorBounds 地板的世界包围盒，顶面 y = FloorY
func FloorBounds() utils.AABB {
	return utils.AABB{
		Min: r3.Vector{X: -floorWidth / 2, Y: FloorY - floorThickness, Z: floorCenterZ - floorDepth/2},
		Max: r3.Vector{X: floorWidth / 2, Y: FloorY, Z: floorCenterZ + floorDepth/2},
	}
}

// WallBoxes 生成一段墙的长方体（墙的局部空间，原点在墙中心的地面上）
//
// 有门洞时由左右两块墙板和门楣组成。
func WallBoxes(spec WallSpec, c components.Box) []components.Box {
	centerY := wallHeight / 2
	along := func(offset, y, length, height float64) components.Box {
		b := c
		if spec.Axis == WallAlongX {
			b.Center = r3.Vector{X: offset, Y: y}
			b.Size = r3.Vector{X: length, Y: height, Z: wallThickness}
		} else {
			b.Center = r3.Vector{Y: y, Z: offset}
			b.Size = r3.Vector{X: wallThickness, Y: height, Z: length}
		}
		return b
	}

	if spec.DoorWidth <= 0 || spec.DoorWidth >= spec.Length {
		return []components.Box{along(0, centerY, spec.Length, wallHeight)}
	}

	side := (spec.Length - spec.DoorWidth) / 2
	offset := side/2 + spec.DoorWidth/2
	lintel := wallHeight - doorHeight
	return []components.Box{
		along(-offset, centerY, side, wallHeight),
		along(offset, centerY, side, wallHeight),
		along(0, doorHeight+lintel/2, spec.DoorWidth, lintel),
	}
}

// buildStructure 地板、墙和房间名
func (b *Builder) buildStructure(root ecs.EntityID) {
	floor := FloorBounds()
	center := floor.Center()
	size := floor.Max.Sub(floor.Min)
	b.mesh(root, utils.Pose{},
		box(center.X, center.Y, center.Z, size.X, size.Y, size.Z, b.color(config.ColorFloor)))

	template := components.Box{Color: b.color(config.ColorWall)}
	for _, spec := range apartmentWalls {
		b.mesh(root, at(spec.X, FloorY, spec.Z), WallBoxes(spec, template)...)
	}

	b.label(root, at(0, FloorY+0.1, 0), "Living Room", 2)
	b.label(root, at(18, FloorY+0.1, 4), "Study", 2)
}
