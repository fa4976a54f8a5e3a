package systems

import (
	"github.com/golang/geo/r3"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/decker502/apartment/pkg/components"
	"github.com/decker502/apartment/pkg/ecs"
	"github.com/decker502/apartment/pkg/utils"
)

// fakeClock 手动推进的场景时钟
type fakeClock struct {
	t float64
}

func (c *fakeClock) Elapsed() float64 { return c.t }

// newPart 创建带位姿和开关键的实体
func newPart(em *ecs.EntityManager, parent ecs.EntityID, pos r3.Vector, key string) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.TransformComponent{
		Parent: parent,
		Pose:   utils.Pose{Position: pos},
	})
	if key != "" {
		ecs.AddComponent(em, id, &components.ToggleComponent{Key: key})
	}
	return id
}

// unitBoxes 以原点为中心的 n 个单位立方体
func unitBoxes(n int, c colorful.Color) []components.Box {
	boxes := make([]components.Box, n)
	for i := range boxes {
		boxes[i] = components.Box{Size: r3.Vector{X: 1, Y: 1, Z: 1}, Color: c}
	}
	return boxes
}

var testGrey = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

func sameColor(a, b colorful.Color) bool {
	return a.AlmostEqualRgb(b)
}
