package components

import (
	"github.com/decker502/apartment/pkg/ecs"
	"github.com/decker502/apartment/pkg/utils"
)

// TransformComponent 实体相对父实体的位姿
// Parent 为 0 表示直接位于世界空间
type TransformComponent struct {
	Parent ecs.EntityID
	Pose   utils.Pose
}
