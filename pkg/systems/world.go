package systems

import (
	"github.com/golang/geo/r3"

	"github.com/decker502/apartment/pkg/components"
	"github.com/decker502/apartment/pkg/ecs"
	"github.com/decker502/apartment/pkg/utils"
)

// maxHierarchyDepth 防止错误的父子关系形成环
const maxHierarchyDepth = 32

// ElapsedSource 提供场景累计时间（秒），由 game.FrameClock 实现
type ElapsedSource interface {
	Elapsed() float64
}

// poseChain 返回从实体自身到根的位姿链
func poseChain(em *ecs.EntityManager, id ecs.EntityID) []utils.Pose {
	var chain []utils.Pose
	for depth := 0; id != 0 && depth < maxHierarchyDepth; depth++ {
		tc, ok := ecs.GetComponent[*components.TransformComponent](em, id)
		if !ok {
			break
		}
		chain = append(chain, tc.Pose)
		id = tc.Parent
	}
	return chain
}

// WorldTransform 把实体局部坐标变换到世界坐标的函数
type WorldTransform struct {
	chain []utils.Pose
}

// WorldTransformOf 计算实体的世界变换
func WorldTransformOf(em *ecs.EntityManager, id ecs.EntityID) WorldTransform {
	return WorldTransform{chain: poseChain(em, id)}
}

// Point 局部点 → 世界点
func (w WorldTransform) Point(p r3.Vector) r3.Vector {
	for _, pose := range w.chain {
		p = pose.Apply(p)
	}
	return p
}

// Dir 局部方向 → 世界方向（忽略平移和缩放）
func (w WorldTransform) Dir(d r3.Vector) r3.Vector {
	for _, pose := range w.chain {
		d = pose.ApplyDir(d)
	}
	return d
}

// WorldBounds 实体局部包围盒变换到世界空间后的轴对齐包围盒
func WorldBounds(em *ecs.EntityManager, id ecs.EntityID, local utils.AABB) utils.AABB {
	if local.IsEmpty() {
		return local
	}
	w := WorldTransformOf(em, id)
	corners := components.Box{
		Center: local.Center(),
		Size:   local.Max.Sub(local.Min),
	}.Corners()
	b := utils.EmptyAABB()
	for _, c := range corners {
		b = b.Extend(w.Point(c))
	}
	return b
}
