package components

import "github.com/decker502/apartment/internal/anim"

// FlushComponent 马桶冲水动画，作用于水面实体
// 输出的缩放写入 Pose.Scale，累计旋转写入 Pose.Yaw
type FlushComponent struct {
	Sequence *anim.FlushSequence
}
