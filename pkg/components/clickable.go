package components

import "github.com/decker502/apartment/pkg/utils"

// ClickKind 点击后执行的动作类型
type ClickKind int

const (
	// ClickToggle 翻转开关
	ClickToggle ClickKind = iota
	// ClickTrigger 一次性触发（带冷却）
	ClickTrigger
)

// ClickableComponent 标记实体可以被鼠标点击
// 拾取区域为 Bounds（局部空间）；Bounds 为空时使用网格包围盒
type ClickableComponent struct {
	Kind      ClickKind
	Key       string  // ApplianceState 中的键
	Cooldown  float64 // 仅 ClickTrigger 使用（秒）
	Bounds    utils.AABB
	IsEnabled bool
}
