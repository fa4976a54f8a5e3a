package components

// ToggleComponent 把实体的动画状态绑定到 ApplianceState 中的一个开关或触发器
type ToggleComponent struct {
	Key string
}
