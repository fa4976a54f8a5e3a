package components

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/decker502/apartment/internal/anim"
	"github.com/decker502/apartment/pkg/ecs"
)

// BootComponent 电脑开机流程，挂在显示器屏幕实体上
type BootComponent struct {
	Sequence *anim.BootSequence

	OffColor     colorful.Color // 关机黑屏
	BootingColor colorful.Color // 开机自检背景
	OnColor      colorful.Color // 桌面

	// Taskbar 开机完成后显示的任务栏实体（可为 0）
	Taskbar ecs.EntityID
}
