package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a renderable scene (the apartment is the only one).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update advances the scene by deltaTime seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Saveable 是一个可选接口，用于支持场景在退出时保存用户设置
//
// 实现此接口的场景会在以下时机被调用 SaveOnExit()：
//   - 窗口关闭
//   - 用户通过 OS 命令关闭程序
type Saveable interface {
	// SaveOnExit 在场景退出时保存设置
	// 返回 false 表示保存失败（但程序仍会正常退出）
	SaveOnExit() bool
}
