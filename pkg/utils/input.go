// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DefaultClickThreshold 按下到松开移动不超过该像素数视为点击，否则为拖拽
const DefaultClickThreshold = 4

// PointerSample 一帧的原始指针输入
type PointerSample struct {
	X, Y         int
	Pressed      bool    // 左键或触摸按下中
	RightPressed bool    // 右键本帧刚按下
	Wheel        float64 // 滚轮 Y 增量
}

// ReadPointerSample 从 ebiten 读取当前帧的指针输入
// 优先使用触摸，其次是鼠标
func ReadPointerSample() PointerSample {
	var s PointerSample
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		s.X, s.Y = ebiten.TouchPosition(touchIDs[0])
		s.Pressed = true
		return s
	}

	s.X, s.Y = ebiten.CursorPosition()
	s.Pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s.RightPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	_, s.Wheel = ebiten.Wheel()
	return s
}

// DragState 拖拽状态
type DragState int

const (
	// DragStateNone 无拖拽
	DragStateNone DragState = iota
	// DragStatePressed 已按下，尚未超过点击阈值
	DragStatePressed
	// DragStateDragging 拖拽中（按住移动超过阈值）
	DragStateDragging
)

// PointerEvent DragManager 每帧输出的语义事件
type PointerEvent struct {
	X, Y       int
	Click      bool    // 左键点击（松开时未超过阈值）
	RightClick bool    // 右键按下
	DragDX     float64 // 拖拽中本帧的位移
	DragDY     float64
	Wheel      float64
}

// DragManager 区分点击与拖拽
// 纯状态机，不直接读取 ebiten，便于测试
type DragManager struct {
	state          DragState
	startX, startY int
	lastX, lastY   int
	threshold      int
}

// NewDragManager 创建拖拽管理器，threshold <= 0 使用默认值
func NewDragManager(threshold int) *DragManager {
	if threshold <= 0 {
		threshold = DefaultClickThreshold
	}
	return &DragManager{threshold: threshold}
}

// Step 输入一帧采样，返回该帧的事件
func (dm *DragManager) Step(s PointerSample) PointerEvent {
	ev := PointerEvent{X: s.X, Y: s.Y, RightClick: s.RightPressed, Wheel: s.Wheel}

	switch dm.state {
	case DragStateNone:
		if s.Pressed {
			dm.state = DragStatePressed
			dm.startX, dm.startY = s.X, s.Y
		}

	case DragStatePressed:
		if !s.Pressed {
			// 点击位置取按下时的位置
			ev.Click = true
			ev.X, ev.Y = dm.startX, dm.startY
			dm.state = DragStateNone
			break
		}
		if abs(s.X-dm.startX) > dm.threshold || abs(s.Y-dm.startY) > dm.threshold {
			dm.state = DragStateDragging
			ev.DragDX = float64(s.X - dm.startX)
			ev.DragDY = float64(s.Y - dm.startY)
		}

	case DragStateDragging:
		if !s.Pressed {
			dm.state = DragStateNone
			break
		}
		ev.DragDX = float64(s.X - dm.lastX)
		ev.DragDY = float64(s.Y - dm.lastY)
	}

	dm.lastX, dm.lastY = s.X, s.Y
	return ev
}

// GetState 获取当前拖拽状态
func (dm *DragManager) GetState() DragState {
	return dm.state
}

// IsDragging 是否正在拖拽
func (dm *DragManager) IsDragging() bool {
	return dm.state == DragStateDragging
}

// Reset 重置拖拽状态
func (dm *DragManager) Reset() {
	dm.state = DragStateNone
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
