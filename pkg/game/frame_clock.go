package game

import (
	"time"

	"github.com/benbjohnson/clock"
)

// DefaultMaxDelta 单帧最大时间步长（秒）
// 窗口被拖动或失去焦点后恢复时，避免动画一次跳过太多
const DefaultMaxDelta = 0.25

// FrameClock 每帧提供累计时间和帧间隔
//
// 所有动画共用这一个时钟：elapsed 由被限幅后的 dt 累加得到，
// 因此窗口卡顿时 elapsed 与 dt 保持一致，不会出现闪烁灯光突然跳相位。
type FrameClock struct {
	clock    clock.Clock
	last     time.Time
	started  bool
	elapsed  float64
	maxDelta float64
	frames   uint64
}

// NewFrameClock 创建帧时钟，c 为 nil 时使用系统时钟
func NewFrameClock(c clock.Clock, maxDelta float64) *FrameClock {
	if c == nil {
		c = clock.New()
	}
	if maxDelta <= 0 {
		maxDelta = DefaultMaxDelta
	}
	return &FrameClock{clock: c, maxDelta: maxDelta}
}

// Tick 每帧调用一次，返回累计时间和本帧 dt（秒）
// 第一帧 dt 为 0；时钟回拨时 dt 为 0；过大的 dt 被限制为 maxDelta
func (fc *FrameClock) Tick() (elapsed, dt float64) {
	now := fc.clock.Now()
	fc.frames++
	if !fc.started {
		fc.started = true
		fc.last = now
		return fc.elapsed, 0
	}

	dt = now.Sub(fc.last).Seconds()
	fc.last = now
	switch {
	case dt < 0:
		dt = 0
	case dt > fc.maxDelta:
		dt = fc.maxDelta
	}
	fc.elapsed += dt
	return fc.elapsed, dt
}

// Elapsed 返回累计时间（秒）
func (fc *FrameClock) Elapsed() float64 { return fc.elapsed }

// Frames 返回 Tick 调用次数
func (fc *FrameClock) Frames() uint64 { return fc.frames }
