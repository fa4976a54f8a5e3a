package game

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
)

func TestFrameClockTick(t *testing.T) {
	mock := clock.NewMock()
	fc := NewFrameClock(mock, 0)

	elapsed, dt := fc.Tick()
	if elapsed != 0 || dt != 0 {
		t.Fatalf("first Tick() = (%v, %v), want (0, 0)", elapsed, dt)
	}

	mock.Add(100 * time.Millisecond)
	elapsed, dt = fc.Tick()
	if dt != 0.1 {
		t.Errorf("dt = %v, want 0.1", dt)
	}
	if elapsed != 0.1 {
		t.Errorf("elapsed = %v, want 0.1", elapsed)
	}
	if fc.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", fc.Frames())
	}
}

// TestFrameClockClampsLongFrames 窗口卡顿后 dt 被限幅，elapsed 随之累加
func TestFrameClockClampsLongFrames(t *testing.T) {
	mock := clock.NewMock()
	fc := NewFrameClock(mock, 0)
	fc.Tick()

	mock.Add(5 * time.Second)
	elapsed, dt := fc.Tick()
	if dt != DefaultMaxDelta {
		t.Errorf("dt = %v, want %v", dt, DefaultMaxDelta)
	}
	if elapsed != DefaultMaxDelta || fc.Elapsed() != DefaultMaxDelta {
		t.Errorf("elapsed = %v, want %v", elapsed, DefaultMaxDelta)
	}
}

func TestFrameClockCustomMaxDelta(t *testing.T) {
	mock := clock.NewMock()
	fc := NewFrameClock(mock, 0.05)
	fc.Tick()
	mock.Add(time.Second)
	if _, dt := fc.Tick(); dt != 0.05 {
		t.Errorf("dt = %v, want 0.05", dt)
	}
}

func TestFrameClockNoTimePassed(t *testing.T) {
	mock := clock.NewMock()
	fc := NewFrameClock(mock, 0)
	fc.Tick()
	if _, dt := fc.Tick(); dt != 0 {
		t.Errorf("dt = %v, want 0", dt)
	}
}

func TestNewFrameClockDefaultClock(t *testing.T) {
	fc := NewFrameClock(nil, -1)
	if fc.clock == nil {
		t.Error("nil clock should default to the system clock")
	}
	if fc.maxDelta != DefaultMaxDelta {
		t.Errorf("maxDelta = %v, want %v", fc.maxDelta, DefaultMaxDelta)
	}
}
